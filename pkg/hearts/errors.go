package hearts

import (
	"errors"
	"fmt"
)

// ErrRoundIsOver is returned when a card is played after the last deal
var ErrRoundIsOver = errors.New("the round is over")

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInPlayersHand happens when the player tries to play or pass a card they don't have
var ErrCardNotInPlayersHand = errors.New("card is not in player's hand")

// ErrPlayOnSuit happens when a player has a card of the led suit and plays an off-suit card
var ErrPlayOnSuit = errors.New("player has an on-suit card")

// ErrMustLeadTwoOfClubs happens when the first deal of the round is not led with the two of clubs
var ErrMustLeadTwoOfClubs = errors.New("the first deal must be led with the two of clubs")

// ErrPassingIsOver is returned when cards are passed after the passing phase
var ErrPassingIsOver = errors.New("the passing phase is over")

// ErrPassingInProgress is returned when a card is played before every player has passed
var ErrPassingInProgress = errors.New("the passing phase is not complete")

// ErrAlreadyPassed is returned when a player passes twice in a round
var ErrAlreadyPassed = errors.New("player already passed cards")

// ErrCannotPassTheSameCard is returned when the same card appears twice in a pass
var ErrCannotPassTheSameCard = errors.New("you cannot pass the same card")

// ErrUnknownPlayer is returned when the name is not seated at the table
var ErrUnknownPlayer = errors.New("player not found")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d players, got %d", playerCount, int(p))
}

// PassCountError is returned when the wrong number of cards is passed
type PassCountError struct {
	Expected int
	Got      int
}

func (p PassCountError) Error() string {
	return fmt.Sprintf("expected to pass %d cards, got %d", p.Expected, p.Got)
}
