package hearts

import (
	"hearts-client/pkg/deck"
)

// Player is a participant seated at the table
type Player struct {
	Name string

	hand     deck.Set
	initial  deck.Set
	final    deck.Set
	passedBy deck.Set
	passedTo deck.Set
	won      deck.Set
	passed   bool

	// total is the score before the round started
	total int
}

// NewPlayer returns a new player
func NewPlayer(name string, total int) *Player {
	return &Player{
		Name:  name,
		total: total,
	}
}

// Hand returns the cards the player holds
func (p *Player) Hand() deck.Set {
	return p.hand
}

// Won returns the cards the player has taken this round
func (p *Player) Won() deck.Set {
	return p.won
}

// playerDidPlayCard removes the card from the player's hand
func (p *Player) playerDidPlayCard(card deck.Card) error {
	if !p.hand.Contains(card) {
		return ErrCardNotInPlayersHand
	}

	p.hand = p.hand.Without(card)
	return nil
}
