package game

import (
	"hearts-client/pkg/deck"
)

// DealState describes how far along a deal (trick) is
type DealState int

// DealState constants
const (
	DealNotStarted DealState = iota
	DealInProgress
	DealResolved
)

func (d DealState) String() string {
	switch d {
	case DealNotStarted:
		return "not started"
	case DealInProgress:
		return "in progress"
	case DealResolved:
		return "resolved"
	}

	return "unknown"
}

// DealCard is a card played by a participant in a deal
type DealCard struct {
	PlayerName string
	Card       deck.Card
}

// Deal is a single trick
// The led suit is only known once a card has been played, and the winner only once the deal is resolved
type Deal struct {
	Number    int
	Initiator string
	Cards     []DealCard

	suit   deck.Suit
	winner string
}

// NewDeal returns a deal. The suit is ignored if no cards have been played.
func NewDeal(number int, initiator string, suit deck.Suit, cards []DealCard, winner string) *Deal {
	d := &Deal{
		Number:    number,
		Initiator: initiator,
		Cards:     cards,
	}

	if len(cards) > 0 {
		d.suit = suit
		d.winner = winner
	}

	return d
}

// Play records a card. The first card played sets the led suit
func (d *Deal) Play(playerName string, card deck.Card) {
	if len(d.Cards) == 0 {
		d.suit = card.Suit
	}

	d.Cards = append(d.Cards, DealCard{PlayerName: playerName, Card: card})
}

// Resolve marks the deal as won by the player
func (d *Deal) Resolve(winner string) {
	d.winner = winner
}

// State returns the state of the deal
func (d *Deal) State() DealState {
	switch {
	case d == nil || len(d.Cards) == 0:
		return DealNotStarted
	case d.winner == "":
		return DealInProgress
	}

	return DealResolved
}

// Suit returns the led suit, if any card has been played
func (d *Deal) Suit() (deck.Suit, bool) {
	if d == nil || len(d.Cards) == 0 {
		return 0, false
	}

	return d.suit, true
}

// Winner returns the winner of the deal, if it has been resolved
func (d *Deal) Winner() (string, bool) {
	if d.State() != DealResolved {
		return "", false
	}

	return d.winner, true
}

// CardSet returns the cards played in the deal
func (d *Deal) CardSet() deck.Set {
	var s deck.Set
	if d == nil {
		return s
	}

	for _, dc := range d.Cards {
		s = s.With(dc.Card)
	}

	return s
}

// CardOf returns the card played by the player in the deal
func (d *Deal) CardOf(playerName string) (deck.Card, bool) {
	if d == nil {
		return deck.Card{}, false
	}

	for _, dc := range d.Cards {
		if dc.PlayerName == playerName {
			return dc.Card, true
		}
	}

	return deck.Card{}, false
}

// HasPlayed returns true if the player already has a card in the deal
func (d *Deal) HasPlayed(playerName string) bool {
	_, ok := d.CardOf(playerName)
	return ok
}

// WinningCard returns the highest card of the led suit played so far
func (d *Deal) WinningCard() (DealCard, bool) {
	suit, ok := d.Suit()
	if !ok {
		return DealCard{}, false
	}

	var best DealCard
	found := false
	for _, dc := range d.Cards {
		if dc.Card.Suit == suit && (!found || dc.Card.Rank > best.Card.Rank) {
			best = dc
			found = true
		}
	}

	return best, found
}
