package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
)

// Simple passes the first cards of the hand and plays the first legal card
type Simple struct {
	playerName string
}

// NewSimple returns a simple strategy
func NewSimple(playerName string) *Simple {
	return &Simple{playerName: playerName}
}

// PlayerName returns the team name
func (s *Simple) PlayerName() string {
	return s.playerName
}

// Name returns "simple"
func (s *Simple) Name() string {
	return "simple"
}

// PassCards passes the lowest cards of the initial hand
func (s *Simple) PassCards(status *game.Status) []deck.Card {
	cards := status.MyInitialHand.Cards()
	n := status.RoundParameters.NumberOfCardsToBePassed
	if n > len(cards) {
		n = len(cards)
	}

	return cards[:n]
}

// PlayCard plays the lowest card of the led suit. When it cannot follow suit it
// throws away its highest card
func (s *Simple) PlayCard(status *game.Status) (deck.Card, error) {
	hand := status.MyCurrentHand
	if hand.IsEmpty() {
		return deck.Card{}, ErrNoValidCards
	}

	suit, led := status.LedSuit()
	if led && hand.OfSuit(suit).IsEmpty() {
		cards := hand.Cards()
		return cards[len(cards)-1], nil
	}

	card, _ := validCards(status).Lowest()
	return card, nil
}
