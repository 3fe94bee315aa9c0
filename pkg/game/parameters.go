package game

import (
	"hearts-client/pkg/deck"
	"time"
)

// RoundParameters are the per-round settings sent by the server
type RoundParameters struct {
	RoundID                 int
	InitiationPhase         time.Duration
	PassingPhase            time.Duration
	DealingPhase            time.Duration
	FinishingPhase          time.Duration
	NumberOfCardsToBePassed int
	CardPoints              map[deck.Card]int
}

// DefaultRoundParameters returns the standard hearts scoring: one point per heart, 13 for the queen of spades
func DefaultRoundParameters(roundID int) RoundParameters {
	points := make(map[deck.Card]int, 14)
	for _, rank := range deck.Ranks {
		points[rank.Of(deck.Heart)] = 1
	}
	points[deck.QueenOfSpades] = 13

	return RoundParameters{
		RoundID:                 roundID,
		InitiationPhase:         time.Second * 5,
		PassingPhase:            time.Second * 10,
		DealingPhase:            time.Second * 10,
		FinishingPhase:          time.Second * 5,
		NumberOfCardsToBePassed: 3,
		CardPoints:              points,
	}
}

// Points returns the points of the card. Cards without an entry are worth nothing
func (r RoundParameters) Points(card deck.Card) int {
	return r.CardPoints[card]
}

// SumPoints returns the total points of the cards in the set
func (r RoundParameters) SumPoints(cards deck.Set) int {
	total := 0
	for _, c := range cards.Cards() {
		total += r.Points(c)
	}

	return total
}

// SumPositivePoints returns the total of the positive points in the set, ignoring bonus cards
func (r RoundParameters) SumPositivePoints(cards deck.Set) int {
	total := 0
	for _, c := range cards.Cards() {
		if p := r.Points(c); p > 0 {
			total += p
		}
	}

	return total
}
