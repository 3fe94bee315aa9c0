package game

import (
	"hearts-client/pkg/deck"
)

// Status is a read-only snapshot of the game as seen by one participant
type Status struct {
	CurrentGameID     string
	CurrentGameState  InstanceState
	CurrentRoundID    int
	CurrentRoundState RoundState
	RoundParameters   RoundParameters
	GameState         HeartsState
	Participants      []Participant
	MyInitialHand     deck.Set
	CardsPassedByMe   deck.Set
	CardsPassedToMe   deck.Set
	MyFinalHand       deck.Set
	MyCurrentHand     deck.Set
	Deals             []*Deal
	InProgressDeal    *Deal
	IsMyTurn          bool
}

// UnplayedCards returns the cards whose location among the other participants is unknown:
// every card except the ones played this round and the ones in my hand
func (s *Status) UnplayedCards() deck.Set {
	cards := deck.FullSet()
	for _, d := range s.Deals {
		cards = cards.Minus(d.CardSet())
	}

	return cards.Minus(s.InProgressDeal.CardSet()).Minus(s.MyCurrentHand)
}

// Participant returns the participant with the team name
func (s *Status) Participant(teamName string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.TeamName == teamName {
			return p, true
		}
	}

	return Participant{}, false
}

// DealNumber returns the number of the in-progress deal, or 0 if there is none
func (s *Status) DealNumber() int {
	if s.InProgressDeal == nil {
		return 0
	}

	return s.InProgressDeal.Number
}

// LedSuit returns the led suit of the in-progress deal, if any
func (s *Status) LedSuit() (deck.Suit, bool) {
	return s.InProgressDeal.Suit()
}
