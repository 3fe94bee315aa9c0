package game

import (
	"hearts-client/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeal_State(t *testing.T) {
	a := assert.New(t)

	var nilDeal *Deal
	a.Equal(DealNotStarted, nilDeal.State())
	_, ok := nilDeal.Suit()
	a.False(ok)

	d := NewDeal(1, "a", deck.Spade, nil, "a")
	a.Equal(DealNotStarted, d.State())
	_, ok = d.Suit()
	a.False(ok, "no led suit before the first card")
	_, ok = d.Winner()
	a.False(ok)

	d.Play("a", deck.CardFromString("10h"))
	a.Equal(DealInProgress, d.State())
	suit, ok := d.Suit()
	a.True(ok)
	a.Equal(deck.Heart, suit)

	d.Play("b", deck.CardFromString("12h"))
	d.Play("c", deck.CardFromString("14s"))
	best, ok := d.WinningCard()
	a.True(ok)
	a.Equal("b", best.PlayerName)

	d.Resolve("b")
	a.Equal(DealResolved, d.State())
	winner, ok := d.Winner()
	a.True(ok)
	a.Equal("b", winner)

	c, ok := d.CardOf("c")
	a.True(ok)
	a.Equal(deck.Ace.Of(deck.Spade), c)
	a.False(d.HasPlayed("d"))
	a.Equal(3, d.CardSet().Len())
	a.Equal("resolved", d.State().String())
}

func TestStatus_UnplayedCards(t *testing.T) {
	a := assert.New(t)

	done := NewDeal(1, "a", deck.Club, []DealCard{
		{PlayerName: "a", Card: deck.TwoOfClubs},
		{PlayerName: "b", Card: deck.CardFromString("10c")},
		{PlayerName: "c", Card: deck.CardFromString("14c")},
		{PlayerName: "d", Card: deck.CardFromString("5c")},
	}, "c")

	current := NewDeal(2, "c", deck.Heart, []DealCard{
		{PlayerName: "c", Card: deck.CardFromString("2h")},
	}, "")

	s := &Status{
		Deals:          []*Deal{done},
		InProgressDeal: current,
		MyCurrentHand:  deck.NewSet(deck.CardsFromString("3h,4h")...),
		RoundParameters: RoundParameters{
			CardPoints: map[deck.Card]int{deck.QueenOfSpades: 13},
		},
	}

	unplayed := s.UnplayedCards()
	a.Equal(52-4-1-2, unplayed.Len())
	a.False(unplayed.Contains(deck.TwoOfClubs))
	a.False(unplayed.Contains(deck.CardFromString("2h")))
	a.False(unplayed.Contains(deck.CardFromString("3h")))
	a.True(unplayed.Contains(deck.QueenOfSpades))

	a.Equal(2, s.DealNumber())
	suit, ok := s.LedSuit()
	a.True(ok)
	a.Equal(deck.Heart, suit)

	s.InProgressDeal = nil
	a.Equal(0, s.DealNumber())
	a.Equal(52-4-2, s.UnplayedCards().Len())
}

func TestRoundParameters(t *testing.T) {
	a := assert.New(t)

	p := DefaultRoundParameters(1)
	a.Equal(3, p.NumberOfCardsToBePassed)
	a.Equal(13, p.Points(deck.QueenOfSpades))
	a.Equal(1, p.Points(deck.CardFromString("2h")))
	a.Equal(0, p.Points(deck.CardFromString("2d")))
	a.Equal(26, p.SumPoints(deck.FullSet()))

	p.CardPoints[deck.CardFromString("11d")] = -10
	a.Equal(16, p.SumPoints(deck.FullSet()))
	a.Equal(26, p.SumPositivePoints(deck.FullSet()))
}

func TestParseStates(t *testing.T) {
	a := assert.New(t)

	s, err := ParseInstanceState("Running")
	a.NoError(err)
	a.Equal(InstanceRunning, s)
	_, err = ParseInstanceState("running")
	a.ErrorIs(err, ErrInvalidState)

	r, err := ParseRoundState("Finished")
	a.NoError(err)
	a.Equal(RoundFinished, r)
	_, err = ParseRoundState("Open")
	a.ErrorIs(err, ErrInvalidState)

	h, err := ParseHeartsState("Passing")
	a.NoError(err)
	a.Equal(HeartsPassing, h)
	_, err = ParseHeartsState("Running")
	a.ErrorIs(err, ErrInvalidState)
}
