package strategy

import (
	"fmt"
	"hearts-client/pkg/deck"
)

// Score ranks a candidate card. Lower is better, compared field by field.
// Points are stored in thousandths
type Score struct {
	Definite  int
	Potential int
	Later     int
	Rank      int
}

// Compare returns -1, 0, or 1
func (s Score) Compare(o Score) int {
	pairs := [4][2]int{
		{s.Definite, o.Definite},
		{s.Potential, o.Potential},
		{s.Later, o.Later},
		{s.Rank, o.Rank},
	}

	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		} else if p[0] > p[1] {
			return 1
		}
	}

	return 0
}

// Invert turns a score that avoids points into one that collects them
func (s Score) Invert() Score {
	return Score{
		Definite:  -abs(s.Definite),
		Potential: -abs(s.Potential),
		Later:     abs(s.Later),
		Rank:      s.Rank,
	}
}

func (s Score) String() string {
	return fmt.Sprintf("%7.3f, %7.3f, %7.3f, %3d",
		float64(s.Definite)/1000,
		float64(s.Potential)/1000,
		float64(s.Later)/1000,
		s.Rank)
}

// CardScore is a scored candidate
type CardScore struct {
	Card  deck.Card
	Score Score
}

// Less orders by score, then by card
func (c CardScore) Less(o CardScore) bool {
	if cmp := c.Score.Compare(o.Score); cmp != 0 {
		return cmp < 0
	}

	return c.Card.Less(o.Card)
}

// score computes the score of playing the card
func (v *view) score(card deck.Card) Score {
	potential := v.potential(card)

	definite := float32(0)
	if v.willWin(card, v.safe) {
		definite = potential
	}

	later := -laterPotential(card, v.remaining, v.params)

	rank := -int(card.Rank)
	if v.params.Points(card) < 0 {
		rank = -rank
	}

	return Score{
		Definite:  thousandths(definite),
		Potential: thousandths(potential),
		Later:     thousandths(later),
		Rank:      rank,
	}
}

func thousandths(f float32) int {
	return int(f * 1000)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}
