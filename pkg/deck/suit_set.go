package deck

import "strings"

// SuitSet is a set of suits
type SuitSet uint8

// With returns a copy of the set containing the suit
func (s SuitSet) With(suit Suit) SuitSet {
	return s | 1<<uint(suit)
}

// Contains returns true if the suit is in the set
func (s SuitSet) Contains(suit Suit) bool {
	return s&(1<<uint(suit)) != 0
}

// Intersect returns the suits in both sets
func (s SuitSet) Intersect(o SuitSet) SuitSet {
	return s & o
}

// IsEmpty returns true if the set has no suits
func (s SuitSet) IsEmpty() bool {
	return s == 0
}

// Suits returns the suits in canonical order
func (s SuitSet) Suits() []Suit {
	suits := make([]Suit, 0, len(Suits))
	for _, suit := range Suits {
		if s.Contains(suit) {
			suits = append(suits, suit)
		}
	}

	return suits
}

// Cards returns every card of the suits in the set
func (s SuitSet) Cards() Set {
	var cards Set
	for _, suit := range s.Suits() {
		cards = cards.Union(FullSet().OfSuit(suit))
	}

	return cards
}

func (s SuitSet) String() string {
	var b strings.Builder
	for _, suit := range s.Suits() {
		b.WriteString(suit.String())
	}

	return b.String()
}
