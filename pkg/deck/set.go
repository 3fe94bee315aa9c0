package deck

import (
	"math/bits"
	"strings"
)

// Set is an immutable set of cards. Iteration is always in canonical order
type Set uint64

const fullSet Set = 1<<52 - 1

// FullSet returns the set of all 52 cards
func FullSet() Set {
	return fullSet
}

// NewSet returns a set containing the cards
func NewSet(cards ...Card) Set {
	var s Set
	for _, c := range cards {
		s = s.With(c)
	}

	return s
}

// With returns a copy of the set containing c
func (s Set) With(c Card) Set {
	return s | 1<<uint(c.index())
}

// Without returns a copy of the set not containing c
func (s Set) Without(c Card) Set {
	return s &^ (1 << uint(c.index()))
}

// Contains returns true if c is in the set
func (s Set) Contains(c Card) bool {
	return s&(1<<uint(c.index())) != 0
}

// Union returns the cards in either set
func (s Set) Union(o Set) Set {
	return s | o
}

// Intersect returns the cards in both sets
func (s Set) Intersect(o Set) Set {
	return s & o
}

// Minus returns the cards in s that are not in o
func (s Set) Minus(o Set) Set {
	return s &^ o
}

// Len returns the number of cards in the set
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if the set has no cards
func (s Set) IsEmpty() bool {
	return s == 0
}

// OfSuit returns the cards of the set in the suit
func (s Set) OfSuit(suit Suit) Set {
	shift := uint(int(suit) * len(Ranks))
	return s & (Set(1<<len(Ranks)-1) << shift)
}

// Below returns the cards of the set that share c's suit and rank lower than c
func (s Set) Below(c Card) Set {
	return s.OfSuit(c.Suit) & (1<<uint(c.index()) - 1)
}

// Highest returns the highest ranked card of the suit in the set
func (s Set) Highest(suit Suit) (Card, bool) {
	ofSuit := s.OfSuit(suit)
	if ofSuit == 0 {
		return Card{}, false
	}

	return cardAt(63 - bits.LeadingZeros64(uint64(ofSuit))), true
}

// Lowest returns the lowest card of the set in canonical order
func (s Set) Lowest() (Card, bool) {
	if s == 0 {
		return Card{}, false
	}

	return cardAt(bits.TrailingZeros64(uint64(s))), true
}

// Cards returns the cards of the set in canonical order
func (s Set) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		cards = append(cards, cardAt(bits.TrailingZeros64(rest)))
	}

	return cards
}

// Suits returns the suits with at least one card in the set
func (s Set) Suits() []Suit {
	suits := make([]Suit, 0, len(Suits))
	for _, suit := range Suits {
		if s.OfSuit(suit) != 0 {
			suits = append(suits, suit)
		}
	}

	return suits
}

func (s Set) String() string {
	cards := s.Cards()
	str := make([]string, len(cards))
	for i, c := range cards {
		str[i] = c.String()
	}

	return strings.Join(str, " ")
}
