package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidSuit is returned when a suit token is not recognized
var ErrInvalidSuit = errors.New("not a valid suit")

// ErrInvalidRank is returned when a rank token or number is not recognized
var ErrInvalidRank = errors.New("not a valid rank")

// Suit represents a card suit
// The declared order is part of the canonical card order
type Suit int

// suit constants
const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Suits contains every suit in canonical order
var Suits = [...]Suit{Club, Diamond, Heart, Spade}

// Name returns the wire name of the suit (e.g., "Heart")
func (s Suit) Name() string {
	switch s {
	case Club:
		return "Club"
	case Diamond:
		return "Diamond"
	case Heart:
		return "Heart"
	case Spade:
		return "Spade"
	}

	panic(fmt.Sprintf("unknown suit: %d", int(s)))
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♢"
	case Heart:
		return "♡"
	case Spade:
		return "♠"
	}

	panic(fmt.Sprintf("unknown suit: %d", int(s)))
}

// ParseSuit parses the wire name of a suit
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "Club":
		return Club, nil
	case "Diamond":
		return Diamond, nil
	case "Heart":
		return Heart, nil
	case "Spade":
		return Spade, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// Rank represents a card rank. The value of the rank is its numeric value (2–14)
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks contains every rank from lowest to highest
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the wire symbol of the rank ("2".."10", "J", "Q", "K", "A")
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	if !r.Valid() {
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}

	return strconv.Itoa(int(r))
}

func (r Rank) String() string {
	if r == Ten {
		return "T"
	}

	return r.Symbol()
}

// Of returns the card of this rank in the suit
func (r Rank) Of(s Suit) Card {
	return Card{Suit: s, Rank: r}
}

// ParseRank parses the wire symbol of a rank
func ParseRank(s string) (Rank, error) {
	switch s {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 10 || strconv.Itoa(n) != s {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}

	return Rank(n), nil
}

// RankFromNumber returns the rank with the numeric value n
func RankFromNumber(n int) (Rank, error) {
	r := Rank(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, n)
	}

	return r, nil
}

// Card is an individual playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// TwoOfClubs is the card that opens every round
var TwoOfClubs = Two.Of(Club)

// QueenOfSpades is the conventional penalty spade
var QueenOfSpades = Queen.Of(Spade)

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare returns -1, 0 or 1 using the canonical order (suit, then rank)
func (c Card) Compare(o Card) int {
	switch {
	case c.Suit < o.Suit:
		return -1
	case c.Suit > o.Suit:
		return 1
	case c.Rank < o.Rank:
		return -1
	case c.Rank > o.Rank:
		return 1
	}

	return 0
}

// Less returns true if the card sorts before o
func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

// index returns the position of the card in the canonical order (0–51)
func (c Card) index() int {
	return int(c.Suit)*len(Ranks) + int(c.Rank-Two)
}

func cardAt(i int) Card {
	return Card{Suit: Suit(i / len(Ranks)), Rank: Two + Rank(i%len(Ranks))}
}

// All returns all 52 cards in canonical order
func All() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, rank.Of(suit))
		}
	}

	return cards
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Club
	case "d":
		suit = Diamond
	case "h":
		suit = Heart
	case "s":
		suit = Spade
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{Suit: suit, Rank: Rank(rank)}
}

// CardsFromString returns a slice of cards from a comma separated list (e.g., "2c,14h")
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Club:
		suit = "c"
	case Diamond:
		suit = "d"
	case Heart:
		suit = "h"
	case Spade:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", int(card.Rank), suit)
}
