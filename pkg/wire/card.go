package wire

import (
	"errors"
	"fmt"
	"hearts-client/pkg/deck"
)

// ErrSymbolMismatch is returned when a card's symbol does not agree with its number
var ErrSymbolMismatch = errors.New("card symbol does not match its number")

// Card is the wire encoding of a card
type Card struct {
	Suit   string `json:"Suit"`
	Number int    `json:"Number"`
	Symbol string `json:"Symbol"`
}

// EncodeCard converts a card to its wire form
func EncodeCard(c deck.Card) Card {
	return Card{
		Suit:   c.Suit.Name(),
		Number: int(c.Rank),
		Symbol: c.Rank.Symbol(),
	}
}

// EncodeCards converts cards to their wire form
func EncodeCards(cards []deck.Card) []Card {
	dtos := make([]Card, len(cards))
	for i, c := range cards {
		dtos[i] = EncodeCard(c)
	}

	return dtos
}

// Decode converts the wire card. An empty symbol is accepted
func (c Card) Decode() (deck.Card, error) {
	suit, err := deck.ParseSuit(c.Suit)
	if err != nil {
		return deck.Card{}, err
	}

	rank, err := deck.RankFromNumber(c.Number)
	if err != nil {
		return deck.Card{}, err
	}

	if c.Symbol != "" && c.Symbol != rank.Symbol() {
		return deck.Card{}, fmt.Errorf("%w: %d is not %q", ErrSymbolMismatch, c.Number, c.Symbol)
	}

	return rank.Of(suit), nil
}

func decodeCards(dtos []Card) (deck.Set, error) {
	var set deck.Set
	for _, dto := range dtos {
		c, err := dto.Decode()
		if err != nil {
			return 0, err
		}

		set = set.With(c)
	}

	return set, nil
}

func encodeSet(set deck.Set) []Card {
	return EncodeCards(set.Cards())
}
