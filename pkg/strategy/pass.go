package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
)

// passKey orders the cards to pass. Lower is passed first
type passKey struct {
	points int
	rank   int
	card   deck.Card
}

func (p passKey) less(o passKey) bool {
	if p.points != o.points {
		return p.points < o.points
	}

	if p.rank != o.rank {
		return p.rank < o.rank
	}

	return p.card.Less(o.card)
}

// passCard picks the card of the hand that is the most costly to keep.
// Cards in remaining are no longer candidates
func passCard(hand, remaining deck.Set, params game.RoundParameters, shooting bool) (deck.Card, bool) {
	var best passKey
	found := false
	for _, card := range hand.Minus(remaining).Cards() {
		key := passKey{
			points: -thousandths(laterPotential(card, remaining, params)),
			rank:   int(card.Rank),
			card:   card,
		}

		if card.Suit == deck.Heart {
			key.points -= 2
		}

		if card.Suit == deck.Spade && card.Rank > deck.Jack {
			key.points -= 2
		}

		if shooting {
			key.points = abs(key.points)
		} else {
			key.rank = -key.rank
		}

		if !found || key.less(best) {
			best = key
			found = true
		}
	}

	return best.card, found
}
