package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
)

// view is what the estimates need to know about one play decision
type view struct {
	status    *game.Status
	params    game.RoundParameters
	remaining deck.Set
	safe      deck.Set
	dealt     deck.Set
	dealSuit  deck.Suit
	hasSuit   bool
	playsLeft []string
	voids     VoidSuits
	shooting  bool
}

func newView(status *game.Status, shooting bool) *view {
	v := &view{
		status:    status,
		params:    status.RoundParameters,
		remaining: status.UnplayedCards(),
		dealt:     status.InProgressDeal.CardSet(),
		playsLeft: playsLeft(status),
		voids:     InferVoidSuits(status),
		shooting:  shooting,
	}
	v.dealSuit, v.hasSuit = status.LedSuit()

	// cards of a suit nobody left in the deal can follow won't be played into it
	v.safe = v.remaining.Minus(v.voids.Common(v.playsLeft).Cards())
	if !v.dealt.IsEmpty() {
		v.safe = v.safe.Minus(status.CardsPassedByMe)
	}

	return v
}

// suitFor returns the suit that decides the deal if the card is played
func (v *view) suitFor(card deck.Card) deck.Suit {
	if v.hasSuit {
		return v.dealSuit
	}

	return card.Suit
}

// canWin returns true if nothing played in the deal so far beats the card
func (v *view) canWin(card deck.Card) bool {
	if v.status.InProgressDeal == nil {
		return true
	}

	suit := v.suitFor(card)
	best, ok := v.dealt.Highest(suit)
	if !ok {
		return true
	}

	return card.Suit == suit && card.Rank > best.Rank
}

// willWin returns true if the card is certain to take the deal, assuming the
// unseen cards are the ones in others
func (v *view) willWin(card deck.Card, others deck.Set) bool {
	if !v.canWin(card) {
		return false
	}

	if len(v.playsLeft) == 0 {
		return true
	}

	best, ok := others.Highest(v.suitFor(card))
	return !ok || card.Rank > best.Rank
}

// chanceOfWin estimates the probability of the card taking the deal
func (v *view) chanceOfWin(card deck.Card, others deck.Set) float32 {
	if v.willWin(card, others) {
		return 1
	}

	if (v.hasSuit && v.dealSuit != card.Suit) || len(v.playsLeft) == 0 {
		return 0
	}

	return fractionBelow(card, others.Union(v.dealt))
}

// chanceOfLaterWin estimates the probability of the card winning a deal later in the round
func chanceOfLaterWin(card deck.Card, others deck.Set) float32 {
	return fractionBelow(card, others)
}

func fractionBelow(card deck.Card, cards deck.Set) float32 {
	suit := cards.OfSuit(card.Suit)
	if suit.IsEmpty() {
		return 1
	}

	return float32(suit.Below(card).Len()) / float32(suit.Len())
}

// potential estimates the points taken by playing the card into the in-progress deal
func (v *view) potential(card deck.Card) float32 {
	if !v.canWin(card) {
		return 0
	}

	cardPoints := float32(v.params.Points(card))
	dealtPoints := float32(v.params.SumPoints(v.dealt))
	suitPoints := float32(v.params.SumPoints(v.safe.Below(card))) + cardPoints
	otherPoints := float32(v.params.SumPositivePoints(v.safe.Minus(v.safe.OfSuit(card.Suit))))
	numberOfSuit := v.safe.OfSuit(card.Suit).Len()
	numberDealt := v.dealt.Len()

	safeTarget := 9 + cardPoints + dealtPoints - float32(numberDealt)

	modifier := float32(1)
	if suitPoints < 0 && dealtPoints > 2 && numberDealt < 3 {
		modifier = -0.5
	}

	suitWin := float32(0)
	if numberDealt < 3 {
		suitWin = v.chanceOfWin(card, v.safe) * suitPoints * modifier
	}

	otherWin := float32(0)
	if v.shooting || v.voids.AnyVoid(v.playsLeft, card.Suit) || (float32(numberOfSuit) < safeTarget && numberDealt < 3) {
		otherWin = chanceOfLaterWin(card, v.safe.Union(v.dealt)) * otherPoints
	}

	return dealtPoints + suitWin + otherWin
}

// laterPotential estimates the points the card takes if it is kept for a later deal
func laterPotential(card deck.Card, remaining deck.Set, params game.RoundParameters) float32 {
	cardPoints := float32(params.Points(card))
	suitPoints := float32(params.SumPoints(remaining.Below(card)))
	otherPoints := float32(params.SumPositivePoints(remaining.Minus(remaining.OfSuit(card.Suit))))

	return cardPoints + suitPoints + chanceOfLaterWin(card, remaining)*otherPoints
}
