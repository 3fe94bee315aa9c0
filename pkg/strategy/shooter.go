package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
)

// shootScores returns, for every participant that has won points this round, the
// points of the hearts and the queen of spades it has taken
func shootScores(status *game.Status) map[string]int {
	won := make(map[string]deck.Set)
	for _, d := range status.Deals {
		if winner, ok := d.Winner(); ok {
			won[winner] = won[winner].Union(d.CardSet())
		}
	}

	scores := make(map[string]int)
	for _, p := range status.Participants {
		score := 0
		for _, c := range won[p.TeamName].Cards() {
			if isShootingCard(c) {
				score += status.RoundParameters.Points(c)
			}
		}

		if score > 0 {
			scores[p.TeamName] = score
		}
	}

	return scores
}

func isShootingCard(c deck.Card) bool {
	return c.Suit == deck.Heart || c == deck.QueenOfSpades
}

// possibleShooter returns the participant that may be shooting the moon: the only
// one with points, with more than the threshold for the number of deals played,
// and still able to win the in-progress deal
func possibleShooter(status *game.Status) (string, bool) {
	scores := shootScores(status)
	if len(scores) != 1 {
		return "", false
	}

	target := 20 - len(status.Deals)
	for name, score := range scores {
		if score > target && mightWinDeal(name, status.InProgressDeal) {
			return name, true
		}
	}

	return "", false
}

// mightWinDeal returns false only when the player's card in the deal is already beaten
func mightWinDeal(playerName string, d *game.Deal) bool {
	suit, ok := d.Suit()
	if !ok {
		return true
	}

	card, ok := d.CardOf(playerName)
	if !ok {
		return true
	}

	if card.Suit != suit {
		return false
	}

	best, _ := d.CardSet().Highest(suit)
	return best.Rank <= card.Rank
}

// amIShooter returns true if nobody else has points and either the engine is
// already shooting, or enough of the hand wins outright
func (d *Defensive) amIShooter(status *game.Status, hand deck.Set, multiplier float64) bool {
	scores := shootScores(status)
	switch len(scores) {
	case 0:
	case 1:
		if _, ok := scores[d.playerName]; !ok {
			return false
		}
	default:
		return false
	}

	if d.shootingTheMoon {
		return true
	}

	v := newView(status, false)
	winners := 0
	for _, c := range hand.Cards() {
		if v.willWin(c, v.remaining) {
			winners++
		}
	}

	return float64(winners)*multiplier > float64(hand.Len())
}
