package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"

	"github.com/sirupsen/logrus"
)

const (
	passShootMultiplier = 2.5
	playShootMultiplier = 2.0
)

// Defensive avoids taking points. It switches to collecting them when it can shoot
// the moon, or when another participant is about to
type Defensive struct {
	playerName      string
	shootingTheMoon bool
	roundID         int
	logger          logrus.FieldLogger
}

// NewDefensive returns a defensive strategy
func NewDefensive(playerName string, logger logrus.FieldLogger) *Defensive {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Defensive{
		playerName: playerName,
		logger:     logger.WithField("strategy", "defensive"),
	}
}

// PlayerName returns the team name
func (d *Defensive) PlayerName() string {
	return d.playerName
}

// Name returns "defensive"
func (d *Defensive) Name() string {
	return "defensive"
}

// ShootingTheMoon returns true if the last decision was made trying to shoot the moon
func (d *Defensive) ShootingTheMoon() bool {
	return d.shootingTheMoon
}

// newRound clears the round-scoped state when the round changes
func (d *Defensive) newRound(status *game.Status) {
	if status.CurrentRoundID != d.roundID {
		d.roundID = status.CurrentRoundID
		d.shootingTheMoon = false
	}
}

// PassCards returns the cards to pass, most costly to keep first
func (d *Defensive) PassCards(status *game.Status) []deck.Card {
	d.newRound(status)

	hand := status.MyCurrentHand
	if hand.IsEmpty() {
		hand = status.MyInitialHand
	}

	d.shootingTheMoon = false
	d.shootingTheMoon = d.amIShooter(status, hand, passShootMultiplier)

	d.logger.WithFields(logrus.Fields{
		"hand":     status.MyInitialHand.String(),
		"shooting": d.shootingTheMoon,
	}).Debug("choosing cards to pass")

	params := status.RoundParameters
	remaining := status.UnplayedCards().Minus(status.MyInitialHand)
	n := params.NumberOfCardsToBePassed

	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := passCard(status.MyInitialHand, remaining, params, d.shootingTheMoon)
		if !ok {
			break
		}

		cards = append(cards, card)
		remaining = remaining.With(card)
	}

	return cards
}

// PlayCard returns the card to play into the in-progress deal
func (d *Defensive) PlayCard(status *game.Status) (deck.Card, error) {
	d.newRound(status)

	hand := status.MyCurrentHand
	if hand.IsEmpty() {
		return deck.Card{}, ErrNoValidCards
	}

	if hand.Contains(deck.TwoOfClubs) {
		return deck.TwoOfClubs, nil
	}

	d.shootingTheMoon = d.amIShooter(status, hand, playShootMultiplier)
	shooter, shooterFound := possibleShooter(status)

	log := d.logger.WithFields(logrus.Fields{
		"round": status.CurrentRoundID,
		"deal":  status.DealNumber(),
	})

	invert := d.shootingTheMoon || shooterFound
	if d.shootingTheMoon {
		log.Info("shooting the moon")
	} else if shooterFound {
		log.WithField("shooter", shooter).Info("possible shooter detected")
	}

	v := newView(status, d.shootingTheMoon)
	var best CardScore
	scores := make([]CardScore, 0, hand.Len())
	for i, card := range validCards(status).Cards() {
		cs := CardScore{Card: card, Score: v.score(card)}
		if invert {
			cs.Score = cs.Score.Invert()
		}

		scores = append(scores, cs)
		if i == 0 || cs.Less(best) {
			best = cs
		}
	}

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"hand":     hand.String(),
			"unplayed": v.remaining.String(),
			"void":     v.voids.String(),
		}).Debug("evaluating cards")

		for _, cs := range scores {
			log.Debugf("%s: %s", cs.Card, cs.Score)
		}
	}

	return best.Card, nil
}
