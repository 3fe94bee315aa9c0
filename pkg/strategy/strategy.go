package strategy

import (
	"errors"
	"fmt"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"

	"github.com/sirupsen/logrus"
)

// ErrNoValidCards is returned when a card must be played from an empty hand.
// It means the snapshot is inconsistent and must not be recovered from
var ErrNoValidCards = errors.New("no valid cards to play")

// ErrUnknownStrategy is returned when a strategy name is not registered
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy decides which cards to pass and which card to play
type Strategy interface {
	// PlayerName is the team name the strategy plays for
	PlayerName() string

	// Name identifies the strategy (e.g., "defensive")
	Name() string

	// PassCards returns the cards to pass from the initial hand
	PassCards(status *game.Status) []deck.Card

	// PlayCard returns a legal card from the current hand
	PlayCard(status *game.Status) (deck.Card, error)
}

// Shooter is implemented by strategies that can attempt to shoot the moon
type Shooter interface {
	ShootingTheMoon() bool
}

// Names returns the registered strategy names
func Names() []string {
	return []string{"defensive", "simple"}
}

// New returns the strategy with the name
func New(name, playerName string, logger logrus.FieldLogger) (Strategy, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	switch name {
	case "defensive", "":
		return NewDefensive(playerName, logger), nil
	case "simple":
		return NewSimple(playerName), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
}

// validCards returns the cards of the hand that follow the led suit, or the whole hand if none do
func validCards(status *game.Status) deck.Set {
	hand := status.MyCurrentHand
	if suit, ok := status.LedSuit(); ok {
		if onSuit := hand.OfSuit(suit); !onSuit.IsEmpty() {
			return onSuit
		}
	}

	return hand
}
