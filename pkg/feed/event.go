package feed

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"hearts-client/pkg/wire"
	"time"

	"github.com/google/uuid"
)

// Event describes one decision made by the client
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Time       time.Time   `json:"time"`
	GameID     string      `json:"gameId"`
	RoundID    int         `json:"roundId"`
	DealNumber int         `json:"dealNumber"`
	Kind       string      `json:"kind"`
	Cards      []wire.Card `json:"cards"`
	Hand       []wire.Card `json:"hand"`
	Shooting   bool        `json:"shooting"`
	Strategy   string      `json:"strategy"`
}

// NewEvent returns an event for the cards chosen from the snapshot
func NewEvent(kind, strategy string, status *game.Status, cards []deck.Card, shooting bool) *Event {
	return &Event{
		ID:         uuid.New(),
		Time:       time.Now().In(time.UTC),
		GameID:     status.CurrentGameID,
		RoundID:    status.CurrentRoundID,
		DealNumber: status.DealNumber(),
		Kind:       kind,
		Cards:      wire.EncodeCards(cards),
		Hand:       wire.EncodeCards(status.MyCurrentHand.Cards()),
		Shooting:   shooting,
		Strategy:   strategy,
	}
}
