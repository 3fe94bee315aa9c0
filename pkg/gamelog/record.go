package gamelog

import (
	"context"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"time"

	"github.com/google/uuid"
)

// Kind is the kind of decision that was recorded
type Kind string

// Kind constants
const (
	KindPass     Kind = "pass"
	KindPlay     Kind = "play"
	KindSnapshot Kind = "snapshot"
)

// FinalDeal is the deal number a round's closing snapshot is filed under
const FinalDeal = 14

// Record is one decision and the snapshot it was made from
type Record struct {
	ID       uuid.UUID
	Kind     Kind
	Strategy string
	Deal     int
	Status   *game.Status
	Cards    []deck.Card
	Created  time.Time
}

// NewRecord returns a record stamped with a new ID and the current time.
// Passes are filed under deal 0 and closing snapshots under FinalDeal
func NewRecord(kind Kind, strategy string, status *game.Status, cards []deck.Card) *Record {
	deal := status.DealNumber()
	switch kind {
	case KindPass:
		deal = 0
	case KindSnapshot:
		deal = FinalDeal
	}

	return &Record{
		ID:       uuid.New(),
		Kind:     kind,
		Strategy: strategy,
		Deal:     deal,
		Status:   status,
		Cards:    cards,
		Created:  time.Now().In(time.UTC),
	}
}

// GameID returns the game the record belongs to
func (r *Record) GameID() string {
	return r.Status.CurrentGameID
}

// RoundID returns the round the record belongs to
func (r *Record) RoundID() int {
	return r.Status.CurrentRoundID
}

// Recorder persists decisions
type Recorder interface {
	Record(ctx context.Context, r *Record) error
}

// NopRecorder discards every record
type NopRecorder struct{}

// Record is a no-op
func (NopRecorder) Record(context.Context, *Record) error {
	return nil
}
