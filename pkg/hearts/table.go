package hearts

import (
	"context"
	"fmt"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"

	"github.com/sirupsen/logrus"
)

// Seat makes the decisions for one player
type Seat interface {
	PassCards(status *game.Status) []deck.Card
	PlayCard(status *game.Status) (deck.Card, error)
}

// Table plays consecutive rounds between four seats and keeps the running totals
type Table struct {
	gameID string
	names  []string
	seats  map[string]Seat
	totals map[string]int
	rounds int
	logger logrus.FieldLogger
}

// NewTable seats the players in order
func NewTable(logger logrus.FieldLogger, gameID string, names []string, seats map[string]Seat) (*Table, error) {
	if len(names) != playerCount {
		return nil, PlayerCountError(len(names))
	}

	for _, name := range names {
		if _, ok := seats[name]; !ok {
			return nil, fmt.Errorf("%w: %s has no seat", ErrUnknownPlayer, name)
		}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Table{
		gameID: gameID,
		names:  append([]string{}, names...),
		seats:  seats,
		totals: make(map[string]int, len(names)),
		logger: logger,
	}, nil
}

// Totals returns the cumulative score of every player
func (t *Table) Totals() map[string]int {
	totals := make(map[string]int, len(t.totals))
	for name, score := range t.totals {
		totals[name] = score
	}

	return totals
}

// Rounds returns the number of rounds played
func (t *Table) Rounds() int {
	return t.rounds
}

// PlayRound deals a new round and plays it to the end
func (t *Table) PlayRound(ctx context.Context, seed int64) (*Round, error) {
	players := make([]*Player, len(t.names))
	for i, name := range t.names {
		players[i] = NewPlayer(name, t.totals[name])
	}

	opts := DefaultOptions(t.rounds + 1)
	opts.GameID = t.gameID
	opts.Seed = seed

	r, err := NewRound(t.logger, players, opts)
	if err != nil {
		return nil, err
	}

	if err := Play(ctx, r, t.seats); err != nil {
		return r, err
	}

	t.rounds++
	for name, score := range r.Scores() {
		t.totals[name] += score
	}

	return r, nil
}

// Play asks the seats for their decisions until the round is over.
// An illegal decision stops the round
func Play(ctx context.Context, r *Round, seats map[string]Seat) error {
	if r.State() == game.HeartsPassing {
		for _, p := range r.Players() {
			status, err := r.Status(p.Name)
			if err != nil {
				return err
			}

			if err := r.PassCards(p.Name, seats[p.Name].PassCards(status)); err != nil {
				return fmt.Errorf("%s could not pass: %w", p.Name, err)
			}
		}
	}

	for !r.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		p, _ := r.CurrentTurn()
		status, err := r.Status(p.Name)
		if err != nil {
			return err
		}

		card, err := seats[p.Name].PlayCard(status)
		if err != nil {
			return fmt.Errorf("%s could not decide: %w", p.Name, err)
		}

		if err := r.PlayCard(p.Name, card); err != nil {
			return fmt.Errorf("%s could not play %s: %w", p.Name, card, err)
		}
	}

	return nil
}
