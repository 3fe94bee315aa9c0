package gamelog

import (
	"context"
	"database/sql"
	"hearts-client/pkg/db"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/wire"
	"strings"

	"github.com/lib/pq"
)

const decisionColumns = `
	id,
	kind,
	deal_number,
	strategy,
	cards,
	snapshot,
	created`

// PostgresRecorder stores decisions in the `decisions` table
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder returns a recorder backed by dbh
func NewPostgresRecorder(dbh *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: dbh}
}

// Record inserts the decision
func (p *PostgresRecorder) Record(ctx context.Context, r *Record) error {
	const query = `
INSERT INTO decisions (id, game_id, round_id, deal_number, kind, strategy, cards, snapshot, created)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	snapshot, err := wire.EncodeGameStatus(r.Status)
	if err != nil {
		return err
	}

	cards := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		cards[i] = deck.CardToString(c)
	}

	_, err = p.db.ExecContext(ctx, query, r.ID, r.GameID(), r.RoundID(), r.Deal, r.Kind, r.Strategy, pq.Array(cards), snapshot, r.Created)
	return err
}

// Decisions returns the decisions recorded for the game in the order they were made
func (p *PostgresRecorder) Decisions(ctx context.Context, gameID string) ([]*Record, error) {
	const query = `
SELECT ` + decisionColumns + `
FROM decisions
WHERE game_id = $1
ORDER BY created, round_id, deal_number`

	rows, err := p.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		r, err := getRecordByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

func getRecordByRow(row db.Scanner) (*Record, error) {
	var r Record
	var cards []string
	var snapshot []byte
	if err := row.Scan(&r.ID, &r.Kind, &r.Deal, &r.Strategy, pq.Array(&cards), &snapshot, &r.Created); err != nil {
		return nil, err
	}

	status, err := wire.DecodeGameStatus(snapshot)
	if err != nil {
		return nil, err
	}

	r.Status = status
	r.Cards = deck.CardsFromString(strings.Join(cards, ","))
	return &r, nil
}
