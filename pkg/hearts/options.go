package hearts

import (
	"hearts-client/pkg/game"
)

// Options are options for creating a new round
type Options struct {
	// GameID identifies the game in the snapshots. A random id is used if empty
	GameID string

	// Seed shuffles the deck. 0 picks a random seed
	Seed int64

	// Parameters are the round parameters sent to the players
	Parameters game.RoundParameters
}

// DefaultOptions returns the default options
func DefaultOptions(roundID int) Options {
	return Options{
		Parameters: game.DefaultRoundParameters(roundID),
	}
}
