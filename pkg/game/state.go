package game

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a lifecycle state token is not recognized
var ErrInvalidState = errors.New("not a valid state")

// InstanceState is the state of the whole game
type InstanceState string

// InstanceState constants
const (
	InstanceNotStarted InstanceState = "NotStarted"
	InstanceInitiated  InstanceState = "Initiated"
	InstanceOpen       InstanceState = "Open"
	InstanceRunning    InstanceState = "Running"
	InstanceFinished   InstanceState = "Finished"
	InstanceCancelled  InstanceState = "Cancelled"
)

// ParseInstanceState validates a game state token
func ParseInstanceState(s string) (InstanceState, error) {
	switch state := InstanceState(s); state {
	case InstanceNotStarted, InstanceInitiated, InstanceOpen, InstanceRunning, InstanceFinished, InstanceCancelled:
		return state, nil
	}

	return "", fmt.Errorf("%w: game state %q", ErrInvalidState, s)
}

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	RoundNotStarted RoundState = "NotStarted"
	RoundInitiated  RoundState = "Initiated"
	RoundRunning    RoundState = "Running"
	RoundFinished   RoundState = "Finished"
	RoundCancelled  RoundState = "Cancelled"
)

// ParseRoundState validates a round state token
func ParseRoundState(s string) (RoundState, error) {
	switch state := RoundState(s); state {
	case RoundNotStarted, RoundInitiated, RoundRunning, RoundFinished, RoundCancelled:
		return state, nil
	}

	return "", fmt.Errorf("%w: round state %q", ErrInvalidState, s)
}

// HeartsState is the round-scoped state of the hearts game (passing or dealing)
type HeartsState string

// HeartsState constants
const (
	HeartsNotStarted HeartsState = "NotStarted"
	HeartsInitiated  HeartsState = "Initiated"
	HeartsPassing    HeartsState = "Passing"
	HeartsDealing    HeartsState = "Dealing"
	HeartsFinished   HeartsState = "Finished"
	HeartsCancelled  HeartsState = "Cancelled"
)

// ParseHeartsState validates a hearts game state token
func ParseHeartsState(s string) (HeartsState, error) {
	switch state := HeartsState(s); state {
	case HeartsNotStarted, HeartsInitiated, HeartsPassing, HeartsDealing, HeartsFinished, HeartsCancelled:
		return state, nil
	}

	return "", fmt.Errorf("%w: hearts state %q", ErrInvalidState, s)
}
