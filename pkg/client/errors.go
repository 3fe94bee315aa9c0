package client

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is returned when the server answers with anything but 200 OK
var ErrUnexpectedStatus = errors.New("unexpected http status")

// GameError is a fault reported by the game server inside the response envelope
type GameError struct {
	Fault string
}

func (g GameError) Error() string {
	if g.Fault == "" {
		return "server reported an error: unknown server error"
	}

	return fmt.Sprintf("server reported an error: %s", g.Fault)
}
