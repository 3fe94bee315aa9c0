package util

import (
	"strings"

	"github.com/google/uuid"
)

// ShortID returns the first block of a random UUID, suitable for naming simulated games
func ShortID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
