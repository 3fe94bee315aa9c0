package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortID(t *testing.T) {
	a := assert.New(t)

	id := ShortID()
	a.Len(id, 8)
	a.NotEqual(id, ShortID())
}
