package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_notConfigured(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
