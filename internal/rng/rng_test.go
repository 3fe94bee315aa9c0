package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixed int

func (f fixed) Intn(n int) int {
	return int(f) % n
}

func TestSeed(t *testing.T) {
	a := assert.New(t)

	a.Equal(int64(42), Seed(fixed(42)))

	for i := 0; i < 100; i++ {
		a.GreaterOrEqual(Seed(Crypto{}), int64(0))
	}
}

func TestSeeds(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int64{10, 11, 12}, Seeds(fixed(7), 10, 3))
	a.Equal([]int64{7, 7}, Seeds(fixed(7), 0, 2))
	a.Empty(Seeds(Crypto{}, 0, 0))
}
