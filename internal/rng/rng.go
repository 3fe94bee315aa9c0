package rng

import "math"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seed draws a non-negative shuffle seed from the generator
func Seed(g Generator) int64 {
	return int64(g.Intn(math.MaxInt32))
}

// Seeds returns n seeds. A start of zero draws them from the generator,
// otherwise they count up from start so a run can be repeated
func Seeds(g Generator, start int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		if start == 0 {
			seeds[i] = Seed(g)
			continue
		}

		seeds[i] = start + int64(i)
	}

	return seeds
}
