package core

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding, so
// randomized boards can be reproduced from a seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns true with probability 0.5.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBinary fills the buffer with independent 0/1 values, each alive with
// probability 0.5.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }
