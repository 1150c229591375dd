package core

import "math/rand/v2"

// RandomDensity is the chance a cell starts alive in a random fill.
const RandomDensity = 0.3

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// RandomGrid returns an n×n grid seeded from the RNG at RandomDensity.
func (r *RNG) RandomGrid(n int) *Grid {
	g := NewGrid(n)
	g.FillRandom(r.r, RandomDensity)
	return g
}
