// Package rng provides the deterministic random source used to pick upcoming pieces.
package rng

import "math/rand/v2"

// DefaultSeed is used by generators that were never seeded explicitly.
const DefaultSeed = 1

// Generator is a seedable pseudo-random sequence. Two generators with the same seed produce
// the same sequence.
type Generator struct {
	src *rand.PCG
	r   *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed)
	return &Generator{src: src, r: rand.New(src)}
}

// SetSeed restarts the sequence from seed.
func (g *Generator) SetSeed(seed int64) {
	g.src.Seed(uint64(seed), uint64(seed))
}

// Range returns a value in [0, n). It returns 0 when n is not positive.
func (g *Generator) Range(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}
