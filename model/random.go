package model

import "math/rand/v2"

// NewSeededRand returns a PCG-backed generator, so equal seeds give equal grids
func NewSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// NewRandomGrid fills a grid so each cell is independently alive with probability 1/2.
// Every Uint64 from rng supplies the states of 64 consecutive cells.
func NewRandomGrid(width, height int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)

	var bits uint64
	for idx := range g.cells {
		if idx%64 == 0 {
			bits = rng.Uint64()
		}
		g.cells[idx] = bits&1 == 1
		bits >>= 1
	}

	return g
}
