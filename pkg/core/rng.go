package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 used for every
// randomized tie-break in the simulation.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG using the provided seed. A zero seed draws one from
// the clock, so runs are not reproducible unless a seed is given.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Offset returns a uniformly distributed horizontal offset in {-1, 0, 1}.
func (r *RNG) Offset() int {
	return r.r.IntN(3) - 1
}

// Neighbor returns a uniformly chosen offset to one of the eight Moore
// neighbors; (0, 0) is never returned.
func (r *RNG) Neighbor() (int, int) {
	n := r.r.IntN(8)
	if n >= 4 {
		n++
	}
	return n%3 - 1, n/3 - 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Range returns a random int in [lo, hi). It returns lo when the range is empty.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

