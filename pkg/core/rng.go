package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Range returns a random int in [lo, hi). It returns lo when the range is empty.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Snap returns a random multiple of step in [lo, hi).
func (r *RNG) Snap(lo, hi, step int) int {
	if step <= 0 {
		return r.Range(lo, hi)
	}
	n := (hi - lo) / step
	if n <= 0 {
		return lo
	}
	return lo + r.r.IntN(n)*step
}

// Pick returns a random element of items, or the zero value for an empty slice.
func Pick[T any](r *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.r.IntN(len(items))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
