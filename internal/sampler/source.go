package sampler

import "math/rand"

// Source supplies independent uniform draws in [0, 1).
// *rand.Rand satisfies it; tests use scripted sources.
type Source interface {
	Float64() float64
}

// NewSource returns a uniform source seeded once with seed.
// The same seed always yields the same draw sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
