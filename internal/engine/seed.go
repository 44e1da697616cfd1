package engine

import "time"

// WallClockSeed seeds each run from the current time in nanoseconds.
//
// Thread-safety: WallClockSeed is stateless and safe for concurrent use.
type WallClockSeed struct{}

// Seed returns time.Now().UnixNano().
func (WallClockSeed) Seed() int64 {
	return time.Now().UnixNano()
}

// FixedSeed returns the same seed for every run.
// Used for reproducible runs and in tests.
type FixedSeed int64

// Seed returns the fixed seed.
func (s FixedSeed) Seed() int64 {
	return int64(s)
}
