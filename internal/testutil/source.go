package testutil

import "sync"

// ScriptedSource replays a fixed sequence of uniform draws.
//
// It lets tests drive the sampler through known proposals and acceptance
// decisions. Reset rewinds the script so the same sequence can be reused.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ScriptedSource struct {
	mu    sync.Mutex
	draws []float64
	idx   int
}

// NewScriptedSource creates a source returning draws in order.
//
// Example:
//
//	src := NewScriptedSource(0.75, 0.1)
//	src.Float64() // 0.75
//	src.Float64() // 0.1
//	src.Float64() // panic: all draws exhausted
func NewScriptedSource(draws ...float64) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

// Float64 returns the next scripted draw.
//
// Panics if all draws have been consumed. This catches tests that consume
// more randomness than they scripted.
func (s *ScriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.draws) {
		panic("ScriptedSource: all draws exhausted")
	}
	v := s.draws[s.idx]
	s.idx++
	return v
}

// Drawn returns how many draws have been consumed.
func (s *ScriptedSource) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// Reset rewinds the script to its first draw.
func (s *ScriptedSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
}

// ConstantSource returns the same draw forever.
type ConstantSource float64

// Float64 returns the constant draw.
func (c ConstantSource) Float64() float64 {
	return float64(c)
}
