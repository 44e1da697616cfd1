package testutil

import "github.com/roach88/mcsampling/internal/ir"

// ReferenceConfig returns the reference run used throughout the tests:
// N=1000, Δx=0.5, x0=0, m=1, ω=1, β=1, L=10, B=50.
func ReferenceConfig() ir.SimulationConfig {
	return ir.SimulationConfig{
		Iterations:      1000,
		MaxDisplacement: 0.5,
		InitialPosition: 0.0,
		Mass:            1,
		Frequency:       1,
		Beta:            1,
		Domain:          10,
		Bins:            50,
	}
}
