// Package config loads and validates simulation parameters.
//
// Three file formats are accepted, selected by extension:
//
//	.yaml, .yml  strict YAML (unknown keys rejected)
//	.cue         CUE, unified with the built-in schema before decoding
//	.in          the legacy line-oriented parameter file
//
// YAML layout:
//
//	monte_carlo:
//	  iterations: 1000        # N, at most ir.MaxIterations
//	  max_displacement: 0.5   # Δx
//	  initial_position: 0.0   # x0
//	physics:
//	  mass: 1
//	  frequency: 1
//	  beta: 1                 # inverse temperature, kb units
//	histogram:
//	  domain: 10              # L, total width
//	  bins: 50                # B, at most ir.MaxBins
//
// Only the iteration and bin counts are range checked. Physical parameters
// are passed through unvalidated.
package config
