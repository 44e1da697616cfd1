// Package harness runs declarative sampling scenarios.
//
// A scenario is a YAML file naming a seed, a configuration (inline or by
// path) and a list of assertions on the run output:
//
//	name: reference
//	description: "Reference oscillator run"
//	seed: 42
//	config:
//	  monte_carlo: {iterations: 1000, max_displacement: 0.5, initial_position: 0}
//	  physics: {mass: 1, frequency: 1, beta: 1}
//	  histogram: {domain: 10, bins: 50}
//	assertions:
//	  - type: trajectory_length
//	    count: 1000
//	  - type: acceptance_between
//	    min: 0.01
//	    max: 0.99
//
// Every successful run is also replayed from the store and must reproduce
// the stored output bit for bit, so each scenario doubles as a determinism
// check. Scenarios with expect_error instead require the configuration to
// be rejected with the given validation code.
package harness
