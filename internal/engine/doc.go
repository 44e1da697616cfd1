// Package engine runs complete sampling experiments.
//
// A run is strictly sequential:
//
//  1. Validate the configuration (config.Validate); nothing is allocated
//     for a configuration above the iteration or bin limits
//  2. Draw a seed from the SeedGenerator and a run ID from the RunIDGenerator
//  3. Sample the Metropolis chain (package sampler)
//  4. Estimate the density from the finished trajectory (package histogram)
//  5. Persist the run when a store is configured
//
// There is no concurrency and no cancellation inside a run. The context is
// used only for store I/O.
//
// # Determinism
//
// The seed is the only source of randomness. It is always recorded, so a
// stored run can be replayed and compared bit for bit (see Replay).
package engine
