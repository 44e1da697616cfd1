// Package sampler implements the Metropolis random walk for a single
// particle in a harmonic potential.
//
// The walk proposes x_new = x_old + 2·Δx·(r1 − 0.5) and accepts the move when
// r2 < exp(−β·(U(x_new) − U(x_old))). Every iteration records the current
// position and the PROPOSED energy, see ir.Trajectory.
//
// Sampling is single-threaded and runs to completion; there is no
// cancellation point. Callers validate the configuration first (see package
// config), after which Sample cannot fail.
package sampler
