// Package ir holds the value types shared by every stage of a sampling run.
//
// The package contains data definitions plus the canonical encoding used to
// derive content-addressed identifiers. All other internal packages import
// ir; ir imports nothing internal.
//
// Key design constraints:
//   - SimulationConfig is immutable once validated
//   - Trajectory and Density are produced once and then only read
//   - All JSON tags use snake_case
package ir
