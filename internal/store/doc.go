// Package store provides SQLite-backed durable storage for sampling runs.
//
// Each run is written once, in a single transaction:
//   - runs: configuration, seed, acceptance summary, content hash
//   - trajectory: one row per iteration (position, proposal energy, accepted)
//   - density: one row per histogram bin
//
// # Ordering
//
// Runs are ordered by seq, a logical counter assigned at write time. Queries
// never order by wall-clock time, so listings are stable across machines.
//
// # Idempotency
//
// Writing a run whose ID already exists is a no-op that returns the existing
// seq. Replays therefore never duplicate rows.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// # Migrations
//
// The schema version lives in PRAGMA user_version. Open applies every
// migration above the stored version, each in its own transaction.
package store
