package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/roach88/mcsampling/internal/ir"
)

// ReplayReport summarizes a successful replay.
type ReplayReport struct {
	RunID      string `json:"run_id"`
	Seed       int64  `json:"seed"`
	Iterations int    `json:"iterations"`
	Bins       int    `json:"bins"`
	Accepted   int    `json:"accepted"`
}

// Replay re-runs a stored run from its stored config and seed and compares
// the result with what was stored.
//
// Every position, energy and density value must match bit for bit, along with
// the accepted move count. Any difference returns a *RuntimeError with code
// REPLAY_MISMATCH. The replay itself is never persisted.
func (e *Engine) Replay(ctx context.Context, runID string) (*ReplayReport, error) {
	if e.store == nil {
		return nil, &RuntimeError{
			Code:    ErrCodeStoreRequired,
			Message: "replay requires a run store",
			RunID:   runID,
		}
	}

	rec, err := e.store.ReadRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}

	hash, err := ir.ConfigHash(rec.Config)
	if err != nil {
		return nil, fmt.Errorf("hash stored config: %w", err)
	}
	if hash != rec.ConfigHash {
		return nil, &RuntimeError{
			Code:    ErrCodeConfigHashMismatch,
			Message: "stored config does not match its hash",
			RunID:   runID,
			Details: map[string]string{"stored": rec.ConfigHash, "computed": hash},
		}
	}

	storedTr, err := e.store.ReadTrajectory(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}
	storedD, err := e.store.ReadDensity(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("read density: %w", err)
	}

	slog.Debug("replaying run", "run_id", runID, "seed", rec.Seed)
	tr, d := simulate(rec.Config, rec.Seed)

	if err := compareTrajectory(runID, storedTr, tr); err != nil {
		return nil, err
	}
	if err := compareDensity(runID, storedD, d); err != nil {
		return nil, err
	}

	slog.Info("replay matched", "run_id", runID, "iterations", tr.Len(), "bins", d.Len())
	return &ReplayReport{
		RunID:      runID,
		Seed:       rec.Seed,
		Iterations: tr.Len(),
		Bins:       d.Len(),
		Accepted:   tr.Accepted,
	}, nil
}

func compareTrajectory(runID string, stored, replayed *ir.Trajectory) error {
	if stored.Len() != replayed.Len() {
		return NewReplayMismatchError(runID, "trajectory length", min(stored.Len(), replayed.Len()))
	}
	if stored.Accepted != replayed.Accepted {
		return NewReplayMismatchError(runID, "accepted count", 0)
	}
	for i := range stored.Positions {
		if !sameBits(stored.Positions[i], replayed.Positions[i]) {
			return NewReplayMismatchError(runID, "position", i)
		}
		if !sameBits(stored.Energies[i], replayed.Energies[i]) {
			return NewReplayMismatchError(runID, "energy", i)
		}
		if stored.Moves[i] != replayed.Moves[i] {
			return NewReplayMismatchError(runID, "move", i)
		}
	}
	return nil
}

func compareDensity(runID string, stored, replayed *ir.Density) error {
	if stored.Len() != replayed.Len() {
		return NewReplayMismatchError(runID, "density length", min(stored.Len(), replayed.Len()))
	}
	for i := range stored.Values {
		if stored.Counts[i] != replayed.Counts[i] {
			return NewReplayMismatchError(runID, "bin count", i)
		}
		if !sameBits(stored.Values[i], replayed.Values[i]) {
			return NewReplayMismatchError(runID, "density", i)
		}
		if !sameBits(stored.Centers[i], replayed.Centers[i]) {
			return NewReplayMismatchError(runID, "bin center", i)
		}
	}
	return nil
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
