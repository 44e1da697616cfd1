package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/mcsampling/internal/ir"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a small run with hand-written trajectory and density.
func createTestRun(id, label string) (ir.RunRecord, *ir.Trajectory, *ir.Density) {
	cfg := ir.SimulationConfig{
		Iterations:      3,
		MaxDisplacement: 0.5,
		InitialPosition: 0.1,
		Mass:            1,
		Frequency:       1,
		Beta:            1,
		Domain:          2,
		Bins:            2,
	}
	tr := &ir.Trajectory{
		Positions: []float64{0.1, 0.1, -0.3},
		Energies:  []float64{0.005, 0.32, 0.045},
		Moves:     []bool{false, false, true},
		Accepted:  1,
	}
	d := &ir.Density{
		Centers: []float64{-0.5, 0.5},
		Values:  []float64{1.0 / 3.0, 2.0 / 3.0},
		Counts:  []int{1, 2},
		Width:   1,
		Samples: 3,
		Max:     2.0 / 3.0,
	}
	rec := ir.RunRecord{
		ID:              id,
		Label:           label,
		ConfigHash:      "test-hash",
		Config:          cfg,
		Seed:            42,
		Accepted:        tr.Accepted,
		AcceptanceRatio: tr.AcceptanceRatio(),
		MaxDensity:      d.Max,
		EngineVersion:   ir.EngineVersion,
	}
	return rec, tr, d
}
