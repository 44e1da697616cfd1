package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/mcsampling/internal/ir"
)

// RunSnapshot captures the seed-dependent output of a scenario run.
// Serialized with canonical JSON for deterministic comparison.
type RunSnapshot struct {
	ScenarioName    string  `json:"scenario_name"`
	Seed            int64   `json:"seed"`
	Iterations      int     `json:"iterations"`
	Accepted        int     `json:"accepted"`
	AcceptanceRatio float64 `json:"acceptance_ratio"`
	Counts          []int   `json:"counts"`
	MaxDensity      float64 `json:"max_density"`
}

// NewRunSnapshot builds a snapshot from a completed result.
func NewRunSnapshot(name string, result *Result) RunSnapshot {
	snap := RunSnapshot{
		ScenarioName: name,
		Seed:         result.Record.Seed,
		Counts:       []int{},
	}
	if result.Trajectory != nil {
		snap.Iterations = result.Trajectory.Len()
		snap.Accepted = result.Trajectory.Accepted
		snap.AcceptanceRatio = result.Trajectory.AcceptanceRatio()
	}
	if result.Density != nil {
		snap.Counts = result.Density.Counts
		snap.MaxDensity = result.Density.Max
	}
	return snap
}

// toCanonicalMap converts a RunSnapshot to a map[string]any for canonical JSON serialization.
// This is required because ir.MarshalCanonical only handles primitives, slices and maps.
func (s RunSnapshot) toCanonicalMap() map[string]any {
	counts := make([]any, len(s.Counts))
	for i, c := range s.Counts {
		counts[i] = c
	}
	return map[string]any{
		"scenario_name":    s.ScenarioName,
		"seed":             s.Seed,
		"iterations":       s.Iterations,
		"accepted":         s.Accepted,
		"acceptance_ratio": s.AcceptanceRatio,
		"counts":           counts,
		"max_density":      s.MaxDensity,
	}
}

// MarshalCanonical encodes the snapshot as canonical JSON.
func (s RunSnapshot) MarshalCanonical() ([]byte, error) {
	return ir.MarshalCanonical(s.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := NewRunSnapshot(scenario.Name, result).MarshalCanonical()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
