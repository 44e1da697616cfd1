package harness

import (
	"context"
	"fmt"

	"github.com/roach88/mcsampling/internal/config"
	"github.com/roach88/mcsampling/internal/engine"
	"github.com/roach88/mcsampling/internal/store"
	"github.com/roach88/mcsampling/internal/testutil"
)

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
// The run ID is the scenario name and the seed is the scenario seed, so
// results are reproducible.
//
// Execution flow:
//  1. Create fresh in-memory database
//  2. Run the simulation through the engine
//  3. Replay the stored run and require a bit-identical result
//  4. Evaluate assertions
//
// A non-nil error means the scenario could not be executed at all; failed
// expectations are reported in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	cfg, err := scenario.SimulationConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	eng := engine.New(
		engine.WithStore(st),
		engine.WithSeeds(engine.FixedSeed(scenario.Seed)),
		engine.WithRunIDs(testutil.NewFixedRunIDGenerator(scenario.Name)),
	)

	ctx := context.Background()
	result := NewResult()

	res, err := eng.Run(ctx, cfg, engine.RunOptions{Label: scenario.Name})
	if err != nil {
		if !config.IsValidationError(err) {
			return nil, fmt.Errorf("failed to run scenario: %w", err)
		}
		if code := config.ErrorCode(err); code != scenario.ExpectError {
			result.AddError(fmt.Sprintf("run rejected: %v", err))
		}
		return result, nil
	}

	result.Record = res.Record
	result.Trajectory = res.Trajectory
	result.Density = res.Density

	if scenario.ExpectError != "" {
		result.AddError(fmt.Sprintf("expected error %s, run succeeded", scenario.ExpectError))
		return result, nil
	}

	if _, err := eng.Replay(ctx, res.Record.ID); err != nil {
		if !engine.IsReplayMismatch(err) {
			return nil, fmt.Errorf("failed to replay scenario: %w", err)
		}
		result.AddError(err.Error())
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}
