package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mcsampling/internal/config"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return scenario
}

func TestRun_Scenarios(t *testing.T) {
	for _, name := range []string{"reference", "cold", "legacy_file", "too_many_bins"} {
		t.Run(name, func(t *testing.T) {
			result, err := Run(loadTestScenario(t, name))
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_RecordsRun(t *testing.T) {
	result, err := Run(loadTestScenario(t, "reference"))
	require.NoError(t, err)

	assert.Equal(t, "reference", result.Record.ID)
	assert.Equal(t, "reference", result.Record.Label)
	assert.Equal(t, int64(42), result.Record.Seed)
	assert.Equal(t, int64(1), result.Record.Seq)
	require.NotNil(t, result.Trajectory)
	require.NotNil(t, result.Density)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(loadTestScenario(t, "reference"))
	require.NoError(t, err)
	b, err := Run(loadTestScenario(t, "reference"))
	require.NoError(t, err)

	assert.Equal(t, a.Trajectory, b.Trajectory)
	assert.Equal(t, a.Density, b.Density)
}

func TestRun_FailedAssertion(t *testing.T) {
	scenario := loadTestScenario(t, "reference")
	count := 999
	scenario.Assertions = []Assertion{{Type: AssertTrajectoryLength, Count: &count}}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Expected: 999 samples")
	assert.Contains(t, result.Errors[0], "Actual: 1000 samples")
}

func TestRun_UnexpectedRejection(t *testing.T) {
	scenario := loadTestScenario(t, "too_many_bins")
	scenario.ExpectError = config.ErrCodeIterationsOutOfRange

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], config.ErrCodeBinsOutOfRange)
	assert.Nil(t, result.Trajectory)
}

func TestRun_ExpectedErrorNotRaised(t *testing.T) {
	scenario := loadTestScenario(t, "reference")
	scenario.ExpectError = config.ErrCodeBinsOutOfRange
	scenario.Assertions = nil

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "run succeeded")
}

func TestRunWithGolden_SingleSample(t *testing.T) {
	// One iteration: the trajectory is the initial position alone, so the
	// snapshot does not depend on the random source.
	count := 1
	position := 0.3
	energy := 0.045
	scenario := &Scenario{
		Name:        "single_sample",
		Description: "Single iteration records only the initial configuration",
		Seed:        7,
		Config: &config.File{
			MonteCarlo: config.MonteCarloSection{Iterations: 1, MaxDisplacement: 0.5, InitialPosition: 0.3},
			Physics:    config.PhysicsSection{Mass: 1, Frequency: 1, Beta: 1},
			Histogram:  config.HistogramSection{Domain: 2, Bins: 2},
		},
		Assertions: []Assertion{
			{Type: AssertTrajectoryLength, Count: &count},
			{Type: AssertFirstSample, Position: &position, Energy: &energy},
		},
	}

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}
