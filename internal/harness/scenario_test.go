package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const inlineConfig = `
config:
  monte_carlo:
    iterations: 100
    max_displacement: 0.5
  physics:
    mass: 1
    frequency: 1
    beta: 1
  histogram:
    domain: 10
    bins: 10
`

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, t.TempDir(), `
name: test_scenario
description: "Test scenario for validation"
seed: 11
`+inlineConfig+`
assertions:
  - type: trajectory_length
    count: 100
  - type: acceptance_between
    min: 0
    max: 1
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, int64(11), scenario.Seed)
	require.NotNil(t, scenario.Config)
	assert.Equal(t, 100, scenario.Config.MonteCarlo.Iterations)
	require.Len(t, scenario.Assertions, 2)
	assert.Equal(t, 100, *scenario.Assertions[0].Count)
	assert.Equal(t, 1.0, *scenario.Assertions[1].Max)

	cfg, err := scenario.SimulationConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Bins)
	assert.Equal(t, 0.0, cfg.InitialPosition)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), `
name: typo
description: "Misspelled assertions key"
`+inlineConfig+`
assertion:
  - type: trajectory_length
    count: 100
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_ConfigFileRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.yaml"), []byte(`
monte_carlo:
  iterations: 20
histogram:
  domain: 4
  bins: 4
`), 0644))
	path := writeScenario(t, dir, `
name: from_file
description: "Config loaded from a sibling file"
config_file: run.yaml
assertions:
  - type: density_length
    count: 4
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run.yaml"), scenario.ConfigFile)

	cfg, err := scenario.SimulationConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Iterations)
}

func TestLoadScenario_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\n" + inlineConfig + "assertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\n" + inlineConfig + "assertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "description is required",
		},
		{
			name:    "missing config",
			content: "name: n\ndescription: d\nassertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "one of config or config_file is required",
		},
		{
			name:    "both configs",
			content: "name: n\ndescription: d\nconfig_file: x.yaml\n" + inlineConfig + "assertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "config file not found",
			content: "name: n\ndescription: d\nconfig_file: nope.yaml\nassertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "config file not found",
		},
		{
			name:    "no assertions",
			content: "name: n\ndescription: d\n" + inlineConfig,
			wantErr: "assertions list is required",
		},
		{
			name:    "assertions with expect_error",
			content: "name: n\ndescription: d\nexpect_error: BINS_OUT_OF_RANGE\n" + inlineConfig + "assertions:\n  - type: trajectory_length\n    count: 1\n",
			wantErr: "not allowed with expect_error",
		},
		{
			name:    "unknown assertion type",
			content: "name: n\ndescription: d\n" + inlineConfig + "assertions:\n  - type: magic\n",
			wantErr: `unknown assertion type "magic"`,
		},
		{
			name:    "count missing",
			content: "name: n\ndescription: d\n" + inlineConfig + "assertions:\n  - type: density_length\n",
			wantErr: "count is required for density_length",
		},
		{
			name:    "value missing",
			content: "name: n\ndescription: d\n" + inlineConfig + "assertions:\n  - type: bin_width\n",
			wantErr: "value is required for bin_width",
		},
		{
			name:    "inverted bounds",
			content: "name: n\ndescription: d\n" + inlineConfig + "assertions:\n  - type: acceptance_between\n    min: 0.9\n    max: 0.1\n",
			wantErr: "min must not exceed max",
		},
		{
			name:    "empty first sample",
			content: "name: n\ndescription: d\n" + inlineConfig + "assertions:\n  - type: first_sample\n",
			wantErr: "position or energy is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
