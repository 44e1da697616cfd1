package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), 1000, 50)

	out, err := execute(NewValidateCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Config valid (yaml)")
	assert.Contains(t, out, "Number of histogram bins: 50")
}

func TestValidateLegacyFile(t *testing.T) {
	out, err := execute(NewValidateCommand(&RootOptions{Format: "text"}),
		filepath.Join("..", "config", "testdata", "mc_sampling.in"))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Config valid (legacy)")
}

func TestValidateJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), 1000, 50)

	out, err := execute(NewValidateCommand(&RootOptions{Format: "json"}), path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, "yaml", resp.Data.Format)
	require.NotNil(t, resp.Data.Config)
	assert.Equal(t, 1000, resp.Data.Config.Iterations)
	assert.Len(t, resp.Data.Hash, 64)
}

func TestValidateTooManyBins(t *testing.T) {
	path := writeConfig(t, t.TempDir(), 1000, 1001)

	out, err := execute(NewValidateCommand(&RootOptions{Format: "text"}), path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, "BINS_OUT_OF_RANGE")
}

func TestValidateJSONError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), 0, 50)

	out, err := execute(NewValidateCommand(&RootOptions{Format: "json"}), path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ITERATIONS_OUT_OF_RANGE", resp.Error.Code)
}

func TestValidateMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monte_carlo: [unclosed"), 0644))

	out, err := execute(NewValidateCommand(&RootOptions{Format: "text"}), path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "PARSE_FAILED")
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(NewValidateCommand(&RootOptions{Format: "text"}),
		filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateEmitYAML(t *testing.T) {
	out, err := execute(NewValidateCommand(&RootOptions{Format: "text"}),
		"--emit-yaml", filepath.Join("..", "config", "testdata", "mc_sampling.in"))
	require.NoError(t, err)
	assert.Contains(t, out, "monte_carlo:")
	assert.Contains(t, out, "iterations: 1000")
	assert.Contains(t, out, "bins: 50")
	assert.NotContains(t, out, "✓ Config valid")

	// The emitted YAML loads back to the same configuration.
	path := filepath.Join(t.TempDir(), "converted.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))
	_, err = execute(NewValidateCommand(&RootOptions{Format: "text"}), path)
	require.NoError(t, err)
}
