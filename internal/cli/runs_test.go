package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsList(t *testing.T) {
	dbPath := seedStore(t, "run-aaaaaaaa-1", "run-bbbbbbbb-2")

	out, err := execute(NewRunsCommand(&RootOptions{Format: "text"}), "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "SEQ")
	assert.Contains(t, out, "run-aaaa…")
	assert.Contains(t, out, "run-bbbb…")
	assert.Contains(t, out, "ref")
}

func TestRunsListJSONWithLabel(t *testing.T) {
	dbPath := seedStore(t, "run-1", "run-2")

	out, err := execute(NewRunsCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--label", "ref")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   RunsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	require.Len(t, resp.Data.Runs, 2)
	assert.Equal(t, "run-1", resp.Data.Runs[0].ID)
	assert.Equal(t, int64(1), resp.Data.Runs[0].Seq)
	assert.Equal(t, int64(2), resp.Data.Runs[1].Seq)

	out, err = execute(NewRunsCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--label", "other")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0, resp.Data.Total)
}

func TestRunsDetail(t *testing.T) {
	dbPath := seedStore(t, "run-1")

	out, err := execute(NewRunsCommand(&RootOptions{Format: "text"}), "--db", dbPath, "--run", "run-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Run: run-1")
	assert.Contains(t, out, "Seed: 42")
	assert.Contains(t, out, "=== Density ===")
	assert.Contains(t, out, " -4.900000")
}

func TestRunsDetailNotFound(t *testing.T) {
	dbPath := seedStore(t, "run-1")

	out, err := execute(NewRunsCommand(&RootOptions{Format: "text"}), "--db", dbPath, "--run", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "run not found: missing")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "short", truncateID("short"))
	assert.Equal(t, "01890a5d…", truncateID("01890a5d-ac96-774b-bcce-b302099a8057"))
}

func TestRunsFilterBySeedAndHash(t *testing.T) {
	dbPath := seedStore(t, "run-1")

	var resp struct {
		Data RunsResult `json:"data"`
	}

	out, err := execute(NewRunsCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--seed", "43")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0, resp.Data.Total)

	out, err = execute(NewRunsCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--seed", "42")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, 1, resp.Data.Total)
	hash := resp.Data.Runs[0].ConfigHash

	out, err = execute(NewRunsCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--config-hash", hash)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Total)
}
