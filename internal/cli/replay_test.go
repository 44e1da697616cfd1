package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mcsampling/internal/engine"
	"github.com/roach88/mcsampling/internal/store"
	"github.com/roach88/mcsampling/internal/testutil"
)

// seedStore creates a database holding one reference run per ID.
func seedStore(t *testing.T, ids ...string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	eng := engine.New(
		engine.WithStore(st),
		engine.WithSeeds(engine.FixedSeed(42)),
		engine.WithRunIDs(engine.NewFixedGenerator(ids...)),
	)
	for range ids {
		_, err := eng.Run(context.Background(), testutil.ReferenceConfig(), engine.RunOptions{Label: "ref"})
		require.NoError(t, err)
	}
	return dbPath
}

func TestReplayMissingDatabaseFlag(t *testing.T) {
	_, err := execute(NewReplayCommand(&RootOptions{Format: "text"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestReplayDatabaseNotFound(t *testing.T) {
	_, err := execute(NewReplayCommand(&RootOptions{Format: "text"}),
		"--db", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "database not found")
}

func TestReplayEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	st.Close()

	out, err := execute(NewReplayCommand(&RootOptions{Format: "text"}), "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found")
}

func TestReplayAllRuns(t *testing.T) {
	dbPath := seedStore(t, "run-1", "run-2")

	out, err := execute(NewReplayCommand(&RootOptions{Format: "text"}), "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Replay Summary: 2 run(s)")
	assert.Contains(t, out, "✓ Run: run-1")
	assert.Contains(t, out, "✓ Run: run-2")
	assert.Contains(t, out, "✓ All runs verified deterministic")
}

func TestReplaySingleRunJSON(t *testing.T) {
	dbPath := seedStore(t, "run-1", "run-2")

	out, err := execute(NewReplayCommand(&RootOptions{Format: "json"}), "--db", dbPath, "--run", "run-2")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   ReplayResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.TotalRuns)
	assert.True(t, resp.Data.AllDeterministic)
	require.Len(t, resp.Data.Runs, 1)
	assert.Equal(t, "run-2", resp.Data.Runs[0].RunID)
	assert.Equal(t, int64(42), resp.Data.Runs[0].Seed)
	assert.Equal(t, 1000, resp.Data.Runs[0].Iterations)
}

func TestReplayUnknownRun(t *testing.T) {
	dbPath := seedStore(t, "run-1")

	_, err := execute(NewReplayCommand(&RootOptions{Format: "text"}), "--db", dbPath, "--run", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReplayDetectsTampering(t *testing.T) {
	dbPath := seedStore(t, "run-1")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	_, err = st.DB().Exec(`UPDATE trajectory SET energy = energy + 1 WHERE run_id = 'run-1' AND iter = 10`)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execute(NewReplayCommand(&RootOptions{Format: "text"}), "--db", dbPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Run: run-1")
	assert.Contains(t, out, "REPLAY_MISMATCH")
	assert.Contains(t, out, "✗ Determinism verification failed")
}
