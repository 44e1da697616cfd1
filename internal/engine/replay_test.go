package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/mcsampling/internal/store"
	"github.com/roach88/mcsampling/internal/testutil"
)

func storeReferenceRun(t *testing.T, s *store.Store, id string) {
	t.Helper()
	e := New(WithStore(s), WithSeeds(FixedSeed(42)), WithRunIDs(NewFixedGenerator(id)))
	_, err := e.Run(context.Background(), testutil.ReferenceConfig(), RunOptions{})
	require.NoError(t, err)
}

func TestReplay_Matches(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	storeReferenceRun(t, s, "run-1")

	// A different seed generator must not matter: replay uses the stored seed.
	e := New(WithStore(s), WithSeeds(FixedSeed(1)))
	report, err := e.Replay(ctx, "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, int64(42), report.Seed)
	assert.Equal(t, 1000, report.Iterations)
	assert.Equal(t, 50, report.Bins)

	runs, err := s.ListRuns(ctx, store.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, runs, 1, "replay must not store a new run")
}

func TestReplay_RequiresStore(t *testing.T) {
	_, err := New().Replay(context.Background(), "run-1")
	require.Error(t, err)

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrCodeStoreRequired, re.Code)
}

func TestReplay_UnknownRun(t *testing.T) {
	s := setupTestStore(t)
	_, err := New(WithStore(s)).Replay(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestReplay_DetectsTamperedPosition(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	storeReferenceRun(t, s, "run-1")

	_, err := s.DB().ExecContext(ctx,
		`UPDATE trajectory SET position = position + 1e-9 WHERE run_id = ? AND iter = 500`, "run-1")
	require.NoError(t, err)

	_, err = New(WithStore(s)).Replay(ctx, "run-1")
	require.Error(t, err)
	assert.True(t, IsReplayMismatch(err))

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrCodeReplayMismatch, re.Code)
	assert.Equal(t, "position", re.Details["what"])
	assert.Equal(t, "500", re.Details["index"])
}

func TestReplay_DetectsTamperedDensity(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	storeReferenceRun(t, s, "run-1")

	_, err := s.DB().ExecContext(ctx,
		`UPDATE density SET value = value * 2 WHERE run_id = ? AND bin = 25`, "run-1")
	require.NoError(t, err)

	_, err = New(WithStore(s)).Replay(ctx, "run-1")
	require.Error(t, err)

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "density", re.Details["what"])
	assert.Equal(t, "25", re.Details["index"])
}

func TestReplay_DetectsConfigHashMismatch(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	storeReferenceRun(t, s, "run-1")

	_, err := s.DB().ExecContext(ctx, `UPDATE runs SET config_hash = 'forged' WHERE id = ?`, "run-1")
	require.NoError(t, err)

	_, err = New(WithStore(s)).Replay(ctx, "run-1")
	require.Error(t, err)

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrCodeConfigHashMismatch, re.Code)
}
