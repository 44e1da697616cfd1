package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRun_InsertsAllTables(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rec, tr, d := createTestRun("run-1", "")

	seq, inserted, err := s.WriteRun(ctx, rec, tr, d)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(1), seq)

	var trajRows, densityRows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM trajectory WHERE run_id = ?`, "run-1").Scan(&trajRows))
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM density WHERE run_id = ?`, "run-1").Scan(&densityRows))
	assert.Equal(t, 3, trajRows)
	assert.Equal(t, 2, densityRows)
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rec, tr, d := createTestRun("run-1", "")

	seq1, inserted1, err := s.WriteRun(ctx, rec, tr, d)
	require.NoError(t, err)
	seq2, inserted2, err := s.WriteRun(ctx, rec, tr, d)
	require.NoError(t, err)

	assert.True(t, inserted1)
	assert.False(t, inserted2)
	assert.Equal(t, seq1, seq2)

	var trajRows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM trajectory`).Scan(&trajRows))
	assert.Equal(t, 3, trajRows)
}

func TestWriteRun_SeqIncreases(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"b", "a", "c"} {
		rec, tr, d := createTestRun(id, "")
		seq, _, err := s.WriteRun(ctx, rec, tr, d)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestWriteRun_NormalizesLabel(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rec, tr, d := createTestRun("run-1", " cafe\u0301 ")

	_, _, err := s.WriteRun(ctx, rec, tr, d)
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", got.Label)
}

func TestWriteRun_CancelledContext(t *testing.T) {
	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec, tr, d := createTestRun("run-1", "")

	_, _, err := s.WriteRun(ctx, rec, tr, d)
	assert.Error(t, err)
}
