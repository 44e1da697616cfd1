package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/mcsampling/internal/ir"
)

const runColumns = `id, seq, label, config_hash, config, seed, accepted, acceptance_ratio, max_density, engine_version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (ir.RunRecord, error) {
	var rec ir.RunRecord
	var configJSON string
	err := row.Scan(
		&rec.ID,
		&rec.Seq,
		&rec.Label,
		&rec.ConfigHash,
		&configJSON,
		&rec.Seed,
		&rec.Accepted,
		&rec.AcceptanceRatio,
		&rec.MaxDensity,
		&rec.EngineVersion,
	)
	if err != nil {
		return ir.RunRecord{}, err
	}
	if err := json.Unmarshal([]byte(configJSON), &rec.Config); err != nil {
		return ir.RunRecord{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return rec, nil
}

// ReadRun retrieves a run summary by ID.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *Store) ReadRun(ctx context.Context, id string) (ir.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return rec, nil
}

// ListRuns returns the stored runs matching filter, ordered by seq.
func (s *Store) ListRuns(ctx context.Context, filter RunFilter) ([]ir.RunRecord, error) {
	query, args := filter.compile()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.RunRecord{}
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// ReadTrajectory retrieves the stored trajectory of a run in iteration order.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *Store) ReadTrajectory(ctx context.Context, runID string) (*ir.Trajectory, error) {
	if _, err := s.ReadRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT position, energy, accepted FROM trajectory
		WHERE run_id = ?
		ORDER BY iter ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}
	defer rows.Close()

	tr := &ir.Trajectory{
		Positions: []float64{},
		Energies:  []float64{},
		Moves:     []bool{},
	}
	for rows.Next() {
		var position, energy float64
		var accepted int
		if err := rows.Scan(&position, &energy, &accepted); err != nil {
			return nil, fmt.Errorf("read trajectory: scan: %w", err)
		}
		tr.Positions = append(tr.Positions, position)
		tr.Energies = append(tr.Energies, energy)
		tr.Moves = append(tr.Moves, accepted == 1)
		if accepted == 1 {
			tr.Accepted++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}
	return tr, nil
}

// ReadDensity retrieves the stored histogram of a run in bin order.
// Width and Samples are taken from the stored configuration.
// Returns ErrRunNotFound if the run doesn't exist.
func (s *Store) ReadDensity(ctx context.Context, runID string) (*ir.Density, error) {
	rec, err := s.ReadRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT center, count, value FROM density
		WHERE run_id = ?
		ORDER BY bin ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read density: %w", err)
	}
	defer rows.Close()

	d := &ir.Density{
		Centers: []float64{},
		Values:  []float64{},
		Counts:  []int{},
		Width:   rec.Config.BinWidth(),
		Samples: rec.Config.Iterations,
		Max:     rec.MaxDensity,
	}
	for rows.Next() {
		var center, value float64
		var count int
		if err := rows.Scan(&center, &count, &value); err != nil {
			return nil, fmt.Errorf("read density: scan: %w", err)
		}
		d.Centers = append(d.Centers, center)
		d.Counts = append(d.Counts, count)
		d.Values = append(d.Values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read density: %w", err)
	}
	return d, nil
}
