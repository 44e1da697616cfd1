package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/mcsampling/internal/ir"
)

// WriteRun atomically stores a run summary, its trajectory and its density.
// Returns the run's seq and whether a new run was inserted.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency. If the run already
// exists, its seq is returned with inserted=false and nothing else is
// written. rec.Seq is ignored; seq is assigned here.
func (s *Store) WriteRun(ctx context.Context, rec ir.RunRecord, tr *ir.Trajectory, d *ir.Density) (seq int64, inserted bool, err error) {
	configJSON, err := json.Marshal(rec.Config)
	if err != nil {
		return 0, false, fmt.Errorf("write run: marshal config: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq)
	if err != nil {
		return 0, false, fmt.Errorf("write run: next seq: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, label, config_hash, config, seed, accepted, acceptance_ratio, max_density, engine_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		seq,
		ir.NormalizeLabel(rec.Label),
		rec.ConfigHash,
		string(configJSON),
		rec.Seed,
		rec.Accepted,
		rec.AcceptanceRatio,
		rec.MaxDensity,
		rec.EngineVersion,
	)
	if err != nil {
		return 0, false, fmt.Errorf("write run: insert run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("write run: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Run already stored
		err = tx.QueryRowContext(ctx, `SELECT seq FROM runs WHERE id = ?`, rec.ID).Scan(&seq)
		if err != nil {
			return 0, false, fmt.Errorf("write run: select existing: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return 0, false, fmt.Errorf("write run: commit (existing): %w", err)
		}
		return seq, false, nil
	}

	if err := writeTrajectory(ctx, tx, rec.ID, tr); err != nil {
		return 0, false, err
	}
	if err := writeDensity(ctx, tx, rec.ID, d); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("write run: commit: %w", err)
	}
	return seq, true, nil
}

func writeTrajectory(ctx context.Context, tx *sql.Tx, runID string, tr *ir.Trajectory) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trajectory (run_id, iter, position, energy, accepted)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write trajectory: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range tr.Positions {
		accepted := 0
		if i < len(tr.Moves) && tr.Moves[i] {
			accepted = 1
		}
		if _, err := stmt.ExecContext(ctx, runID, i, tr.Positions[i], tr.Energies[i], accepted); err != nil {
			return fmt.Errorf("write trajectory: iter %d: %w", i, err)
		}
	}
	return nil
}

func writeDensity(ctx context.Context, tx *sql.Tx, runID string, d *ir.Density) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO density (run_id, bin, center, count, value)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write density: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range d.Values {
		if _, err := stmt.ExecContext(ctx, runID, i, d.Centers[i], d.Counts[i], d.Values[i]); err != nil {
			return fmt.Errorf("write density: bin %d: %w", i, err)
		}
	}
	return nil
}
