package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/mcsampling/internal/config"
	"github.com/roach88/mcsampling/internal/histogram"
	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/sampler"
	"github.com/roach88/mcsampling/internal/store"
)

// RunIDGenerator generates unique run IDs.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type RunIDGenerator interface {
	Generate() string
}

// SeedGenerator chooses the random seed for a run.
// Implemented by WallClockSeed (production) and FixedSeed.
type SeedGenerator interface {
	Seed() int64
}

// Engine runs sampling experiments and optionally persists them.
//
// An Engine holds no per-run state. Run and Replay may be called repeatedly;
// concurrent calls are safe only if the configured generators are.
type Engine struct {
	store *store.Store // nil disables persistence and replay
	ids   RunIDGenerator
	seeds SeedGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore persists every run to s.
func WithStore(s *store.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithRunIDs replaces the default UUIDv7 run ID generator.
func WithRunIDs(g RunIDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// WithSeeds replaces the default wall-clock seed generator.
func WithSeeds(g SeedGenerator) Option {
	return func(e *Engine) {
		e.seeds = g
	}
}

// New creates an Engine. Without options it generates UUIDv7 run IDs,
// seeds from the wall clock and does not persist runs.
func New(opts ...Option) *Engine {
	e := &Engine{
		ids:   UUIDv7Generator{},
		seeds: WallClockSeed{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunOptions holds per-run settings that are not part of the simulation.
type RunOptions struct {
	// Label tags the run in the store. Normalized to NFC.
	Label string

	// Seed overrides the engine's SeedGenerator when non-nil.
	Seed *int64
}

// Result is the outcome of one run.
type Result struct {
	Record     ir.RunRecord
	Trajectory *ir.Trajectory
	Density    *ir.Density

	// Inserted is false when the store already held a run with this ID.
	Inserted bool
}

// Run validates cfg, samples the chain, estimates the density and, when a
// store is configured, persists the run.
//
// A configuration outside the iteration or bin limits returns a
// *config.ValidationError before anything is allocated.
func (e *Engine) Run(ctx context.Context, cfg ir.SimulationConfig, opts RunOptions) (*Result, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	seed := e.seeds.Seed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	hash, err := ir.ConfigHash(cfg)
	if err != nil {
		return nil, fmt.Errorf("hash config: %w", err)
	}

	id := e.ids.Generate()
	slog.Debug("starting run", "run_id", id, "seed", seed, "iterations", cfg.Iterations, "bins", cfg.Bins)

	tr, d := simulate(cfg, seed)

	rec := ir.RunRecord{
		ID:              id,
		Label:           ir.NormalizeLabel(opts.Label),
		ConfigHash:      hash,
		Config:          cfg,
		Seed:            seed,
		Accepted:        tr.Accepted,
		AcceptanceRatio: tr.AcceptanceRatio(),
		MaxDensity:      d.Max,
		EngineVersion:   ir.EngineVersion,
	}

	res := &Result{Record: rec, Trajectory: tr, Density: d, Inserted: true}
	if e.store != nil {
		seq, inserted, err := e.store.WriteRun(ctx, rec, tr, d)
		if err != nil {
			return nil, fmt.Errorf("persist run %s: %w", id, err)
		}
		res.Record.Seq = seq
		res.Inserted = inserted
		if !inserted {
			slog.Warn("run already stored", "run_id", id, "seq", seq)
		}
	}

	slog.Info("run complete",
		"run_id", id,
		"seed", seed,
		"acceptance_ratio", rec.AcceptanceRatio,
		"binned", d.Binned(),
	)
	return res, nil
}

// simulate is the deterministic core of a run: the same config and seed
// always produce bit-identical output.
func simulate(cfg ir.SimulationConfig, seed int64) (*ir.Trajectory, *ir.Density) {
	tr := sampler.Sample(cfg, sampler.NewSource(seed))
	d := histogram.Estimate(tr.Positions, cfg.Domain, cfg.Bins)
	return tr, d
}
