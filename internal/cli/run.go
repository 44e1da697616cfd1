package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/mcsampling/internal/engine"
	"github.com/roach88/mcsampling/internal/report"
	"github.com/roach88/mcsampling/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Seed     int64
	Database string
	OutDir   string
	Workbook string
	Image    string
	Plot     bool
	Label    string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// RunSummary is the JSON payload of a successful run.
type RunSummary struct {
	RunID           string   `json:"run_id"`
	Seq             int64    `json:"seq,omitempty"`
	Label           string   `json:"label,omitempty"`
	Seed            int64    `json:"seed"`
	Iterations      int      `json:"iterations"`
	Bins            int      `json:"bins"`
	Accepted        int      `json:"accepted"`
	AcceptanceRatio float64  `json:"acceptance_ratio"`
	MaxDensity      float64  `json:"max_density"`
	Files           []string `json:"files,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

// newRunCommand builds the run command around opts. Flag defaults overwrite
// the flag-bound fields; other fields such as RunIDs are kept.
func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <config>",
		Short: "Run a sampling simulation",
		Long: `Run a Metropolis sampling simulation from a configuration file.

The configuration format is chosen by extension: .yaml/.yml, .cue, or the
legacy .in parameter file. The run writes configuration.out, histogram.out,
histogram.gp and configuration.gp into --out, and optionally an XLSX
workbook, a PNG density plot and a run store entry that can later be
replayed.

Exit codes:
  0 - Run completed
  1 - Configuration rejected (iterations or bins out of range, schema errors)
  2 - Command error (missing file, database or output errors)

Examples:
  mcsampling run mc_sampling.yaml
  mcsampling run mc_sampling.in --seed 42 --db runs.db --label baseline
  mcsampling run mc_sampling.cue --out ./out --xlsx ./out/run.xlsx --plot
  mcsampling run mc_sampling.yaml --png density.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (default: wall clock)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run store (optional)")
	cmd.Flags().StringVar(&opts.OutDir, "out", ".", "directory for data files and gnuplot scripts")
	cmd.Flags().StringVar(&opts.Workbook, "xlsx", "", "write an XLSX workbook to this path")
	cmd.Flags().StringVar(&opts.Image, "png", "", "render the density plot to this image path")
	cmd.Flags().BoolVar(&opts.Plot, "plot", false, "plot the results with gnuplot")
	cmd.Flags().StringVar(&opts.Label, "label", "", "label stored with the run")

	return cmd
}

func runSimulation(opts *RunOptions, configPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		_ = formatter.Error(errorCode(err, ErrCodeConfig), err.Error(), nil)
		return err
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engineOpts := []engine.Option{}
	if opts.RunIDs != nil {
		engineOpts = append(engineOpts, engine.WithRunIDs(opts.RunIDs))
	}
	if opts.Database != "" {
		slog.Debug("opening database", "path", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		engineOpts = append(engineOpts, engine.WithStore(st))
	}
	eng := engine.New(engineOpts...)

	if !formatter.IsJSON() {
		if err := report.EchoParameters(formatter.Writer, cfg); err != nil {
			return err
		}
	}

	runOpts := engine.RunOptions{Label: opts.Label}
	if cmd.Flags().Changed("seed") {
		runOpts.Seed = &opts.Seed
	}
	res, err := eng.Run(ctx, cfg, runOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "run failed", err)
	}

	summary := RunSummary{
		RunID:           res.Record.ID,
		Seq:             res.Record.Seq,
		Label:           res.Record.Label,
		Seed:            res.Record.Seed,
		Iterations:      cfg.Iterations,
		Bins:            cfg.Bins,
		Accepted:        res.Record.Accepted,
		AcceptanceRatio: res.Record.AcceptanceRatio,
		MaxDensity:      res.Record.MaxDensity,
	}

	files, err := report.WriteFiles(opts.OutDir, cfg, res.Trajectory, res.Density)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write report files", err)
	}
	summary.Files = files

	if opts.Workbook != "" {
		if err := report.WriteWorkbook(opts.Workbook, res.Record, res.Trajectory, res.Density); err != nil {
			return WrapExitError(ExitCommandError, "failed to write workbook", err)
		}
		summary.Files = append(summary.Files, opts.Workbook)
	}

	if opts.Image != "" {
		if err := report.WritePNG(opts.Image, cfg, res.Density); err != nil {
			return WrapExitError(ExitCommandError, "failed to render plot", err)
		}
		summary.Files = append(summary.Files, opts.Image)
	}

	if formatter.IsJSON() {
		if err := formatter.encode(CLIResponse{Status: "ok", Data: summary, RunID: summary.RunID}); err != nil {
			return err
		}
	} else {
		outputRunText(formatter, summary)
	}

	if opts.Plot {
		for _, script := range []string{report.HistogramScriptFile, report.ConfigScriptFile} {
			if err := report.Plot(ctx, opts.OutDir, script); err != nil {
				return WrapExitError(ExitCommandError, "failed to plot", err)
			}
		}
	}

	return nil
}

// outputRunText prints the acceptance ratio and where the run went.
func outputRunText(f *OutputFormatter, s RunSummary) {
	_ = report.EchoAcceptance(f.Writer, s.AcceptanceRatio)

	fmt.Fprintf(f.Writer, "Run: %s (seed %d)\n", s.RunID, s.Seed)
	if s.Seq > 0 {
		fmt.Fprintf(f.Writer, "Stored as #%d\n", s.Seq)
	}
	f.VerboseLog("Accepted %d of %d moves, max density %f", s.Accepted, s.Iterations, s.MaxDensity)
	for _, path := range s.Files {
		fmt.Fprintf(f.Writer, "  wrote %s\n", path)
	}
}
