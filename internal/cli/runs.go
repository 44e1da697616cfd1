package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
	Label      string // optional - filter to one label
	ConfigHash string // optional - filter to one configuration
	Seed       int64  // optional - filter to one seed, when the flag is set
	RunID      string // optional - show one run in detail
}

// RunsResult holds the list output.
type RunsResult struct {
	Runs  []ir.RunRecord `json:"runs"`
	Total int            `json:"total"`
}

// RunDetail holds the detail output for a single run.
type RunDetail struct {
	Run     ir.RunRecord `json:"run"`
	Density *ir.Density  `json:"density"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		Long: `List the runs recorded in a run store, oldest first.

With --run, show one run in detail including its sampled density.

Examples:
  mcsampling runs --db ./runs.db
  mcsampling runs --db ./runs.db --label baseline
  mcsampling runs --db ./runs.db --seed 42
  mcsampling runs --db ./runs.db --run 01890a5d-ac96-774b-bcce-b302099a8057 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Label, "label", "", "only list runs with this label")
	cmd.Flags().StringVar(&opts.ConfigHash, "config-hash", "", "only list runs with this config hash")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "only list runs with this seed")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show a single run in detail")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	st, err := openExistingStore(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	if opts.RunID != "" {
		return showRun(ctx, st, opts.RunID, formatter)
	}

	filter := store.RunFilter{Label: opts.Label, ConfigHash: opts.ConfigHash}
	if cmd.Flags().Changed("seed") {
		filter.Seed = &opts.Seed
	}
	runs, err := st.ListRuns(ctx, filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if formatter.IsJSON() {
		return formatter.Success(RunsResult{Runs: runs, Total: len(runs)})
	}

	w := formatter.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found in database.")
		return nil
	}
	fmt.Fprintf(w, "%-5s %-10s %-20s %-8s %-8s %-10s %s\n",
		"SEQ", "RUN", "SEED", "N", "BINS", "ACCEPT", "LABEL")
	for _, r := range runs {
		fmt.Fprintf(w, "%-5d %-10s %-20d %-8d %-8d %-10.6f %s\n",
			r.Seq, truncateID(r.ID), r.Seed, r.Config.Iterations, r.Config.Bins, r.AcceptanceRatio, r.Label)
	}
	return nil
}

// showRun prints one run with its density.
func showRun(ctx context.Context, st *store.Store, runID string, f *OutputFormatter) error {
	rec, err := st.ReadRun(ctx, runID)
	if errors.Is(err, store.ErrRunNotFound) {
		_ = f.Error(ErrCodeStore, fmt.Sprintf("run not found: %s", runID), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", runID))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	d, err := st.ReadDensity(ctx, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read density", err)
	}

	if f.IsJSON() {
		return f.Success(RunDetail{Run: rec, Density: d})
	}

	w := f.Writer
	fmt.Fprintf(w, "Run: %s\n", rec.ID)
	fmt.Fprintf(w, "  Seq: %d\n", rec.Seq)
	if rec.Label != "" {
		fmt.Fprintf(w, "  Label: %s\n", rec.Label)
	}
	fmt.Fprintf(w, "  Seed: %d\n", rec.Seed)
	fmt.Fprintf(w, "  Config hash: %s\n", rec.ConfigHash)
	fmt.Fprintf(w, "  Engine: %s\n", rec.EngineVersion)
	fmt.Fprintf(w, "  Accepted: %d (%f)\n", rec.Accepted, rec.AcceptanceRatio)
	fmt.Fprintln(w)
	writeDensityTable(w, d)
	return nil
}

func writeDensityTable(w io.Writer, d *ir.Density) {
	fmt.Fprintln(w, "=== Density ===")
	for i := range d.Values {
		fmt.Fprintf(w, "  %10.6f  %8d  %f\n", d.Centers[i], d.Counts[i], d.Values[i])
	}
}

// truncateID shortens a run ID for table output.
func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "…"
}
