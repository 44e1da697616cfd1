package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/sampler"
)

// Workbook sheet names.
const (
	SummarySheet    = "Summary"
	HistogramSheet  = "Histogram"
	TrajectorySheet = "Trajectory"
)

// MaxTrajectoryRows is the number of trajectory rows that fit on one sheet
// below the header. Longer trajectories are truncated in the workbook.
const MaxTrajectoryRows = excelize.TotalRows - 1

// WriteWorkbook saves an XLSX workbook for one run to path.
//
// The Summary sheet lists the run record and configuration. The Histogram
// sheet holds center, count, sampled density and analytic density per bin.
// The Trajectory sheet holds iteration, position, proposal energy and
// whether the move was accepted.
func WriteWorkbook(path string, rec ir.RunRecord, tr *ir.Trajectory, d *ir.Density) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}
	if err := writeSummary(f, rec, tr, d); err != nil {
		return fmt.Errorf("workbook: summary: %w", err)
	}
	if err := writeHistogramSheet(f, rec.Config, d); err != nil {
		return fmt.Errorf("workbook: histogram: %w", err)
	}
	if err := writeTrajectorySheet(f, tr); err != nil {
		return fmt.Errorf("workbook: trajectory: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, rec ir.RunRecord, tr *ir.Trajectory, d *ir.Density) error {
	cfg := rec.Config
	rows := [][]any{
		{"Field", "Value"},
		{"Run ID", rec.ID},
		{"Label", rec.Label},
		{"Seed", rec.Seed},
		{"Config hash", rec.ConfigHash},
		{"Engine version", rec.EngineVersion},
		{"Iterations", cfg.Iterations},
		{"Max displacement", cfg.MaxDisplacement},
		{"Initial position", cfg.InitialPosition},
		{"Mass", cfg.Mass},
		{"Frequency", cfg.Frequency},
		{"Beta", cfg.Beta},
		{"Domain", cfg.Domain},
		{"Bins", cfg.Bins},
		{"Bin width", d.Width},
		{"Accepted", tr.Accepted},
		{"Acceptance ratio", tr.AcceptanceRatio()},
		{"Binned samples", d.Binned()},
		{"Captured mass", d.Mass()},
		{"Max density", d.Max},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeHistogramSheet(f *excelize.File, cfg ir.SimulationConfig, d *ir.Density) error {
	if _, err := f.NewSheet(HistogramSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(HistogramSheet)
	if err != nil {
		return err
	}

	h := sampler.Harmonic{Mass: cfg.Mass, Frequency: cfg.Frequency}
	if err := sw.SetRow("A1", []any{"Bin", "Center", "Count", "Density", "Analytic"}); err != nil {
		return err
	}
	for i := range d.Values {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i, d.Centers[i], d.Counts[i], d.Values[i], h.BoltzmannDensity(cfg.Beta, d.Centers[i])}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func writeTrajectorySheet(f *excelize.File, tr *ir.Trajectory) error {
	if _, err := f.NewSheet(TrajectorySheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(TrajectorySheet)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", []any{"Iteration", "Position", "Energy", "Accepted"}); err != nil {
		return err
	}
	n := min(tr.Len(), MaxTrajectoryRows)
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{i, tr.Positions[i], tr.Energies[i], tr.Moves[i]}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
