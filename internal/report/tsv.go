package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/roach88/mcsampling/internal/ir"
)

// WriteConfiguration writes the first ir.RelaxationWindow iterations of tr as
// "iter\tposition\tenergy" rows. Shorter trajectories are written in full.
func WriteConfiguration(w io.Writer, tr *ir.Trajectory) error {
	n := min(tr.Len(), ir.RelaxationWindow)

	cw := newTSVWriter(w)
	for i := 0; i < n; i++ {
		row := []string{
			strconv.Itoa(i),
			formatFloat(tr.Positions[i]),
			formatFloat(tr.Energies[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistogram writes one "center\tdensity" row per bin.
func WriteHistogram(w io.Writer, d *ir.Density) error {
	cw := newTSVWriter(w)
	for i := range d.Values {
		if err := cw.Write([]string{formatFloat(d.Centers[i]), formatFloat(d.Values[i])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newTSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

// formatFloat renders x with six decimals, the precision gnuplot reads back.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
