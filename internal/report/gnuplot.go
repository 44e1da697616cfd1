package report

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/sampler"
)

// Data and script file names. The scripts reference the data files by these
// names, so all four must live in the same directory.
const (
	ConfigurationFile   = "configuration.out"
	HistogramFile       = "histogram.out"
	HistogramScriptFile = "histogram.gp"
	ConfigScriptFile    = "configuration.gp"
)

// HistogramScript returns a gnuplot script plotting histogram.out against the
// analytic Boltzmann density and the potential. The y range is scaled to d.Max.
func HistogramScript(cfg ir.SimulationConfig, d *ir.Density) string {
	h := sampler.Harmonic{Mass: cfg.Mass, Frequency: cfg.Frequency}
	half := cfg.HalfDomain()

	var b strings.Builder
	b.WriteString("reset\n")
	b.WriteString("set samples 10000\n")
	b.WriteString("set grid\n")
	fmt.Fprintf(&b, "set xrange[-%f:%f]\n", half, half)
	fmt.Fprintf(&b, "set yrange[0:%f]\n", d.Max)
	fmt.Fprintf(&b, "set title 'Monte Carlo simulation with %d samples'\n", cfg.Iterations)
	fmt.Fprintf(&b, "sigma = %f\n", h.Sigma(cfg.Beta))
	fmt.Fprintf(&b, "k = %f\n", h.Stiffness())
	b.WriteString("f(x) = 1./(sqrt(2.*pi*sigma**2))*exp(-.5*x**2/sigma**2)\n")
	b.WriteString("V(x) = .5*k*x**2\n")
	fmt.Fprintf(&b, "plot '%s' u 1:2 w p lc 7 pt 4 t 'Distribution of sampled configurations', "+
		"f(x) w l lc 8 t 'Analytic result', V(x) w l lc 6 t 'Potential Energy'\n", HistogramFile)
	b.WriteString("pause -1\n")
	return b.String()
}

// ConfigurationScript returns a gnuplot script showing position and energy
// over the relaxation window stored in configuration.out.
func ConfigurationScript() string {
	var b strings.Builder
	b.WriteString("reset\n")
	b.WriteString("set multiplot title 'Monte Carlo configurations and energy space'\n")
	b.WriteString("set xlabel 'MC iteration'\n")
	b.WriteString("set ylabel 'position'\n")
	b.WriteString("set origin 0.,0.\n")
	b.WriteString("set size 1.,.5\n")
	fmt.Fprintf(&b, "plot '%s' u 1:2 w l lc 7 t 'Sampled configurations'\n", ConfigurationFile)
	b.WriteString("set origin 0.,.45\n")
	b.WriteString("set size 1.,.5\n")
	b.WriteString("unset xlabel\n")
	b.WriteString("set ylabel 'energy'\n")
	fmt.Fprintf(&b, "plot '%s' u 1:3 w l lc 7 t 'Sampled configuration energies'\n", ConfigurationFile)
	b.WriteString("unset multiplot\n")
	b.WriteString("pause -1\n")
	return b.String()
}

// GnuplotBinary is the executable Plot runs.
var GnuplotBinary = "gnuplot"

// Plot runs gnuplot on script inside dir and waits for it to exit.
// The scripts end in "pause -1", so Plot blocks until the plot window is
// dismissed or ctx is cancelled.
func Plot(ctx context.Context, dir, script string) error {
	path, err := exec.LookPath(GnuplotBinary)
	if err != nil {
		return fmt.Errorf("plot %s: %w", script, err)
	}

	cmd := exec.CommandContext(ctx, path, script)
	cmd.Dir = dir
	slog.Debug("running gnuplot", "dir", dir, "script", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("plot %s: %w: %s", script, err, strings.TrimSpace(string(out)))
	}
	return nil
}
