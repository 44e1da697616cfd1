package report

import (
	"fmt"
	"io"

	"github.com/roach88/mcsampling/internal/ir"
)

// EchoParameters writes the parameter banner for cfg.
func EchoParameters(w io.Writer, cfg ir.SimulationConfig) error {
	half := cfg.HalfDomain()
	_, err := fmt.Fprintf(w, `
** Single-particle harmonic oscillator Monte Carlo sampling **

 MC parameters:
  Number of MC iterations: %d
  MC displacement interval: [-%.3f, +%.3f]
  Initial configuration: X = %.2f

 Physical parameters:
  Mass: %.3f
  Characteristic frequency: %.3f
  Inverse of temperature (kb units): %.3f

 Histogram parameters:
  Histogram domain: [-%.2f, +%.2f]
  Number of histogram bins: %d
`,
		cfg.Iterations,
		cfg.MaxDisplacement, cfg.MaxDisplacement,
		cfg.InitialPosition,
		cfg.Mass,
		cfg.Frequency,
		cfg.Beta,
		half, half,
		cfg.Bins,
	)
	return err
}

// EchoAcceptance writes the acceptance ratio line printed after sampling.
func EchoAcceptance(w io.Writer, ratio float64) error {
	_, err := fmt.Fprintf(w, "\nAcceptance Ratio: %f\n\n", ratio)
	return err
}
