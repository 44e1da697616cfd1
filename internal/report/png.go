package report

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/sampler"
)

// PNG image size.
const (
	pngWidth  = 16 * vg.Centimeter
	pngHeight = 10 * vg.Centimeter
)

// DensityHistogram rebuilds d as an hbook histogram over [-L/2, L/2].
// Each bin's height is its sampled density.
func DensityHistogram(cfg ir.SimulationConfig, d *ir.Density) *hbook.H1D {
	h := hbook.NewH1D(d.Len(), -cfg.HalfDomain(), cfg.HalfDomain())
	for i, c := range d.Centers {
		h.Fill(c, d.Values[i])
	}
	return h
}

// WritePNG renders the sampled density together with the analytic Boltzmann
// density and saves it to path. The image format follows the extension.
func WritePNG(path string, cfg ir.SimulationConfig, d *ir.Density) error {
	p := hplot.New()
	p.Title.Text = "Harmonic oscillator"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Probability Density"

	hh := hplot.NewH1D(DensityHistogram(cfg, d))
	hh.LineStyle.Color = color.NRGBA{B: 255, A: 255}

	h := sampler.Harmonic{Mass: cfg.Mass, Frequency: cfg.Frequency}
	fn := plotter.NewFunction(func(x float64) float64 {
		return h.BoltzmannDensity(cfg.Beta, x)
	})
	fn.XMin = -cfg.HalfDomain()
	fn.XMax = cfg.HalfDomain()
	fn.Color = color.NRGBA{R: 255, A: 255}
	fn.Width = vg.Points(1.5)

	p.Add(hh, fn, hplot.NewGrid())
	p.Legend.Add("Monte Carlo", hh)
	p.Legend.Add("Analytic", fn)

	if err := p.Save(pngWidth, pngHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
