package config

import "github.com/roach88/mcsampling/internal/ir"

// File is the on-disk layout shared by the YAML and CUE formats.
// Sections mirror the legacy parameter file.
type File struct {
	MonteCarlo MonteCarloSection `yaml:"monte_carlo" json:"monte_carlo"`
	Physics    PhysicsSection    `yaml:"physics" json:"physics"`
	Histogram  HistogramSection  `yaml:"histogram" json:"histogram"`
}

// MonteCarloSection holds the chain parameters.
type MonteCarloSection struct {
	Iterations      int     `yaml:"iterations" json:"iterations"`
	MaxDisplacement float64 `yaml:"max_displacement" json:"max_displacement"`
	InitialPosition float64 `yaml:"initial_position" json:"initial_position"`
}

// PhysicsSection holds the potential and temperature.
type PhysicsSection struct {
	Mass      float64 `yaml:"mass" json:"mass"`
	Frequency float64 `yaml:"frequency" json:"frequency"`
	Beta      float64 `yaml:"beta" json:"beta"`
}

// HistogramSection holds the density estimator parameters.
type HistogramSection struct {
	Domain float64 `yaml:"domain" json:"domain"`
	Bins   int     `yaml:"bins" json:"bins"`
}

// SimulationConfig flattens the file into the core configuration.
func (f File) SimulationConfig() ir.SimulationConfig {
	return ir.SimulationConfig{
		Iterations:      f.MonteCarlo.Iterations,
		MaxDisplacement: f.MonteCarlo.MaxDisplacement,
		InitialPosition: f.MonteCarlo.InitialPosition,
		Mass:            f.Physics.Mass,
		Frequency:       f.Physics.Frequency,
		Beta:            f.Physics.Beta,
		Domain:          f.Histogram.Domain,
		Bins:            f.Histogram.Bins,
	}
}

// FromSimulationConfig is the inverse of File.SimulationConfig.
func FromSimulationConfig(cfg ir.SimulationConfig) File {
	return File{
		MonteCarlo: MonteCarloSection{
			Iterations:      cfg.Iterations,
			MaxDisplacement: cfg.MaxDisplacement,
			InitialPosition: cfg.InitialPosition,
		},
		Physics: PhysicsSection{
			Mass:      cfg.Mass,
			Frequency: cfg.Frequency,
			Beta:      cfg.Beta,
		},
		Histogram: HistogramSection{
			Domain: cfg.Domain,
			Bins:   cfg.Bins,
		},
	}
}
