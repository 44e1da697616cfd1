package config

import (
	"fmt"

	"github.com/roach88/mcsampling/internal/ir"
)

// Validate checks the bounds that size the sampling buffers.
// It must pass before any sampling begins.
func Validate(cfg ir.SimulationConfig) error {
	if cfg.Iterations < 1 || cfg.Iterations > ir.MaxIterations {
		return &ValidationError{
			Code:    ErrCodeIterationsOutOfRange,
			Field:   "iterations",
			Message: fmt.Sprintf("%d outside allowed range [1, %d]", cfg.Iterations, ir.MaxIterations),
		}
	}
	if cfg.Bins < 1 || cfg.Bins > ir.MaxBins {
		return &ValidationError{
			Code:    ErrCodeBinsOutOfRange,
			Field:   "bins",
			Message: fmt.Sprintf("%d outside allowed range [1, %d]", cfg.Bins, ir.MaxBins),
		}
	}
	return nil
}
