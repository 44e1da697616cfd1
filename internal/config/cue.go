package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/mcsampling/internal/ir"
)

// Schema returns the CUE schema for configuration files. The count bounds
// come from ir.MaxIterations and ir.MaxBins.
func Schema() string {
	return fmt.Sprintf(`#Config: {
	monte_carlo: {
		iterations:       int & >=1 & <=%d
		max_displacement: number
		initial_position: number | *0.0
	}
	physics: {
		mass:      number
		frequency: number
		beta:      number
	}
	histogram: {
		domain: number
		bins:   int & >=1 & <=%d
	}
}
`, ir.MaxIterations, ir.MaxBins)
}

// ParseCUE compiles a CUE configuration, unifies it with Schema and
// decodes the concrete result. filename is used in error positions.
func ParseCUE(data []byte, filename string) (ir.SimulationConfig, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema(), cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return ir.SimulationConfig{}, fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return ir.SimulationConfig{}, &ValidationError{
			Code:    ErrCodeParseFailed,
			Message: "failed to compile CUE",
			Err:     err,
		}
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return ir.SimulationConfig{}, &ValidationError{
			Code:    ErrCodeSchemaViolation,
			Message: "config does not satisfy schema",
			Err:     err,
		}
	}

	var f File
	if err := unified.Decode(&f); err != nil {
		return ir.SimulationConfig{}, &ValidationError{
			Code:    ErrCodeParseFailed,
			Message: "failed to decode CUE",
			Err:     err,
		}
	}
	return f.SimulationConfig(), nil
}
