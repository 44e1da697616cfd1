package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/roach88/mcsampling/internal/ir"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

func tolerance(a Assertion) float64 {
	if a.Tolerance == 0 {
		return DefaultTolerance
	}
	return a.Tolerance
}

func assertTrajectoryLength(tr *ir.Trajectory, a Assertion) error {
	if tr.Len() != *a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d samples", *a.Count),
			Actual:   fmt.Sprintf("%d samples", tr.Len()),
		}
	}
	return nil
}

func assertDensityLength(d *ir.Density, a Assertion) error {
	if d.Len() != *a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d bins", *a.Count),
			Actual:   fmt.Sprintf("%d bins", d.Len()),
		}
	}
	return nil
}

// assertBinWidth checks the width and that centers are evenly spaced by it.
func assertBinWidth(d *ir.Density, a Assertion) error {
	tol := tolerance(a)
	if math.Abs(d.Width-*a.Value) > tol {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("width %g ± %g", *a.Value, tol),
			Actual:   fmt.Sprintf("width %g", d.Width),
		}
	}
	for i := 1; i < d.Len(); i++ {
		step := d.Centers[i] - d.Centers[i-1]
		if math.Abs(step-d.Width) > tol {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("centers spaced by %g", d.Width),
				Actual:   fmt.Sprintf("step %g between bins %d and %d", step, i-1, i),
			}
		}
	}
	return nil
}

func assertAcceptanceBetween(tr *ir.Trajectory, a Assertion) error {
	ratio := tr.AcceptanceRatio()
	if ratio < *a.Min || ratio > *a.Max {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("acceptance ratio in [%g, %g]", *a.Min, *a.Max),
			Actual:   fmt.Sprintf("%g", ratio),
		}
	}
	return nil
}

// assertDensityPeakNear checks the center of the most populated bin.
// Ties go to the lowest bin.
func assertDensityPeakNear(d *ir.Density, a Assertion) error {
	if d.Len() == 0 {
		return &AssertionError{Type: a.Type, Expected: "a non-empty histogram", Actual: "no bins"}
	}
	peak := 0
	for i, v := range d.Values {
		if v > d.Values[peak] {
			peak = i
		}
	}
	tol := tolerance(a)
	if math.Abs(d.Centers[peak]-*a.Value) > tol {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("peak at %g ± %g", *a.Value, tol),
			Actual:   fmt.Sprintf("peak at %g (bin %d)", d.Centers[peak], peak),
		}
	}
	return nil
}

func assertNormalizationAtMost(d *ir.Density, a Assertion) error {
	mass := d.Mass()
	if mass > *a.Value+DefaultTolerance {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("Σ value·w ≤ %g", *a.Value),
			Actual:   fmt.Sprintf("%g", mass),
		}
	}
	return nil
}

func assertFirstSample(tr *ir.Trajectory, a Assertion) error {
	if tr.Len() == 0 {
		return &AssertionError{Type: a.Type, Expected: "a non-empty trajectory", Actual: "no samples"}
	}
	if a.Position != nil && tr.Positions[0] != *a.Position {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("position %g", *a.Position),
			Actual:   fmt.Sprintf("position %g", tr.Positions[0]),
		}
	}
	if a.Energy != nil && tr.Energies[0] != *a.Energy {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("energy %g", *a.Energy),
			Actual:   fmt.Sprintf("energy %g", tr.Energies[0]),
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	if result.Trajectory == nil || result.Density == nil {
		if len(assertions) > 0 {
			errors = append(errors, "assertions require a completed run")
		}
		return errors
	}

	for i, a := range assertions {
		var err error

		switch a.Type {
		case AssertTrajectoryLength:
			err = assertTrajectoryLength(result.Trajectory, a)
		case AssertDensityLength:
			err = assertDensityLength(result.Density, a)
		case AssertBinWidth:
			err = assertBinWidth(result.Density, a)
		case AssertAcceptanceBetween:
			err = assertAcceptanceBetween(result.Trajectory, a)
		case AssertDensityPeakNear:
			err = assertDensityPeakNear(result.Density, a)
		case AssertNormalizationAtMost:
			err = assertNormalizationAtMost(result.Density, a)
		case AssertFirstSample:
			err = assertFirstSample(result.Trajectory, a)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
