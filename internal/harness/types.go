package harness

import (
	"github.com/roach88/mcsampling/internal/ir"
)

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if the run behaved as expected and all assertions held.
	Pass bool `json:"pass"`

	// Record summarizes the run. Zero when the run was rejected.
	Record ir.RunRecord `json:"record"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Trajectory and Density are the run output, nil when the run was
	// rejected. Used by assertions and golden snapshots.
	Trajectory *ir.Trajectory `json:"-"`
	Density    *ir.Density    `json:"-"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
