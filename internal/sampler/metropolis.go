package sampler

import (
	"math"

	"github.com/roach88/mcsampling/internal/ir"
)

// Sample runs the Metropolis chain described by cfg and returns a trajectory
// of exactly cfg.Iterations entries.
//
// Two draws are consumed per iteration: the first for the proposal, the
// second for the acceptance test. The first entry is (x0, U(x0)).
func Sample(cfg ir.SimulationConfig, src Source) *ir.Trajectory {
	n := cfg.Iterations
	pot := Harmonic{Mass: cfg.Mass, Frequency: cfg.Frequency}

	tr := &ir.Trajectory{
		Positions: make([]float64, n),
		Energies:  make([]float64, n),
		Moves:     make([]bool, n),
	}
	if n == 0 {
		return tr
	}

	xold := cfg.InitialPosition
	tr.Positions[0] = xold
	tr.Energies[0] = pot.Energy(xold)

	for iter := 1; iter < n; iter++ {
		eold := pot.Energy(xold)

		xnew := xold + 2.*cfg.MaxDisplacement*(src.Float64()-.5)
		enew := pot.Energy(xnew)

		// exp may exceed 1 for downhill moves, which are then always accepted
		if src.Float64() < math.Exp(-cfg.Beta*(enew-eold)) {
			xold = xnew
			tr.Accepted++
			tr.Moves[iter] = true
		}

		tr.Positions[iter] = xold
		tr.Energies[iter] = enew
	}

	return tr
}
