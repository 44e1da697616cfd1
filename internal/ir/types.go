package ir

// Upper bounds on buffer sizes. A configuration above either limit is
// rejected before any sampling begins.
const (
	// MaxIterations is the largest accepted Monte Carlo iteration count.
	MaxIterations = 10_000_000

	// MaxBins is the largest accepted histogram bin count.
	MaxBins = 1000

	// RelaxationWindow is the number of leading iterations written to the
	// configuration report to show relaxation from the initial position.
	RelaxationWindow = 100
)

// SimulationConfig holds the parameters of one sampling run.
// It is fixed before sampling begins and never modified afterwards.
type SimulationConfig struct {
	Iterations      int     `json:"iterations"`       // N, number of MC iterations
	MaxDisplacement float64 `json:"max_displacement"` // Δx, proposal half-width
	InitialPosition float64 `json:"initial_position"` // x0
	Mass            float64 `json:"mass"`             // m
	Frequency       float64 `json:"frequency"`        // ω
	Beta            float64 `json:"beta"`             // inverse temperature, kb units
	Domain          float64 `json:"domain"`           // L, total histogram width
	Bins            int     `json:"bins"`             // B
}

// BinWidth returns the histogram bin width L/B.
func (c SimulationConfig) BinWidth() float64 {
	return c.Domain / float64(c.Bins)
}

// HalfDomain returns L/2, the histogram domain half-width.
func (c SimulationConfig) HalfDomain() float64 {
	return .5 * c.Domain
}

// Trajectory is the Markov chain produced by the sampler.
//
// Positions[i] is the position after iteration i. Energies[i] is the energy
// of the move PROPOSED at iteration i, whether or not it was accepted, so for
// a rejected move Energies[i] != U(Positions[i]). Consumers that need the
// energy of the occupied state must recompute it from Positions.
type Trajectory struct {
	Positions []float64 `json:"positions"`
	Energies  []float64 `json:"energies"`

	// Moves[i] reports whether the proposal at iteration i was accepted.
	// Moves[0] is always false (initial configuration).
	Moves []bool `json:"moves"`

	// Accepted is the number of accepted proposals.
	Accepted int `json:"accepted"`
}

// Len returns the number of recorded iterations.
func (t *Trajectory) Len() int {
	return len(t.Positions)
}

// AcceptanceRatio returns accepted moves over the total iteration count,
// including the initial configuration in the denominator.
func (t *Trajectory) AcceptanceRatio() float64 {
	if len(t.Positions) == 0 {
		return 0
	}
	return float64(t.Accepted) / float64(len(t.Positions))
}

// Density is the normalized histogram built from a trajectory.
type Density struct {
	Centers []float64 `json:"centers"`
	Values  []float64 `json:"values"`
	Counts  []int     `json:"counts"`

	// Width is the bin width L/B.
	Width float64 `json:"width"`

	// Samples is the number of positions the histogram was built from.
	Samples int `json:"samples"`

	// Max is the largest value in Values. Used only for display scaling.
	Max float64 `json:"max"`
}

// Len returns the number of bins.
func (d *Density) Len() int {
	return len(d.Values)
}

// Binned returns the number of samples that fell inside some bin.
func (d *Density) Binned() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// Mass returns Σ value[i]·w, the fraction of samples captured by the bins.
func (d *Density) Mass() float64 {
	sum := 0.0
	for _, v := range d.Values {
		sum += v * d.Width
	}
	return sum
}

// RunRecord is the stored summary of one sampling run.
type RunRecord struct {
	ID              string           `json:"id"`
	Seq             int64            `json:"seq"`
	Label           string           `json:"label,omitempty"`
	ConfigHash      string           `json:"config_hash"`
	Config          SimulationConfig `json:"config"`
	Seed            int64            `json:"seed"`
	Accepted        int              `json:"accepted"`
	AcceptanceRatio float64          `json:"acceptance_ratio"`
	MaxDensity      float64          `json:"max_density"`
	EngineVersion   string           `json:"engine_version"`
}
