package sampler

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Harmonic is the potential U(x) = ½·m·ω²·x².
type Harmonic struct {
	Mass      float64
	Frequency float64
}

// Energy returns the potential energy at x.
func (h Harmonic) Energy(x float64) float64 {
	return .5 * h.Mass * (h.Frequency * h.Frequency) * x * x
}

// Stiffness returns the spring constant k = m·ω².
func (h Harmonic) Stiffness() float64 {
	return h.Mass * h.Frequency * h.Frequency
}

// Sigma returns the standard deviation of the Boltzmann distribution at
// inverse temperature beta, sqrt(1 / (β·m·ω²)).
func (h Harmonic) Sigma(beta float64) float64 {
	return math.Sqrt(1. / (beta * h.Mass * h.Frequency * h.Frequency))
}

// BoltzmannDensity returns the normalized equilibrium density at x,
// a Gaussian of width Sigma(beta) centred on the potential minimum.
func (h Harmonic) BoltzmannDensity(beta, x float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: h.Sigma(beta)}.Prob(x)
}
