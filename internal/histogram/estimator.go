package histogram

import (
	"math"

	"github.com/roach88/mcsampling/internal/ir"
)

// Estimate builds the density of positions over a domain of total width
// domain split into bins bins.
//
// Each sample's bin is located directly, then membership is confirmed with
// the same open-interval comparison a bin-by-bin scan would use, so results
// match that scan exactly. Callers validate bins > 0.
func Estimate(positions []float64, domain float64, bins int) *ir.Density {
	width := domain / float64(bins)
	lo := -.5 * domain

	d := &ir.Density{
		Centers: make([]float64, bins),
		Values:  make([]float64, bins),
		Counts:  make([]int, bins),
		Width:   width,
		Samples: len(positions),
	}

	for _, x := range positions {
		if i, ok := binOf(x, lo, width, bins); ok {
			d.Counts[i]++
		}
	}

	n := float64(len(positions))
	for i := 0; i < bins; i++ {
		d.Centers[i] = lo + .5*width + float64(i)*width

		if n > 0 {
			d.Values[i] = float64(d.Counts[i]) / width / n
		}
		if d.Max < d.Values[i] {
			d.Max = d.Values[i]
		}
	}

	return d
}

// binOf returns the bin whose open interval contains x.
func binOf(x, lo, width float64, bins int) (int, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}

	f := math.Floor((x - lo) / width)
	if f < -1 || f > float64(bins) {
		return 0, false
	}
	guess := int(f)

	// Rounding in the division can put the guess one bin off.
	for i := guess - 1; i <= guess+1; i++ {
		if i < 0 || i >= bins {
			continue
		}
		if inBin(x, lo, width, i) {
			return i, true
		}
	}
	return 0, false
}

// inBin is the exclusive membership test for bin i.
func inBin(x, lo, width float64, i int) bool {
	return x > lo+float64(i)*width && x < lo+float64(i+1)*width
}
