package core

import (
	"math"
	"slices"

	"github.com/huangsam/workpulse/schema"
)

// percentile returns the p-th percentile (p in [0, 1]) of the values via
// linear interpolation between order statistics. The input is not mutated.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// mean returns the arithmetic mean of the values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleConfidence computes the asymptotic confidence 90*n/(n+50),
// rounded to the nearest integer.
func sampleConfidence(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(schema.ConfidenceScale * float64(n) / (float64(n) + schema.ConfidenceHalfSample)))
}

// clampFloat bounds v to the [lo, hi] interval.
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
