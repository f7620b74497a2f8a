package testutil

import (
	"math/rand"
)

// Linspace returns n float32 values evenly spaced over [lo, hi], both ends
// included. The positions are computed in float64 and rounded once.
func Linspace(lo, hi float64, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = float32(lo + step*float64(i))
	}
	return out
}

// DeterministicUniform returns n float32 values drawn uniformly from
// [lo, hi) with a fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// PeriodBoundaries returns the multiples kπ/2 for k in [-n, n], computed in
// float64 and rounded to float32. These are the points where sine and
// cosine range reduction switches quadrant.
func PeriodBoundaries(n int) []float32 {
	out := make([]float32, 0, 2*n+1)
	for k := -n; k <= n; k++ {
		out = append(out, float32(float64(k)*halfPi))
	}
	return out
}

const halfPi = 1.57079632679489661923132169163975144
