package accuracy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// minRelReference is the smallest reference magnitude that takes part in the
// relative error; closer to zero the ratio only measures absolute error.
const minRelReference = 1e-3

// smallestNormal32 is the smallest positive normalized float32.
const smallestNormal32 = 0x1p-126

var (
	errNilFunc       = errors.New("accuracy: function and reference must not be nil")
	errTooFewSamples = errors.New("accuracy: at least two samples are required")
	errAllSkipped    = errors.New("accuracy: every sample exceeded the reference limit")
)

// Func is the float32 approximation under test.
type Func func(x float32) float32

// RefFunc is the float64 reference the approximation is compared against.
type RefFunc func(x float64) float64

// Report holds error statistics of one measurement.
type Report struct {
	Samples int // samples that contributed
	Skipped int // samples dropped by MaxReference

	MaxAbsError   float64
	MaxAbsErrorAt float32
	MeanAbsError  float64
	RMSError      float64
	Bias          float64 // mean signed error, approximation minus reference
	MaxRelError   float64 // over samples with |ref| >= 1e-3

	// MedianAbsError and P99AbsError are empirical quantiles of the
	// absolute error.
	MedianAbsError float64
	P99AbsError    float64

	// Bits is -log2(MaxAbsError), the number of correct fractional bits in
	// the worst case. It is +Inf for an exact match.
	Bits float64
}

func validate(cfg Config) error {
	if math.IsNaN(cfg.Min) || math.IsInf(cfg.Min, 0) || math.IsNaN(cfg.Max) || math.IsInf(cfg.Max, 0) {
		return fmt.Errorf("accuracy: range bounds must be finite: [%v, %v]", cfg.Min, cfg.Max)
	}
	if cfg.Max <= cfg.Min {
		return fmt.Errorf("accuracy: range is empty: [%v, %v]", cfg.Min, cfg.Max)
	}
	if cfg.Samples < 2 {
		return errTooFewSamples
	}
	return nil
}

// flushDenormal maps values below the normalized float32 range to zero, so
// grid points never hand a subnormal to the function under test.
func flushDenormal(x float32) float32 {
	if x > -smallestNormal32 && x < smallestNormal32 {
		return 0
	}
	return x
}

// kahan is a compensated running sum.
type kahan struct {
	sum, c float64
}

func (k *kahan) add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Measure samples f and ref on the configured grid and returns the error
// statistics of f.
func Measure(f Func, ref RefFunc, opts ...Option) (Report, error) {
	if f == nil || ref == nil {
		return Report{}, errNilFunc
	}

	cfg := ApplyOptions(opts...)
	if err := validate(cfg); err != nil {
		return Report{}, err
	}

	var (
		rep     Report
		absSum  kahan
		diffSum kahan
		sumSq   float64
	)

	errs := make([]float64, 0, cfg.Samples)

	step := (cfg.Max - cfg.Min) / float64(cfg.Samples-1)
	for i := range cfg.Samples {
		x := flushDenormal(float32(cfg.Min + step*float64(i)))
		want := ref(float64(x))
		if cfg.MaxReference > 0 && math.Abs(want) > cfg.MaxReference {
			rep.Skipped++
			continue
		}

		diff := float64(f(x)) - want
		abs := math.Abs(diff)

		rep.Samples++
		errs = append(errs, abs)
		absSum.add(abs)
		diffSum.add(diff)
		sumSq += diff * diff

		if abs > rep.MaxAbsError || rep.Samples == 1 {
			rep.MaxAbsError = abs
			rep.MaxAbsErrorAt = x
		}

		if a := math.Abs(want); a >= minRelReference {
			if rel := abs / a; rel > rep.MaxRelError {
				rep.MaxRelError = rel
			}
		}
	}

	if rep.Samples == 0 {
		return rep, errAllSkipped
	}

	n := float64(rep.Samples)
	rep.MeanAbsError = absSum.sum / n
	rep.Bias = diffSum.sum / n
	rep.RMSError = math.Sqrt(sumSq / n)
	rep.Bits = bits(rep.MaxAbsError)

	sort.Float64s(errs)
	rep.MedianAbsError = stat.Quantile(0.5, stat.Empirical, errs, nil)
	rep.P99AbsError = stat.Quantile(0.99, stat.Empirical, errs, nil)

	return rep, nil
}

func bits(maxAbs float64) float64 {
	if maxAbs == 0 {
		return math.Inf(1)
	}
	return -mathLog2(maxAbs)
}
