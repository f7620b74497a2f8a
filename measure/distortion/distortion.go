package distortion

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultCycles  = 16
	defaultFFTSize = 4096
	minFFTSize     = 8
)

var errNilOscillator = errors.New("distortion: oscillator must not be nil")

// Oscillator maps a phase in radians to a sample, e.g. fmath.Sin.
type Oscillator func(phase float32) float32

// Config holds distortion analysis parameters.
type Config struct {
	// Cycles is the number of fundamental periods in the analysis frame. It
	// is also the FFT bin of the fundamental.
	Cycles int

	// FFTSize is the frame length; it must be a power of two.
	FFTSize int

	// MaxHarmonics limits the harmonics taken into account (H2 counts as
	// the first). Zero means every harmonic below Nyquist.
	MaxHarmonics int
}

// Result holds distortion measurement results.
//
//nolint:revive
type Result struct {
	FundamentalBin   int
	FundamentalLevel float64 // amplitude of the fundamental
	DC               float64 // signed mean of the frame

	// Harmonics holds amplitude ratios to the fundamental, starting at H2.
	Harmonics []float64

	THD    float64 // sqrt(sum of squared harmonic ratios)
	THD_dB float64
	OddHD  float64
	EvenHD float64
}

// Analyzer evaluates oscillators with a reusable FFT plan and scratch buffers.
// It is not safe for concurrent use.
type Analyzer struct {
	cfg  Config
	plan *algofft.Plan[complex128]

	in    []complex128
	out   []complex128
	re    []float64
	im    []float64
	power []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}

	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.MaxHarmonics < 0 {
		cfg.MaxHarmonics = 0
	}

	return cfg
}

func validateConfig(cfg Config) error {
	n := cfg.FFTSize
	if n < minFFTSize || n&(n-1) != 0 {
		return fmt.Errorf("distortion: FFT size must be a power of two >= %d: %d", minFFTSize, n)
	}

	if cfg.Cycles < 1 || cfg.Cycles >= n/4 {
		return fmt.Errorf("distortion: cycles must be in [1, %d): %d", n/4, cfg.Cycles)
	}

	return nil
}

// NewAnalyzer creates an analyzer for cfg. Zero fields take defaults
// (16 cycles, 4096-point FFT).
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("distortion: failed to create FFT plan: %w", err)
	}

	bins := cfg.FFTSize/2 + 1

	return &Analyzer{
		cfg:   cfg,
		plan:  plan,
		in:    make([]complex128, cfg.FFTSize),
		out:   make([]complex128, cfg.FFTSize),
		re:    make([]float64, bins),
		im:    make([]float64, bins),
		power: make([]float64, bins),
	}, nil
}

// Analyze is a one-shot distortion analysis of osc.
func Analyze(osc Oscillator, cfg Config) (Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return Result{}, err
	}

	return a.Analyze(osc)
}

// Config returns the normalized configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze samples osc over the configured number of periods and returns its
// harmonic content.
func (a *Analyzer) Analyze(osc Oscillator) (Result, error) {
	if osc == nil {
		return Result{}, errNilOscillator
	}

	n := a.cfg.FFTSize
	step := 2 * math.Pi * float64(a.cfg.Cycles) / float64(n)
	for i := range a.in {
		a.in[i] = complex(float64(osc(float32(step*float64(i)))), 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Result{}, fmt.Errorf("distortion: forward FFT: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Power(a.power, a.re, a.im)

	return a.fromPower(), nil
}

// amplitude converts the power of bin k to the amplitude of a real sinusoid.
func (a *Analyzer) amplitude(k int) float64 {
	return 2 * math.Sqrt(a.power[k]) / float64(a.cfg.FFTSize)
}

func (a *Analyzer) fromPower() Result {
	n := a.cfg.FFTSize
	fundamentalBin := a.cfg.Cycles

	res := Result{
		FundamentalBin:   fundamentalBin,
		FundamentalLevel: a.amplitude(fundamentalBin),
		DC:               a.re[0] / float64(n),
		THD_dB:           math.Inf(-1),
	}

	if res.FundamentalLevel == 0 {
		return res
	}

	var sumSq, oddSq, evenSq float64

	harmonics := make([]float64, 0, 8)
	for h := 2; h*fundamentalBin < n/2; h++ {
		if a.cfg.MaxHarmonics > 0 && len(harmonics) >= a.cfg.MaxHarmonics {
			break
		}

		ratio := a.amplitude(h*fundamentalBin) / res.FundamentalLevel
		harmonics = append(harmonics, ratio)

		sq := ratio * ratio
		sumSq += sq
		if h%2 == 0 {
			evenSq += sq
		} else {
			oddSq += sq
		}
	}

	res.Harmonics = harmonics
	res.THD = math.Sqrt(sumSq)
	res.OddHD = math.Sqrt(oddSq)
	res.EvenHD = math.Sqrt(evenSq)
	if res.THD > 0 {
		res.THD_dB = 20 * math.Log10(res.THD)
	}

	return res
}
