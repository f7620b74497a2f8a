// Command fmathinfo prints the accuracy of the fmath approximations against
// the standard library, and the harmonic distortion of the fast oscillators.
//
// Usage:
//
//	fmathinfo [flags] [function-name ...]
//
// Without arguments it prints info for all functions.
//
// Examples:
//
//	fmathinfo sin cos
//	fmathinfo -min -100 -max 100 sin
//	fmathinfo -samples 1000001 tan
//	fmathinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-fmath/fmath"
	"github.com/cwbudde/algo-fmath/measure/accuracy"
	"github.com/cwbudde/algo-fmath/measure/distortion"
)

type funcEntry struct {
	name string
	fn   accuracy.Func
	ref  accuracy.RefFunc

	// maxRef excludes samples near poles; zero keeps every sample.
	maxRef float64

	// oscillator marks periodic functions that get a distortion row.
	oscillator bool
}

var registry = []funcEntry{
	{name: "sin", fn: fmath.Sin, ref: math.Sin, oscillator: true},
	{name: "cos", fn: fmath.Cos, ref: math.Cos, oscillator: true},
	{name: "tan", fn: fmath.Tan, ref: math.Tan, maxRef: 4},
	{name: "floor", fn: fmath.Floor, ref: math.Trunc},
	{name: "rounddown", fn: fmath.RoundDown, ref: math.Floor},
	{name: "trunc", fn: fmath.Trunc, ref: math.Trunc},
	{name: "frac", fn: fmath.Frac, ref: func(x float64) float64 { a := math.Abs(x); return a - math.Trunc(a) }},
	{name: "abs", fn: fmath.Abs, ref: math.Abs},
}

func main() {
	lo := flag.Float64("min", -10, "lower bound of the sampled range")
	hi := flag.Float64("max", 10, "upper bound of the sampled range")
	samples := flag.Int("samples", 100001, "number of evenly spaced samples")
	cycles := flag.Int("cycles", 16, "oscillator periods in the distortion frame")
	size := flag.Int("size", 4096, "FFT size of the distortion frame (power of two)")
	list := flag.Bool("list", false, "list available function names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fmathinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy and distortion of the fmath approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fmathinfo sin cos\n")
		fmt.Fprintf(os.Stderr, "  fmathinfo -min -100 -max 100 sin\n")
		fmt.Fprintf(os.Stderr, "  fmathinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	printHeader(os.Stdout)

	opts := []accuracy.Option{
		accuracy.WithRange(*lo, *hi),
		accuracy.WithSamples(*samples),
	}
	if err := printAccuracy(os.Stdout, entries, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := distortion.Config{Cycles: *cycles, FFTSize: *size}
	if err := printDistortion(os.Stdout, entries, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string) []funcEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func buildMode() string {
	if fmath.Checked {
		return "checked"
	}
	return "fastmath"
}

func printHeader(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "build: %s  arch: %s  sse2: %t  avx2: %t  neon: %t\n\n",
		buildMode(), f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON)
}

func printAccuracy(w io.Writer, entries []funcEntry, baseOpts []accuracy.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tSamples\tSkipped\tMax Error\tWorst x\tMean Error\tP99 Error\tRMS Error\tBias\tBits\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-------\t-------\t---------\t-------\t----------\t---------\t---------\t----\t----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		opts := append([]accuracy.Option(nil), baseOpts...)
		if e.maxRef > 0 {
			opts = append(opts, accuracy.WithMaxReference(e.maxRef))
		}

		rep, err := accuracy.Measure(e.fn, e.ref, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.3e\t%.6g\t%.3e\t%.3e\t%.3e\t%+.3e\t%.1f\n",
			e.name,
			rep.Samples,
			rep.Skipped,
			rep.MaxAbsError,
			rep.MaxAbsErrorAt,
			rep.MeanAbsError,
			rep.P99AbsError,
			rep.RMSError,
			rep.Bias,
			rep.Bits,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printDistortion(w io.Writer, entries []funcEntry, cfg distortion.Config) error {
	var oscillators []funcEntry
	for _, e := range entries {
		if e.oscillator {
			oscillators = append(oscillators, e)
		}
	}
	if len(oscillators) == 0 {
		return nil
	}

	analyzer, err := distortion.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Oscillator\tFFT Size\tCycles\tLevel\tTHD [%%]\tTHD [dB]\tH2 [dB]\tH3 [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----------\t--------\t------\t-----\t-------\t--------\t-------\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	used := analyzer.Config()
	for _, e := range oscillators {
		res, err := analyzer.Analyze(distortion.Oscillator(e.fn))
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.4f\t%.1f\t%.1f\t%.1f\n",
			e.name,
			used.FFTSize,
			used.Cycles,
			res.FundamentalLevel,
			res.THD*100,
			res.THD_dB,
			harmonicDB(res.Harmonics, 0),
			harmonicDB(res.Harmonics, 1),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// harmonicDB returns harmonics[i] in dB relative to the fundamental, or -Inf
// when it is absent or zero.
func harmonicDB(harmonics []float64, i int) float64 {
	if i >= len(harmonics) || harmonics[i] <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(harmonics[i])
}
