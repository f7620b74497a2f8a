package fmath

import (
	"math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-fmath/internal/testutil"
)

func TestRoundingScenarios(t *testing.T) {
	if got := Floor(3.7); got != 3 {
		t.Fatalf("Floor(3.7) = %v, want 3", got)
	}
	testutil.RequireNear(t, "Frac(3.7)", Frac(3.7), 0.7, 1e-6)
	if got := Round(3.7); got != 4 {
		t.Fatalf("Round(3.7) = %v, want 4", got)
	}
	if got := Round(3.2); got != 3 {
		t.Fatalf("Round(3.2) = %v, want 3", got)
	}
}

func TestTrunc(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{0, 0}, {0.5, 0}, {-0.5, 0}, {1, 1}, {-1, -1}, {3.7, 3}, {-3.7, -3},
		{999.999, 999}, {-999.999, -999},
		{1 << 23, 1 << 23}, {-3e9, -3e9}, {1.5e20, 1.5e20}, {-math.MaxFloat32, -math.MaxFloat32},
	}
	for _, tt := range tests {
		if got := Trunc(tt.x); got != tt.want {
			t.Fatalf("Trunc(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestTruncMatchesReference(t *testing.T) {
	for _, x := range testutil.DeterministicUniform(1, -1000, 1000, 20000) {
		if got, want := Trunc(x), math32.Trunc(x); got != want {
			t.Fatalf("Trunc(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestFloorProperties(t *testing.T) {
	for _, x := range testutil.DeterministicUniform(2, -1000, 1000, 20000) {
		fl := Floor(x)
		if x >= 0 && fl > x {
			t.Fatalf("Floor(%v) = %v > x", x, fl)
		}
		tr := Trunc(x)
		if tr != 0 && signBit(tr) != signBit(x) {
			t.Fatalf("Trunc(%v) = %v has the wrong sign", x, tr)
		}
		if fl != tr {
			t.Fatalf("Floor(%v) = %v, Trunc = %v; want identical", x, fl, tr)
		}
	}
}

// Floor truncates toward zero, so it is above the mathematical floor for
// negative non-integers. RoundDown is the mathematical floor.
func TestFloorTruncatesNegativeNonIntegers(t *testing.T) {
	tests := []struct {
		x         float32
		floor     float32
		roundDown float32
	}{
		{-2.5, -2, -3},
		{-0.5, 0, -1},
		{-3.7, -3, -4},
		{-3, -3, -3},
		{2.5, 2, 2},
	}
	for _, tt := range tests {
		if got := Floor(tt.x); got != tt.floor {
			t.Fatalf("Floor(%v) = %v, want %v", tt.x, got, tt.floor)
		}
		if got := RoundDown(tt.x); got != tt.roundDown {
			t.Fatalf("RoundDown(%v) = %v, want %v", tt.x, got, tt.roundDown)
		}
	}
}

func TestRoundDownMatchesReference(t *testing.T) {
	samples := testutil.DeterministicUniform(3, -1000, 1000, 20000)
	samples = append(samples, -1, -2, -1000, 0, 1, 1e9, -1e9)
	for _, x := range samples {
		got := RoundDown(x)
		if got > x {
			t.Fatalf("RoundDown(%v) = %v > x", x, got)
		}
		if want := math32.Floor(x); got != want {
			t.Fatalf("RoundDown(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCeilIsFloorPlusOne(t *testing.T) {
	for _, x := range testutil.DeterministicUniform(4, -1000, 1000, 20000) {
		if got, want := Ceil(x), Floor(x)+1; got != want {
			t.Fatalf("Ceil(%v) = %v, want %v", x, got, want)
		}
	}
}

// Ceil is Floor + 1 by definition, which differs from a ceiling for integral
// and for negative fractional inputs.
func TestCeilDiffersFromCeiling(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{3, 4},
		{-2.5, -1},
		{2.5, 3},
		{0, 1},
	}
	for _, tt := range tests {
		if got := Ceil(tt.x); got != tt.want {
			t.Fatalf("Ceil(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestFracRange(t *testing.T) {
	samples := testutil.DeterministicUniform(5, -1000, 1000, 20000)
	samples = append(samples, 0, 1, -1, 999, -999)
	for _, x := range samples {
		f := Frac(x)
		if f < 0 || f >= 1 {
			t.Fatalf("Frac(%v) = %v, want [0, 1)", x, f)
		}
	}
	testutil.RequireNear(t, "Frac(-3.25)", Frac(-3.25), 0.25, 0)
}

func TestRound(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{3.7, 4},
		{3.2, 3},
		{2.5, 2}, // ties go toward zero
		{0.49, 0},
		{0.51, 1},
		{7, 7},
		{-3.2, -3},
		{-3.7, -2}, // inherits Ceil = Trunc + 1
	}
	for _, tt := range tests {
		if got := Round(tt.x); got != tt.want {
			t.Fatalf("Round(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, y float32
		want float32
	}{
		{7.5, 2, 1.5},
		{-7.5, 2, -1.5},
		{7.5, -2, 1.5},
		{-7.5, -2, -1.5},
		{6, 3, 0},
		{1, 4, 1},
	}
	for _, tt := range tests {
		if got := Mod(tt.x, tt.y); got != tt.want {
			t.Fatalf("Mod(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestModReconstructsDividend(t *testing.T) {
	xs := testutil.DeterministicUniform(6, -1000, 1000, 5000)
	ys := testutil.DeterministicUniform(7, 0.5, 50, 5000)
	for i, x := range xs {
		y := ys[i]
		if i%2 == 1 {
			y = -y
		}
		r := Mod(x, y)
		q := Trunc(x / y)
		rebuilt := float64(y)*float64(q) + float64(r)
		if math.Abs(rebuilt-float64(x)) > 1e-3 {
			t.Fatalf("y*Trunc(x/y) + Mod(x, y) = %v, want %v (x=%v y=%v)", rebuilt, x, x, y)
		}
		// x/y may round up onto an integer, leaving a tiny remainder of the
		// opposite sign.
		if math32.Abs(r) > 1e-3 && signBit(r) != signBit(x) {
			t.Fatalf("Mod(%v, %v) = %v, want the sign of x", x, y, r)
		}
		if math32.Abs(r) > math32.Abs(y)+1e-3 {
			t.Fatalf("|Mod(%v, %v)| = %v exceeds |y|", x, y, r)
		}
	}
}

func TestAbs(t *testing.T) {
	for _, x := range []float32{0, 1.5, -1.5, 1e30, -1e-30} {
		if got, want := Abs(x), math32.Abs(x); got != want {
			t.Fatalf("Abs(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		x, y     float32
		min, max float32
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{-1, 1, -1, 1},
		{3, 3, 3, 3},
		{-5, -7, -7, -5},
	}
	for _, tt := range tests {
		if got := Min(tt.x, tt.y); got != tt.min {
			t.Fatalf("Min(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.min)
		}
		if got := Max(tt.x, tt.y); got != tt.max {
			t.Fatalf("Max(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.max)
		}
	}
}

func TestClose(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float32
		relTol, absTol float32
		want           bool
	}{
		{name: "identical zero tol", x: 1.25, y: 1.25, want: true},
		{name: "different zero tol", x: 1.25, y: 1.2500001, want: false},
		{name: "within abs", x: 1, y: 1.05, absTol: 0.1, want: true},
		{name: "outside abs", x: 1, y: 1.2, absTol: 0.1, want: false},
		{name: "within rel", x: 1000, y: 1001, relTol: 0.01, want: true},
		{name: "outside rel", x: 1000, y: 1020, relTol: 0.01, want: false},
		{name: "rel near zero falls back to abs", x: 0, y: 1e-6, relTol: 0.5, absTol: 1e-5, want: true},
		{name: "negative", x: -10, y: -10.5, relTol: 0.1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Close(tt.x, tt.y, tt.relTol, tt.absTol); got != tt.want {
				t.Fatalf("Close(%v, %v, %v, %v) = %v, want %v", tt.x, tt.y, tt.relTol, tt.absTol, got, tt.want)
			}
		})
	}
}

func TestCloseReflexive(t *testing.T) {
	samples := testutil.DeterministicUniform(8, -1000, 1000, 2000)
	for i, x := range samples {
		if !Close(x, x, 0, 0) {
			t.Fatalf("Close(%v, %v, 0, 0) = false", x, x)
		}
		y := samples[(i+1)%len(samples)]
		if x != y && Close(x, y, 0, 0) {
			t.Fatalf("Close(%v, %v, 0, 0) = true", x, y)
		}
	}
}
