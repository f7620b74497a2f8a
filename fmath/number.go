package fmath

// integralThreshold is 2^23. Every float32 with a magnitude at or above it is
// an integer, which keeps the uint64 cast in trunc inside its range.
const integralThreshold = 1 << 23

// trunc rounds toward zero by pushing |x| through a uint64 conversion and
// restoring the sign from bit 31.
func trunc(x float32) float32 {
	a := clearSign(x)
	if a >= integralThreshold {
		return x
	}
	return signOf(x) * float32(uint64(a))
}

// roundDown rounds toward negative infinity. The sign bit of the discarded
// fraction is 1 exactly when x is a negative non-integer.
func roundDown(x float32) float32 {
	t := trunc(x)
	return t - float32(signBit(x-t))
}

func frac(x float32) float32 {
	return clearSign(x) - clearSign(trunc(x))
}

func mod(x, y float32) float32 {
	return x - y*trunc(x/y)
}

// wrap is the floored modulo: the result has the sign of y.
func wrap(x, y float32) float32 {
	return x - y*roundDown(x/y)
}

func minf(x, y float32) float32 {
	if x > y {
		return y
	}
	return x
}

func maxf(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

// Trunc returns x rounded toward zero.
func Trunc(x float32) float32 {
	require("Trunc", "x", x)
	return trunc(x)
}

// Floor returns the integral part of x using the truncation primitive.
//
// For x >= 0 and for negative integers this is the mathematical floor. For
// negative non-integers it returns Trunc(x), which is one above the floor:
// Floor(-2.5) == -2. Use [RoundDown] for rounding toward negative infinity.
func Floor(x float32) float32 {
	require("Floor", "x", x)
	return trunc(x)
}

// RoundDown returns the largest integral value less than or equal to x.
func RoundDown(x float32) float32 {
	require("RoundDown", "x", x)
	return roundDown(x)
}

// Ceil returns Floor(x) + 1.
//
// This is not a ceiling for integral inputs (Ceil(3) == 4) and, because Floor
// truncates, Ceil(-2.5) == -1.
func Ceil(x float32) float32 {
	require("Ceil", "x", x)
	return trunc(x) + 1
}

// Frac returns the fractional part of |x|, in [0, 1).
func Frac(x float32) float32 {
	require("Frac", "x", x)
	return frac(x)
}

// Round returns Ceil(x) when Frac(x) > 0.5 and Trunc(x) otherwise, so halves
// round toward zero. It inherits the Ceil behaviour for negative inputs:
// Round(-3.7) == -2.
func Round(x float32) float32 {
	require("Round", "x", x)
	if frac(x) > 0.5 {
		return trunc(x) + 1
	}
	return trunc(x)
}

// Mod returns x - y*Trunc(x/y). The result carries the sign of x.
func Mod(x, y float32) float32 {
	require("Mod", "x", x)
	requireNonZero("Mod", "y", y)
	return mod(x, y)
}

// Abs returns |x|.
func Abs(x float32) float32 {
	require("Abs", "x", x)
	return clearSign(x)
}

// Min returns the smaller of x and y.
func Min(x, y float32) float32 {
	require("Min", "x", x)
	require("Min", "y", y)
	return minf(x, y)
}

// Max returns the larger of x and y.
func Max(x, y float32) float32 {
	require("Max", "x", x)
	require("Max", "y", y)
	return maxf(x, y)
}

// Close reports whether |x-y| <= max(relTol*max(|x|,|y|), absTol).
// Both tolerances must be given; there are no defaults.
func Close(x, y, relTol, absTol float32) bool {
	require("Close", "x", x)
	require("Close", "y", y)
	scale := maxf(clearSign(x), clearSign(y))
	return clearSign(x-y) <= maxf(relTol*scale, absTol)
}
