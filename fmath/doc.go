// Package fmath provides fast float32 approximations of rounding and
// trigonometric functions for real-time code that can trade the last bits of
// accuracy for speed.
//
// Rounding primitives read the sign of their argument from bit 31 instead of
// comparing against zero. The trigonometric functions reduce the argument
// into a small interval and evaluate a fixed polynomial there.
//
// # Accuracy Characteristics
//
// Sin, Cos: degree-4 Lagrange fit on [0, π/2], absolute error < 5e-4 for
// |x| <= 100.
//
// Tan: hyperbola with a pole at π/2 plus a degree-4 correction, absolute
// error < 5e-4 while the reduced argument stays within 1.3 of a multiple of π.
// Near π/2 + kπ the error is unbounded.
//
// # Rounding Semantics
//
// [Floor] truncates toward zero and [Ceil] is defined as Floor(x) + 1, so
// neither is the mathematical floor or ceiling for every input:
//
//	Floor(-2.5) == -2   Ceil(-2.5) == -1   Ceil(3) == 4
//
// [RoundDown] rounds toward negative infinity and is what the trigonometric
// range reduction uses. [Mod] follows C fmod: the result has the sign of x.
//
// # Build Modes
//
// Every exported function expects finite, normalized arguments (exact zero
// is accepted). In the default build a violation panics with a
// *[PreconditionError] that wraps [ErrPrecondition]. Building with
//
//	go build -tags fastmath
//
// removes the checks; the results for invalid arguments are then
// unspecified. [Checked] reports which mode is compiled in.
package fmath
