package fmath

// sin folds x into [0, π/2] and evaluates sinCoeffs there.
//
// With k = ⌊(x+π/2)/π⌋ the remainder d = kπ - x lies in (-π/2, π/2]. The
// sign of the result is the parity of ⌊x/π⌋ and the reduced argument is |d|,
// whose sign is read from bit 31 of d.
func sin(x float32) float32 {
	sf := paritySign(roundDown(x / Pi))
	k := roundDown((x + halfPi) / Pi)
	d := k*Pi - x
	sa := signOf(d)
	arg := sa * d
	return sf * horner(arg, &sinCoeffs)
}

// tan reduces x into [-π/2, π/2) with period π, then evaluates the
// hyperbola-plus-correction approximation on |in| and restores the sign.
func tan(x float32) float32 {
	in := wrap(x+halfPi, Pi) - halfPi
	s := signOf(in)
	in = clearSign(in)
	return s * (1/(halfPi-in) - twoOverPi + horner(in, &tanCoeffs))
}

// Sin returns an approximation of sin(x). The absolute error is below 1e-3
// for arguments of moderate magnitude; range reduction is carried out in
// float32, so the error grows with |x|.
func Sin(x float32) float32 {
	require("Sin", "x", x)
	return sin(x)
}

// Cos returns Sin(π/2 - x). It shares the error profile of [Sin].
func Cos(x float32) float32 {
	require("Cos", "x", x)
	return sin(halfPi - x)
}

// Tan returns an approximation of tan(x). The absolute error is below 1e-3
// while the reduced argument stays within 1.3 of a multiple of π. Close to the
// poles at π/2 + kπ the value grows without bound and the error is large, as
// any error in the reduced argument is amplified by the pole.
func Tan(x float32) float32 {
	require("Tan", "x", x)
	return tan(x)
}
