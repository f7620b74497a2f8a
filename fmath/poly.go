package fmath

// Coefficient tables are stored in ascending power order: c[i] multiplies x^i.

// sinCoeffs is the degree-4 Lagrange interpolant of sin through the points
// (0, 0), (π/6, 1/2), (π/4, √2/2), (π/3, √3/2) and (π/2, 1). It is only
// evaluated on [0, π/2]; the endpoints are reproduced to float32 precision.
var sinCoeffs = [5]float32{
	0,
	0.995626,
	0.0213730075289,
	-0.204340696022,
	0.028797,
}

// tanCoeffs corrects the hyperbola 1/(π/2-x) - 2/π towards tan on [0, π/2).
// The hyperbola already matches tan at 0 and shares its pole at π/2, so the
// correction has no constant term and stays bounded near the pole.
var tanCoeffs = [5]float32{
	0,
	0.58873,
	-0.222615,
	0.0907791,
	-0.0148931,
}

// horner evaluates the polynomial with coefficients c at x.
func horner(x float32, c *[5]float32) float32 {
	return c[0] + x*(c[1]+x*(c[2]+x*(c[3]+x*c[4])))
}
