package fmath

import "math"

const (
	signMask     = 1 << 31
	exponentMask = 0xff << 23
	mantissaMask = 1<<23 - 1
)

// signBit returns bit 31 of the IEEE-754 representation of x (1 for negative,
// including -0).
func signBit(x float32) uint32 {
	return math.Float32bits(x) >> 31
}

// signOf maps the sign bit of x to +1 or -1 without a comparison.
func signOf(x float32) float32 {
	return 1 - 2*float32(signBit(x))
}

// clearSign returns |x| by clearing bit 31.
func clearSign(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask)
}

// paritySign returns +1 when the integral value n is even and -1 when it is
// odd; -1 is odd. Every float32 of magnitude 2^24 or more is even.
func paritySign(n float32) float32 {
	a := clearSign(n)
	if a >= 1<<24 {
		return 1
	}
	return 1 - 2*float32(uint32(a)&1)
}

// isSubnormal reports whether x has a zero exponent field and a non-zero
// mantissa.
func isSubnormal(x float32) bool {
	b := math.Float32bits(x)
	return b&exponentMask == 0 && b&mantissaMask != 0
}
