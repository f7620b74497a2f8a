//go:build !fastmath

package fmath

// Checked reports whether argument preconditions are enforced. It is true in
// the default build and false when built with -tags fastmath.
const Checked = true

// require panics with a *PreconditionError when x is not a finite,
// normalized float32.
func require(op, arg string, x float32) {
	if reason := classify(x); reason != "" {
		panic(&PreconditionError{Op: op, Arg: arg, Value: x, Reason: reason})
	}
}

// requireNonZero additionally rejects a zero divisor.
func requireNonZero(op, arg string, x float32) {
	require(op, arg, x)
	if x == 0 {
		panic(&PreconditionError{Op: op, Arg: arg, Value: x, Reason: "zero divisor"})
	}
}
