package fmath

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrPrecondition is the sentinel wrapped by every [PreconditionError].
var ErrPrecondition = errors.New("fmath: precondition violated")

// PreconditionError describes an argument that is not a finite, normalized
// float32. In checked builds it is the panic value raised by the operation
// that received the argument.
type PreconditionError struct {
	Op     string  // operation name, e.g. "Sin"
	Arg    string  // argument name, e.g. "x"
	Value  float32 // offending value
	Reason string  // "NaN", "infinite", "subnormal" or "zero divisor"
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("fmath.%s: argument %s = %v is %s, want finite normalized float32",
		e.Op, e.Arg, e.Value, e.Reason)
}

// Unwrap returns [ErrPrecondition].
func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// classify returns an empty string when x is finite and either normalized or
// an exact zero, and the violated property otherwise.
func classify(x float32) string {
	switch {
	case math32.IsNaN(x):
		return "NaN"
	case math32.IsInf(x, 0):
		return "infinite"
	case isSubnormal(x):
		return "subnormal"
	default:
		return ""
	}
}

// Validate reports whether x satisfies the argument contract of this package.
// It performs the same classification as the checked build, independent of
// the build mode, and returns a *PreconditionError for violations.
func Validate(x float32) error {
	if reason := classify(x); reason != "" {
		return &PreconditionError{Op: "Validate", Arg: "x", Value: x, Reason: reason}
	}
	return nil
}
