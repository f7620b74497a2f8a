//go:build fastmath

package fmath

// Checked reports whether argument preconditions are enforced. It is true in
// the default build and false when built with -tags fastmath.
const Checked = false

// require is a no-op in fastmath builds; callers own the argument contract.
func require(_, _ string, _ float32) {}

func requireNonZero(_, _ string, _ float32) {}
