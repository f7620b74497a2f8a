// Package accuracy measures how far a float32 approximation strays from a
// float64 reference over a sampled interval.
//
// The approximation is evaluated on an evenly spaced grid and every sample
// contributes to a single-pass [Report]: worst absolute error and where it
// occurs, mean and RMS error, signed bias, relative error and the number of
// correct bits implied by the worst case.
//
// Build with -tags fastmath to compute the bit count with the algo-approx
// logarithm instead of the standard library.
package accuracy
