// Package distortion measures the harmonic distortion of a fast oscillator.
//
// An approximated sine or cosine is periodic but not spectrally pure: its
// fitting error repeats every period and shows up as energy at integer
// multiples of the fundamental. [Analyze] samples an integer number of
// periods (coherent sampling, so no window is needed), transforms the frame
// with algo-fft and reports the harmonic levels relative to the fundamental.
package distortion
