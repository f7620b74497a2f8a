package fmath

// Mathematical constants rounded to float32.
const (
	Pi float32 = 3.14159265358979323846264338327950288419716939937510
	E  float32 = 2.71828182845904523536028747135266249775724709369995
)

const (
	halfPi    = Pi / 2
	twoOverPi = 1 / halfPi
)
