package math

import (
	gmath "math"
)

func Sincosd32(x float32) (float32, float32) {
	s, c := Sincosd(float64(x))
	return float32(s), float32(c)
}

func Atan2d32(y, x float32) float32 {
	return float32(Atan2d(float64(y), float64(x)))
}

func Asinh32(x float32) float32 {
	return float32(gmath.Asinh(float64(x)))
}
