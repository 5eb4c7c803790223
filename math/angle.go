// SPDX-License-Identifier: GPL-2.0-or-later

package math

import gmath "math"

const (
	Pi     = gmath.Pi
	Degree = Pi / 180

	// degrees in a quarter and in half a turn
	qd = 90
	hd = 180
	td = 360
)

// AngNormalize reduces an angle in degrees to (-180, 180]
func AngNormalize(x float64) float64 {
	y := gmath.Remainder(x, td)
	if y == -hd {
		return hd
	}
	return y
}

// Sincosd returns the sine and cosine of x given in degrees.
// The argument is reduced exactly to [-45, 45] before converting to radians,
// so multiples of 90 give exact results. The cosine is never -0 and a zero
// sine carries the sign of x.
func Sincosd(x float64) (sinx, cosx float64) {
	if gmath.IsInf(x, 0) || gmath.IsNaN(x) {
		return gmath.NaN(), gmath.NaN()
	}
	a := AngNormalize(x)
	r := gmath.Remainder(a, qd)
	// |a| <= 180 so the quotient is an exact small integer
	q := int(gmath.Round((a - r) / qd))
	s, c := gmath.Sincos(r * Degree)
	switch q & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	cosx += 0
	if sinx == 0 {
		sinx = gmath.Copysign(sinx, x)
	}
	return sinx, cosx
}

// Atan2d returns atan2(y, x) in degrees, in [-180, 180].
// Axis directions are exact: (0, -1) gives 180 and (-0, -1) gives -180.
func Atan2d(y, x float64) float64 {
	// rearrange so that atan2 works in [-45, 45]
	q := 0
	if gmath.Abs(y) > gmath.Abs(x) {
		x, y = y, x
		q = 2
	}
	if gmath.Signbit(x) {
		x = -x
		q++
	}
	ang := gmath.Atan2(y, x) / Degree
	switch q {
	case 1:
		ang = gmath.Copysign(hd, y) - ang
	case 2:
		ang = qd - ang
	case 3:
		ang = -qd + ang
	}
	return ang
}
