// SPDX-License-Identifier: GPL-2.0-or-later

package auxangle

import (
	"math"

	gmath "geoaux/math"
)

// FromRadians returns (sin phi, cos phi).
func FromRadians(phi float64) Angle {
	s, c := math.Sincos(phi)
	return Angle{s, c}
}

// FromDegrees returns the angle d in degrees. Multiples of 90 are exact.
func FromDegrees(d float64) Angle {
	s, c := gmath.Sincosd(d)
	return Angle{s, c}
}

// FromLambertian returns the angle whose lambertian is psi, that is
// tan = sinh(psi).
func FromLambertian(psi float64) Angle {
	return Angle{math.Sinh(psi), 1}
}

// FromLambertianDegrees is FromLambertian with psi given in degrees.
func FromLambertianDegrees(psid float64) Angle {
	return FromLambertian(psid * gmath.Degree)
}

func (a Angle) Radians() float64 {
	return math.Atan2(a.y, a.x)
}

// Degrees returns the direction in [-180, 180].
func (a Angle) Degrees() float64 {
	return gmath.Atan2d(a.y, a.x)
}

// Lam returns the lambertian asinh(tan) of a.
func (a Angle) Lam() float64 {
	return math.Asinh(a.Tan())
}

func (a Angle) Lamd() float64 {
	return a.Lam() / gmath.Degree
}
