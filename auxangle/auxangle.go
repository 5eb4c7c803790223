// SPDX-License-Identifier: GPL-2.0-or-later

// Package auxangle represents a planar angle as an unnormalized pair (y, x)
// proportional to (sin, cos). Sums and quadrant changes are done with plain
// arithmetic on the pair, which keeps the signs at the axes exact.
//
// An angle that has no direction is the NaN angle, both components NaN.
// It is the only error signal; check for it with IsNaN.
package auxangle

import (
	"fmt"
	"math"
)

// Angle is the direction atan2(y, x). The zero value is the degenerate
// pair (0, 0); use New(0, 1) for the angle zero.
type Angle struct {
	y, x float64
}

// New returns the angle with components y and x as given.
func New(y, x float64) Angle {
	return Angle{y: y, x: x}
}

// NaN returns the undefined angle.
func NaN() Angle {
	return Angle{math.NaN(), math.NaN()}
}

func (a Angle) Y() float64 {
	return a.y
}

func (a Angle) X() float64 {
	return a.x
}

// Tan returns y/x, which may be infinite or NaN.
func (a Angle) Tan() float64 {
	return a.y / a.x
}

// IsNaN reports whether a has no usable direction.
func (a Angle) IsNaN() bool {
	return math.IsNaN(a.y) || math.IsNaN(a.x)
}

func (a Angle) String() string {
	return fmt.Sprintf("(%g, %g)", a.y, a.x)
}

// Normalized returns a scaled onto the unit circle.
// (0, 0), pairs with a NaN component and pairs whose components are both
// beyond MaxFloat64/2 give the NaN angle. If exactly one component is
// infinite the result is the unit vector along that axis.
func (a Angle) Normalized() Angle {
	const big = math.MaxFloat64 / 2
	// covers (0,0), (inf,inf), (nan,nan), (nan,x), (y,nan), (big,big)
	if math.IsNaN(a.Tan()) || (math.Abs(a.y) > big && math.Abs(a.x) > big) {
		return NaN()
	}
	r := math.Hypot(a.y, a.x)
	y, x := a.y/r, a.x/r
	// r is infinite, inf/inf left a NaN behind
	if math.IsNaN(y) {
		y = math.Copysign(1, a.y)
	}
	if math.IsNaN(x) {
		x = math.Copysign(1, a.x)
	}
	return Angle{y, x}
}

// CopyQuadrant returns a with the signs of p's components.
// The magnitudes of a are kept; signed zeros in p are honored.
func (a Angle) CopyQuadrant(p Angle) Angle {
	return Angle{math.Copysign(a.y, p.y), math.Copysign(a.x, p.x)}
}

// Add rotates a by p in place and returns a.
// The result is not normalized. If p.Tan() is zero a is left unchanged so
// that the signs of its components survive.
func (a *Angle) Add(p Angle) *Angle {
	if p.Tan() != 0 {
		x := a.x*p.x - a.y*p.y
		a.y = a.y*p.x + a.x*p.y
		a.x = x
	}
	return a
}
