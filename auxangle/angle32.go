// SPDX-License-Identifier: GPL-2.0-or-later

package auxangle

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	gmath "geoaux/math"
)

// Angle32 is Angle in single precision.
type Angle32 struct {
	y, x float32
}

func New32(y, x float32) Angle32 {
	return Angle32{y: y, x: x}
}

func NaN32() Angle32 {
	return Angle32{math32.NaN(), math32.NaN()}
}

// To32 narrows a to single precision.
func To32(a Angle) Angle32 {
	return Angle32{float32(a.y), float32(a.x)}
}

// Float64 widens a to an Angle.
func (a Angle32) Float64() Angle {
	return Angle{float64(a.y), float64(a.x)}
}

func (a Angle32) Y() float32 {
	return a.y
}

func (a Angle32) X() float32 {
	return a.x
}

func (a Angle32) Tan() float32 {
	return a.y / a.x
}

func (a Angle32) IsNaN() bool {
	return math32.IsNaN(a.y) || math32.IsNaN(a.x)
}

func (a Angle32) String() string {
	return fmt.Sprintf("(%g, %g)", a.y, a.x)
}

// Normalized follows Angle.Normalized with the limit MaxFloat32/2.
func (a Angle32) Normalized() Angle32 {
	const big = math.MaxFloat32 / 2
	if math32.IsNaN(a.Tan()) || (math32.Abs(a.y) > big && math32.Abs(a.x) > big) {
		return NaN32()
	}
	r := math32.Hypot(a.y, a.x)
	y, x := a.y/r, a.x/r
	if math32.IsNaN(y) {
		y = math32.Copysign(1, a.y)
	}
	if math32.IsNaN(x) {
		x = math32.Copysign(1, a.x)
	}
	return Angle32{y, x}
}

func (a Angle32) CopyQuadrant(p Angle32) Angle32 {
	return Angle32{math32.Copysign(a.y, p.y), math32.Copysign(a.x, p.x)}
}

func (a *Angle32) Add(p Angle32) *Angle32 {
	if p.Tan() != 0 {
		x := a.x*p.x - a.y*p.y
		a.y = a.y*p.x + a.x*p.y
		a.x = x
	}
	return a
}

func (a Angle32) Degrees() float32 {
	return gmath.Atan2d32(a.y, a.x)
}

func (a Angle32) Lam() float32 {
	return gmath.Asinh32(a.Tan())
}

func FromDegrees32(d float32) Angle32 {
	s, c := gmath.Sincosd32(d)
	return Angle32{s, c}
}
