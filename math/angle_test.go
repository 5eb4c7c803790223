// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{0, 0},
		{66.6666, 66.6666},
		{180, 180},
		{-180, 180},
		{180 + 360, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{-720 + 45, 45},
	} {
		got := AngNormalize(tc.in)
		if got != tc.want {
			t.Errorf("AngNormalize(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestSincosdExact(t *testing.T) {
	for _, tc := range []struct {
		in           float64
		wantS, wantC float64
	}{
		{0, 0, 1},
		{90, 1, 0},
		{180, 0, -1},
		{270, -1, 0},
		{-90, -1, 0},
		{-270, 1, 0},
		{360, 0, 1},
		{450, 1, 0},
		{1e10 * 90, 0, 1},
	} {
		s, c := Sincosd(tc.in)
		if s != tc.wantS || c != tc.wantC {
			t.Errorf("Sincosd(%v) = %v, %v want %v, %v", tc.in, s, c, tc.wantS, tc.wantC)
		}
		if c == 0 && gmath.Signbit(c) {
			t.Errorf("Sincosd(%v) cosine is -0", tc.in)
		}
	}
}

func TestSincosdSignedZero(t *testing.T) {
	for _, tc := range []struct {
		in       float64
		wantNegS bool
	}{
		{0, false},
		{gmath.Copysign(0, -1), true},
		{180, false},
		{-180, true},
		{360, false},
		{-360, true},
	} {
		s, _ := Sincosd(tc.in)
		if s != 0 || gmath.Signbit(s) != tc.wantNegS {
			t.Errorf("Sincosd(%v) sine = %v, want zero with signbit %v", tc.in, s, tc.wantNegS)
		}
	}
}

func TestSincosdMatchesSincos(t *testing.T) {
	for d := -720.0; d <= 720; d += 7.5 {
		s, c := Sincosd(d)
		ws, wc := gmath.Sincos(d * Degree)
		if !scalar.EqualWithinAbs(s, ws, 1e-14) || !scalar.EqualWithinAbs(c, wc, 1e-14) {
			t.Errorf("Sincosd(%v) = %v, %v want %v, %v", d, s, c, ws, wc)
		}
	}
}

func TestSincosdNonFinite(t *testing.T) {
	for _, in := range []float64{gmath.Inf(1), gmath.Inf(-1), gmath.NaN()} {
		s, c := Sincosd(in)
		if !gmath.IsNaN(s) || !gmath.IsNaN(c) {
			t.Errorf("Sincosd(%v) = %v, %v want NaN, NaN", in, s, c)
		}
	}
}

func TestAtan2d(t *testing.T) {
	negZero := gmath.Copysign(0, -1)
	for _, tc := range []struct {
		y, x, want float64
	}{
		{0, 1, 0},
		{1, 0, 90},
		{0, -1, 180},
		{negZero, -1, -180},
		{-1, 0, -90},
	} {
		got := Atan2d(tc.y, tc.x)
		if got != tc.want {
			t.Errorf("Atan2d(%v, %v) = %v want %v", tc.y, tc.x, got, tc.want)
		}
	}
	for _, tc := range []struct {
		y, x, want float64
	}{
		{1, 1, 45},
		{-1, -1, -135},
		{1, -1, 135},
		{-2, 1, -63.43494882292201},
	} {
		got := Atan2d(tc.y, tc.x)
		if !scalar.EqualWithinAbs(got, tc.want, 1e-12) {
			t.Errorf("Atan2d(%v, %v) = %v want %v", tc.y, tc.x, got, tc.want)
		}
	}
}

func TestAtan2dRoundTrip(t *testing.T) {
	for d := -179.5; d <= 180; d += 2.5 {
		got := Atan2d(Sincosd(d))
		if !scalar.EqualWithinAbs(got, d, 1e-12) {
			t.Errorf("Atan2d(Sincosd(%v)) = %v", d, got)
		}
	}
}

func TestFloat32Wrappers(t *testing.T) {
	s, c := Sincosd32(90)
	if s != 1 || c != 0 {
		t.Errorf("Sincosd32(90) = %v, %v want 1, 0", s, c)
	}
	if got := Atan2d32(-1, 0); got != -90 {
		t.Errorf("Atan2d32(-1, 0) = %v want -90", got)
	}
	if got := Asinh32(0); got != 0 {
		t.Errorf("Asinh32(0) = %v want 0", got)
	}
}
