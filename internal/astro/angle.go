// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"

	"github.com/soniakeys/unit"
)

// TrigEpsilon is how far outside [-1, 1] an inverse trig argument may drift
// before it is reported as a DomainError instead of being clamped.
const TrigEpsilon = 1e-9

// SexagesimalToDecimal converts degrees/minutes/seconds (or hours/minutes/seconds)
// to a single decimal value.
//
// The sign is taken from degrees alone: (0, -30, 0) yields +0.5, not -0.5.
// Use SexagesimalToDecimalStrict when any negative component should make the
// result negative.
func SexagesimalToDecimal(degrees, minutes int, seconds float64) float64 {
	sign := 1.0
	if degrees < 0 {
		sign = -1
	}
	return sign * (math.Abs(float64(degrees)) +
		math.Abs(float64(minutes))/60 +
		math.Abs(seconds)/3600)
}

// SexagesimalToDecimalStrict is like SexagesimalToDecimal but treats the value
// as negative when any of its components is negative.
func SexagesimalToDecimalStrict(degrees, minutes int, seconds float64) float64 {
	var neg byte
	if degrees < 0 || minutes < 0 || seconds < 0 {
		neg = '-'
	}
	return unit.FromSexa(neg, absInt(degrees), absInt(minutes), math.Abs(seconds))
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(a float64) float64 {
	return math.Sin(degToRad(a))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(a float64) float64 {
	return math.Cos(degToRad(a))
}

// AsinDeg returns the arcsine of x in degrees, in [-90, 90].
func AsinDeg(x float64) (float64, error) {
	x, err := clampUnit("asin", x)
	if err != nil {
		return 0, err
	}
	return radToDeg(math.Asin(x)), nil
}

// AcosDeg returns the arccosine of x in degrees, in [0, 180].
func AcosDeg(x float64) (float64, error) {
	x, err := clampUnit("acos", x)
	if err != nil {
		return 0, err
	}
	return radToDeg(math.Acos(x)), nil
}

// Normalize360 maps any finite angle into [0, 360).
func Normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// a tiny negative remainder plus 360 rounds to exactly 360
	if a >= 360 {
		a -= 360
	}
	return a
}

// clampUnit pulls values that drifted just past ±1 back onto the boundary.
func clampUnit(op string, x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, &DomainError{Op: op, Value: x}
	case x > 1:
		if x-1 > TrigEpsilon {
			return 0, &DomainError{Op: op, Value: x}
		}
		return 1, nil
	case x < -1:
		if -1-x > TrigEpsilon {
			return 0, &DomainError{Op: op, Value: x}
		}
		return -1, nil
	}
	return x, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
