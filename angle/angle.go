// Package angle provides the Angle value type and the scalar-product angle
// calculators used by the arc and angle-hull constructions.
//
// # Overview
//
// An [Angle] carries a single radian magnitude in float64. Angles support
// construction from radians or degrees, doubling, addition, subtraction and
// total ordering. No modular normalization is applied anywhere in this
// package: callers that require a canonical range (for example before handing
// a start angle to a rendering primitive) must normalize themselves.
//
// The calculators [AtVertex] and [BetweenVectors] derive unsigned angles in
// [0, π] from integer points via normalized dot products.
package angle

import (
	"fmt"
	"math"
)

// Angle represents an angle as a radian magnitude. Angles are immutable;
// operations return new instances.
type Angle struct {
	radians float64
}

// Zero returns the canonical zero angle.
func Zero() Angle {
	return Angle{}
}

// FromRadians creates an Angle carrying the given radian magnitude.
//
// Parameters:
//   - radians (float64): The magnitude in radians.
//
// Returns:
//   - Angle: A new Angle.
func FromRadians(radians float64) Angle {
	return Angle{radians: radians}
}

// FromDegrees creates an Angle from a magnitude in degrees, converting by
// the factor π/180.
//
// Parameters:
//   - degrees (float64): The magnitude in degrees.
//
// Returns:
//   - Angle: A new Angle.
func FromDegrees(degrees float64) Angle {
	return Angle{radians: degrees * math.Pi / 180}
}

// Add returns the sum of the two angles.
func (a Angle) Add(b Angle) Angle {
	return Angle{radians: a.radians + b.radians}
}

// Compare orders two angles by their radian magnitude.
//
// Returns:
//   - int: -1 if a is smaller than b, +1 if a is larger, 0 if equal.
//     A NaN magnitude compares as smaller than any other value.
func (a Angle) Compare(b Angle) int {
	switch {
	case a.radians < b.radians:
		return -1
	case a.radians > b.radians:
		return 1
	case a.radians == b.radians:
		return 0
	// NaN handling: NaN sorts below everything, two NaNs are equal.
	case math.IsNaN(a.radians) && math.IsNaN(b.radians):
		return 0
	case math.IsNaN(a.radians):
		return -1
	default:
		return 1
	}
}

// Degrees returns the magnitude of the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.radians * 180 / math.Pi
}

// Double returns the angle with twice the radian magnitude.
func (a Angle) Double() Angle {
	return Angle{radians: a.radians * 2}
}

// IsNaN reports whether the angle magnitude is NaN, the result of a
// degenerate calculator input.
func (a Angle) IsNaN() bool {
	return math.IsNaN(a.radians)
}

// Radians returns the magnitude of the angle in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// String returns the angle formatted as its radian magnitude, e.g. "1.570796rad".
func (a Angle) String() string {
	return fmt.Sprintf("%frad", a.radians)
}

// Sub returns the difference of the two angles.
func (a Angle) Sub(b Angle) Angle {
	return Angle{radians: a.radians - b.radians}
}

// InAperture reports whether the angle lies strictly inside the open interval
// (0°, 180°). Only such apertures define a valid angle hull.
func (a Angle) InAperture() bool {
	return a.radians > 0 && a.radians < math.Pi
}
