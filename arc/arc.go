// Package arc provides a representation of circular arcs, defined by a
// center point, a radius, a start angle and a signed extent angle.
//
// # Overview
//
// The [Arc] type is the unit of output of the angle-hull walk: every step of
// the walk emits one arc over the chord between the two current hull points.
// The constructor [Of] derives center, radius and angles from the chord
// endpoints and the aperture via the inscribed-angle relations; [Arc.Cut]
// trims an arc at both ends for overlap-minimized rendering.
//
// # Precision
//
// The center is an integer point (midpoint and perpendicular offset are
// truncated toward zero); radius and angles are computed in double
// precision. Cutting intentionally stays in double precision and may leave
// sub-pixel gaps or overlaps between neighboring arcs; hosts choose between
// the cut and uncut variants accordingly.
package arc

import (
	"fmt"
	"math"

	convexhull "github.com/aerben/convex-hull"
	"github.com/aerben/convex-hull/angle"
	"github.com/aerben/convex-hull/point"
)

// Arc represents a circular arc in 2D space. All fields are immutable.
type Arc struct {
	center point.Point // center of the carrying circle
	radius float64     // radius of the carrying circle
	start  angle.Angle // absolute start angle ρ, 0-based
	extent angle.Angle // signed extent angle β
}

// New creates an [Arc] directly from its components. The radius is stored as
// its absolute value.
//
// Parameters:
//   - center (point.Point): The center of the carrying circle.
//   - radius (float64): The radius of the carrying circle.
//   - start (angle.Angle): The absolute start angle ρ.
//   - extent (angle.Angle): The signed extent angle β.
//
// Returns:
//   - Arc: A new Arc with the given components.
func New(center point.Point, radius float64, start, extent angle.Angle) Arc {
	return Arc{
		center: center,
		radius: math.Abs(radius),
		start:  start,
		extent: extent,
	}
}

// Of constructs the arc over the chord from a to b on which the set subtends
// the aperture α, using the inscribed-angle relations:
//
//	m = (a+b)/2                     integer midpoint
//	d = |a-b|                       chord length
//	k = -d / (2·tan α)
//	w = (a.Y-b.Y, b.X-a.X) · (k/d)  perpendicular offset, truncated
//	z = m + w                       center
//	r = d / (2·sin α)               radius
//	ρ = angle of (a-z) from the positive x axis, flipped to 2π-ρ when a.Y < z.Y
//	β = 2(π-α)                      extent
//
// Parameters:
//   - a, b (point.Point): The touching points (chord endpoints), distinct.
//   - aperture (angle.Angle): The aperture α, strictly inside (0°, 180°).
//
// Returns:
//   - Arc: The constructed arc.
//   - error: A [convexhull.PreconditionError] when the aperture lies outside
//     the open interval or the chord endpoints coincide.
func Of(a, b point.Point, aperture angle.Angle) (Arc, error) {
	if !aperture.InAperture() {
		return Arc{}, convexhull.PreconditionError{
			Op:     "arc.Of",
			Reason: fmt.Sprintf("aperture %s outside the open interval (0°, 180°)", aperture),
		}
	}
	if a.Eq(b) {
		return Arc{}, convexhull.PreconditionError{
			Op:     "arc.Of",
			Reason: fmt.Sprintf("degenerate chord: both endpoints are %s", a),
		}
	}

	alpha := aperture.Radians()

	m := a.Midpoint(b)
	d := a.DistanceTo(b)
	k := -d / (2 * math.Tan(alpha))

	w := point.New(a.Y()-b.Y(), b.X()-a.X()).Scale(k / d)
	z := m.Add(w)

	r := math.Abs(d / (2 * math.Sin(alpha)))

	rho := angle.AtVertex(point.New(1, 0), point.Origin(), a.Sub(z))
	if a.Y() < z.Y() {
		rho = angle.FromRadians(2 * math.Pi).Sub(rho)
	}

	beta := angle.FromRadians(math.Pi).Sub(aperture).Double()

	return Arc{
		center: z,
		radius: r,
		start:  rho,
		extent: beta,
	}, nil
}

// Center returns the center point of the carrying circle.
func (a Arc) Center() point.Point {
	return a.center
}

// Cut returns the arc trimmed by rhoS at its start and rhoE at its end:
//
//	Arc(z, r, ρ+rhoS, β-rhoS-rhoE)
//
// The trimmed start angle ρ+rhoS is not reduced modulo 2π; hosts whose arc
// primitive requires a canonical range must normalize it themselves.
//
// Parameters:
//   - rhoS (angle.Angle): The trim at the start of the arc.
//   - rhoE (angle.Angle): The trim at the end of the arc.
//
// Returns:
//   - Arc: The trimmed arc over the same carrying circle.
func (a Arc) Cut(rhoS, rhoE angle.Angle) Arc {
	return Arc{
		center: a.center,
		radius: a.radius,
		start:  a.start.Add(rhoS),
		extent: a.extent.Sub(rhoS).Sub(rhoE),
	}
}

// Eq determines whether two arcs are exactly equal: identical centers and
// bit-identical radius, start and extent. Use [Arc.EqWithin] when comparing
// arcs from independent computations.
//
// Parameters:
//   - other (Arc): The arc to compare with.
//
// Returns:
//   - bool: True if the arcs are exactly equal.
func (a Arc) Eq(other Arc) bool {
	return a.EqWithin(other, 0)
}

// EqWithin determines whether two arcs are equal within a tolerance. The
// integer centers are compared exactly; radius, start and extent must agree
// within epsilon.
//
// Parameters:
//   - other (Arc): The arc to compare with.
//   - epsilon (float64): The tolerance applied to the float fields.
//
// Returns:
//   - bool: True if the arcs are equal within the tolerance.
func (a Arc) EqWithin(other Arc, epsilon float64) bool {
	return a.center.Eq(other.center) &&
		math.Abs(a.radius-other.radius) <= epsilon &&
		math.Abs(a.start.Radians()-other.start.Radians()) <= epsilon &&
		math.Abs(a.extent.Radians()-other.extent.Radians()) <= epsilon
}

// Extent returns the signed extent angle β.
func (a Arc) Extent() angle.Angle {
	return a.extent
}

// PointAt returns the point on the carrying circle at the given absolute
// angle, in float64 screen coordinates. Angles are measured in the y-down
// frame, consistent with the start angle ρ: the chord endpoint the arc was
// constructed from satisfies a = z + r·(cos ρ, sin ρ).
//
// Parameters:
//   - at (angle.Angle): The absolute angle on the carrying circle.
//
// Returns:
//   - x, y (float64): The coordinates of the circle point.
func (a Arc) PointAt(at angle.Angle) (x, y float64) {
	x = float64(a.center.X()) + a.radius*math.Cos(at.Radians())
	y = float64(a.center.Y()) + a.radius*math.Sin(at.Radians())
	return x, y
}

// Radius returns the radius of the carrying circle.
func (a Arc) Radius() float64 {
	return a.radius
}

// Start returns the absolute start angle ρ.
func (a Arc) Start() angle.Angle {
	return a.start
}

// String returns a human-readable representation of the arc in the format
// "Arc(center=(x,y), r=..., ρ=..., β=...)".
func (a Arc) String() string {
	return fmt.Sprintf("Arc(center=%s, r=%f, ρ=%s, β=%s)", a.center, a.radius, a.start, a.extent)
}
