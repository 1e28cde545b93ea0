package angle

import (
	"math"

	"github.com/aerben/convex-hull/point"
)

// AtVertex calculates the unsigned angle at vertex b between the rays b→a and
// b→c:
//
//	acos( (a-b)·(c-b) / (|a-b|·|c-b|) )
//
// The result lies in [0, π].
//
// Parameters:
//   - a (point.Point): The point forming one side of the angle.
//   - b (point.Point): The vertex.
//   - c (point.Point): The point forming the other side of the angle.
//
// Returns:
//   - Angle: The unsigned angle at b. If either ray has zero magnitude the
//     result carries NaN; callers must avoid degenerate inputs.
//
// Note:
//   - The cosine is clamped to [-1, 1] before math.Acos is applied, since
//     floating-point rounding can push the normalized dot product slightly
//     outside the valid domain for nearly collinear inputs.
func AtVertex(a, b, c point.Point) Angle {
	ba := a.Sub(b)
	bc := c.Sub(b)

	magBA := point.Origin().DistanceTo(ba)
	magBC := point.Origin().DistanceTo(bc)

	// Guard against division by zero
	if magBA == 0 || magBC == 0 {
		return Angle{radians: math.NaN()}
	}

	dot := float64(ba.X())*float64(bc.X()) + float64(ba.Y())*float64(bc.Y())
	cosTheta := dot / (magBA * magBC)

	// Clamp to [-1,1]
	cosTheta = math.Max(-1, math.Min(1, cosTheta))

	return Angle{radians: math.Acos(cosTheta)}
}

// BetweenVectors calculates the unsigned angle between the vectors (a-b) and
// (d-c), anchored at the origin:
//
//	AtVertex(a-b, O, d-c)
//
// Parameters:
//   - a, b (point.Point): The points defining the first vector, a-b.
//   - c, d (point.Point): The points defining the second vector, d-c.
//
// Returns:
//   - Angle: The unsigned angle between the two vectors, in [0, π]; NaN when
//     either vector has zero magnitude.
func BetweenVectors(a, b, c, d point.Point) Angle {
	return AtVertex(a.Sub(b), point.Origin(), d.Sub(c))
}
