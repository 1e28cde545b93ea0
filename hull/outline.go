package hull

import (
	"slices"

	convexhull "github.com/aerben/convex-hull"
	"github.com/aerben/convex-hull/point"
	"github.com/aerben/convex-hull/pointset"
)

// Outline is the four-region contour polygon of a point set, obtained by two
// opposing sweeps over the sorted points. It maps each [Region] to a
// non-empty ordered chain of points.
//
// The contour is a superset of the convex hull: a region chain may still
// contain left-or-collinear turns that straightening removes.
//
// When the extreme points are unique, the chains meet at them:
//
//	NW[0] == SW.last, NW.last == NE[0], NE.last == SE[0], SE.last == SW[0].
//
// When several points share the largest or the smallest y, the two sweeps
// can end their chains on different ones of them, and the adjacent chains
// then do not meet (for the square (0,0), (0,10), (10,0), (10,10), NW ends at
// (0,10) while NE starts at (10,10)).
type Outline struct {
	parts [4][]point.Point
}

// NewOutline builds the outline of the given set by performing a
// left-to-right sweep producing the (leftUpper, leftLower) chains and a
// right-to-left sweep producing (rightUpper, rightLower). Regions are
// assigned:
//
//	NW ← leftUpper
//	NE ← reverse(rightUpper)
//	SE ← rightLower
//	SW ← reverse(leftLower)
//
// Parameters:
//   - set (*pointset.SortedPointSet): The deduplicated, ordered input points.
//
// Returns:
//   - Outline: The four-region contour.
//   - error: A [convexhull.PreconditionError] when the set holds three or
//     fewer points.
func NewOutline(set *pointset.SortedPointSet) (Outline, error) {
	if set.Size() <= 3 {
		return Outline{}, convexhull.PreconditionError{
			Op:     "hull.NewOutline",
			Reason: "outline requires more than 3 distinct points",
		}
	}

	leftToRight := NewSweepLine()
	set.Sweep(leftToRight, pointset.LeftToRight)

	rightToLeft := NewSweepLine()
	set.Sweep(rightToLeft, pointset.RightToLeft)

	var o Outline
	o.parts[NW] = slices.Clone(leftToRight.Upper())
	o.parts[NE] = reversed(rightToLeft.Upper())
	o.parts[SE] = slices.Clone(rightToLeft.Lower())
	o.parts[SW] = reversed(leftToRight.Lower())
	return o, nil
}

// Part returns the ordered chain of the given region. The returned slice is
// shared with the outline and must not be modified.
func (o Outline) Part(r Region) []point.Point {
	return o.parts[r]
}

// PartEq reports whether the chain of the given region is structurally equal
// to the supplied chain. Used by the convex hull to reuse straightened
// regions across updates.
func (o Outline) PartEq(r Region, chain []point.Point) bool {
	return slices.Equal(o.parts[r], chain)
}

func reversed(chain []point.Point) []point.Point {
	out := slices.Clone(chain)
	slices.Reverse(out)
	return out
}
