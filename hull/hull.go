package hull

import (
	"slices"

	convexhull "github.com/aerben/convex-hull"
	"github.com/aerben/convex-hull/point"
	"github.com/aerben/convex-hull/pointset"
)

// ConvexHull is the updatable convex hull of a point set.
//
// A hull is in one of two states:
//
//   - small: fewer than four distinct input points; the hull chain is the
//     sorted, deduplicated input verbatim and no outline exists.
//   - big: four or more distinct points; the hull holds the four-region
//     outline and one straightened chain per region.
//
// Hulls are immutable: [ConvexHull.Update] returns a new instance, reusing
// the straightened chain of every region whose outline chain is structurally
// unchanged.
type ConvexHull struct {
	small   []point.Point
	outline Outline
	parts   [4][]point.Point
	big     bool
}

// New computes the convex hull of the given points. The input is sorted and
// deduplicated first; a nil or empty input yields a small hull containing no
// points.
//
// Parameters:
//   - points ([]point.Point): The input points, in any order, duplicates allowed.
//
// Returns:
//   - *ConvexHull: The hull.
func New(points []point.Point) *ConvexHull {
	return build(pointset.New(points...), nil)
}

// Update computes the hull of the new point set, reusing per-region work from
// the receiver where the outline chains are structurally unchanged. The
// receiver is not modified.
//
// For any two inputs A and B, New(A).Update(B).Points() equals
// New(B).Points() as an ordered sequence.
//
// Parameters:
//   - points ([]point.Point): The new input points, replacing the old set.
//
// Returns:
//   - *ConvexHull: A new hull for the new points.
func (h *ConvexHull) Update(points []point.Point) *ConvexHull {
	return build(pointset.New(points...), h)
}

// build constructs a hull from a sorted set, memoizing straightened regions
// from prev where the outline chains match.
func build(set *pointset.SortedPointSet, prev *ConvexHull) *ConvexHull {
	if set.Size() < 4 {
		return &ConvexHull{small: set.AsSlice()}
	}

	outline, err := NewOutline(set)
	if err != nil {
		panic(convexhull.InvariantError{
			Op:     "hull.build",
			Reason: "outline construction failed for a set of more than 3 points: " + err.Error(),
		})
	}

	next := &ConvexHull{outline: outline, big: true}
	for _, r := range Regions() {
		if prev != nil && prev.big && outline.PartEq(r, prev.outline.Part(r)) {
			next.parts[r] = prev.parts[r]
			continue
		}
		next.parts[r] = Straighten(outline.Part(r))
	}
	return next
}

// IsSmall reports whether the hull is in the small state (fewer than four
// distinct input points).
func (h *ConvexHull) IsSmall() bool {
	return !h.big
}

// Points returns the hull polygon as an ordered point slice.
//
// For a big hull the four straightened parts are concatenated in the fixed
// order NW, NE, SE, SW and duplicates are removed preserving first
// occurrence; the resulting polygon is oriented clockwise in screen
// coordinates. For a small hull the sorted distinct input points are returned
// verbatim.
//
// Returns:
//   - []point.Point: A freshly allocated slice; callers may modify it.
func (h *ConvexHull) Points() []point.Point {
	if !h.big {
		return slices.Clone(h.small)
	}

	out := make([]point.Point, 0, len(h.parts[NW])+len(h.parts[NE])+len(h.parts[SE])+len(h.parts[SW]))
	for _, r := range Regions() {
		for _, p := range h.parts[r] {
			if !slices.ContainsFunc(out, p.Eq) {
				out = append(out, p)
			}
		}
	}
	return out
}

// Size returns the number of points on the hull polygon.
func (h *ConvexHull) Size() int {
	return len(h.Points())
}
