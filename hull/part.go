package hull

import (
	"slices"

	"github.com/aerben/convex-hull/point"
)

// Straighten turns an outline chain into a chain that turns only right, i.e.
// is convex when the four region chains are concatenated. The input chain is
// not modified.
//
// The straightening repeats an advance / walk-back cycle:
//
//  1. Advance: find the first interior triple that turns left or is
//     collinear (determinant ≥ 0). If there is none, the chain is straight.
//  2. Walk back: from the offending vertex, scan backwards for the nearest
//     vertex whose predecessor still forms a right turn with the point after
//     the offending vertex.
//  3. Splice: drop every vertex between the two, and repeat.
//
// Collinear triples count as left turns and are removed, so collinear input
// collapses to its two extreme endpoints. Every interior triple (A, B, C) of
// the result satisfies Determinant(A, B, C) < 0.
//
// Parameters:
//   - chain ([]point.Point): The ordered outline chain, len ≥ 1.
//
// Returns:
//   - []point.Point: The straightened chain.
func Straighten(chain []point.Point) []point.Point {
	out := slices.Clone(chain)
	for {
		i, found := advance(out)
		if !found {
			return out
		}
		j := i + 1
		k := walkBack(out, j)
		out = splice(out, k, j)
	}
}

// advance returns the smallest index i with Determinant(P[i], P[i+1], P[i+2])
// ≥ 0, i.e. the first left-or-collinear interior triple.
func advance(chain []point.Point) (int, bool) {
	for i := 0; i+2 < len(chain); i++ {
		if point.Orientation(chain[i], chain[i+1], chain[i+2]) != point.Clockwise {
			return i, true
		}
	}
	return 0, false
}

// walkBack scans from i = j down to 1 and returns the largest i such that
// (P[i-1], P[i], P[j+1]) is a strict right turn. If no such i exists the
// splice anchors at index 0.
func walkBack(chain []point.Point, j int) int {
	for i := j; i >= 1; i-- {
		if point.Orientation(chain[i-1], chain[i], chain[j+1]) == point.Clockwise {
			return i
		}
	}
	return 0
}

// splice keeps chain[0..i] and chain[j+1..], dropping the vertices between.
func splice(chain []point.Point, i, j int) []point.Point {
	return append(chain[:i+1], chain[j+1:]...)
}
