// Package pointset provides SortedPointSet, a deduplicated point container
// ordered by the lexicographic point order (x primary ascending, y secondary
// ascending).
//
// The set is backed by a balanced B-tree and supports ascending
// (left-to-right) and descending (right-to-left) traversal, which is what the
// two opposing sweeps of the outline construction consume.
package pointset

import (
	"fmt"
	"strings"

	"github.com/aerben/convex-hull/point"
	"github.com/google/btree"
)

// Order selects the traversal direction over a [SortedPointSet].
type Order uint8

const (
	// LeftToRight traverses points in ascending lexicographic order.
	LeftToRight Order = iota

	// RightToLeft traverses points in descending lexicographic order.
	RightToLeft
)

// String returns a human-readable string representation of the traversal order.
//
// Panics:
//   - If the value is not one of the defined constants.
func (o Order) String() string {
	switch o {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		panic(fmt.Errorf("unsupported Order: %d", o))
	}
}

// Accumulator consumes points fed from a traversal, one at a time. The sweep
// lines of the hull package implement this interface.
type Accumulator interface {
	Insert(p point.Point)
}

// pointLess defines the ordering of points inside the backing B-tree.
func pointLess(p, q point.Point) bool {
	return p.Compare(q) < 0
}

// SortedPointSet is a deduplicated set of points in ascending lexicographic
// order. The zero value is not usable; construct with [New].
//
// Invariant: no two stored points are equal.
type SortedPointSet struct {
	tree *btree.BTreeG[point.Point]
}

// New builds a SortedPointSet from the given points. Duplicates are silently
// dropped; the insertion order of the input is irrelevant.
//
// Parameters:
//   - points: The points to store.
//
// Returns:
//   - *SortedPointSet: The deduplicated, ordered set.
func New(points ...point.Point) *SortedPointSet {
	tree := btree.NewG(2, pointLess)
	for _, p := range points {
		tree.ReplaceOrInsert(p)
	}
	return &SortedPointSet{tree: tree}
}

// Ascend calls fn for every point in ascending lexicographic order until fn
// returns false or the set is exhausted.
func (s *SortedPointSet) Ascend(fn func(p point.Point) bool) {
	s.tree.Ascend(func(p point.Point) bool {
		return fn(p)
	})
}

// AsSlice returns the points of the set as a freshly allocated slice in
// ascending lexicographic order.
func (s *SortedPointSet) AsSlice() []point.Point {
	out := make([]point.Point, 0, s.tree.Len())
	s.tree.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Contains reports whether the set holds the given point.
func (s *SortedPointSet) Contains(p point.Point) bool {
	_, ok := s.tree.Get(p)
	return ok
}

// Descend calls fn for every point in descending lexicographic order until fn
// returns false or the set is exhausted.
func (s *SortedPointSet) Descend(fn func(p point.Point) bool) {
	s.tree.Descend(func(p point.Point) bool {
		return fn(p)
	})
}

// Size returns the number of distinct points in the set.
func (s *SortedPointSet) Size() int {
	return s.tree.Len()
}

// String returns the points of the set in ascending order, space-separated.
func (s *SortedPointSet) String() string {
	builder := strings.Builder{}
	first := true
	s.Ascend(func(p point.Point) bool {
		if !first {
			builder.WriteString(" ")
		}
		builder.WriteString(p.String())
		first = false
		return true
	})
	return builder.String()
}

// Sweep feeds every point of the set into the accumulator in the chosen
// traversal direction.
//
// Parameters:
//   - acc (Accumulator): The accumulator receiving the points.
//   - order (Order): [LeftToRight] for ascending, [RightToLeft] for descending.
func (s *SortedPointSet) Sweep(acc Accumulator, order Order) {
	visit := func(p point.Point) bool {
		acc.Insert(p)
		return true
	}
	switch order {
	case LeftToRight:
		s.Ascend(visit)
	case RightToLeft:
		s.Descend(visit)
	default:
		panic(fmt.Errorf("unsupported Order: %d", order))
	}
}
