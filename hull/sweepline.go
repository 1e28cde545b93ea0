// Package hull implements the three-phase convex hull construction: two
// opposing sweeps produce a four-region outline, each region chain is
// straightened into a strictly right-turning path, and the four straightened
// parts form an updatable convex hull with per-region memoization.
//
// All orientation language in this package uses the y-down (image/screen)
// convention: a negative three-point determinant is a right turn.
package hull

import (
	"github.com/aerben/convex-hull/point"
)

// SweepLine is an online accumulator that, as points are fed in sorted order,
// records the running maxima and minima of y and the two monotone chains they
// generate.
//
// Invariants after n discovered points:
//   - the upper chain is strictly y-increasing,
//   - the lower chain is strictly y-decreasing,
//   - both chains start with the first discovered point.
//
// Points whose y falls inside the closed band [yMin, yMax] are discarded.
// The zero value is an empty, ready-to-use sweep line.
type SweepLine struct {
	upper []point.Point
	lower []point.Point
	yMax  int32
	yMin  int32
	size  int
}

// NewSweepLine returns an empty sweep line.
func NewSweepLine() *SweepLine {
	return &SweepLine{}
}

// Insert feeds the next point of the sweep into the accumulator.
//
// The first point seeds both chains and both extrema. Each subsequent point p
// is appended to the upper chain iff p.Y > yMax, else to the lower chain iff
// p.Y < yMin, and discarded otherwise. Chain order is discovery order.
func (s *SweepLine) Insert(p point.Point) {
	if s.size == 0 {
		s.upper = append(s.upper, p)
		s.lower = append(s.lower, p)
		s.yMax = p.Y()
		s.yMin = p.Y()
		s.size = 1
		return
	}

	switch {
	case p.Y() > s.yMax:
		s.upper = append(s.upper, p)
		s.yMax = p.Y()
	case p.Y() < s.yMin:
		s.lower = append(s.lower, p)
		s.yMin = p.Y()
	}
	s.size++
}

// Lower returns the strictly y-decreasing chain accumulated so far. The
// returned slice is shared with the sweep line and must not be modified.
func (s *SweepLine) Lower() []point.Point {
	return s.lower
}

// Size returns the number of points discovered so far, including discarded
// ones.
func (s *SweepLine) Size() int {
	return s.size
}

// Upper returns the strictly y-increasing chain accumulated so far. The
// returned slice is shared with the sweep line and must not be modified.
func (s *SweepLine) Upper() []point.Point {
	return s.upper
}

// YMax returns the running maximum y discovered so far. Meaningless before
// the first insert.
func (s *SweepLine) YMax() int32 {
	return s.yMax
}

// YMin returns the running minimum y discovered so far. Meaningless before
// the first insert.
func (s *SweepLine) YMin() int32 {
	return s.yMin
}
