package anglehull

import (
	"fmt"
	"iter"
	"slices"

	convexhull "github.com/aerben/convex-hull"
	"github.com/aerben/convex-hull/angle"
	"github.com/aerben/convex-hull/arc"
	"github.com/aerben/convex-hull/hull"
	"github.com/aerben/convex-hull/point"
)

// CuttingStrategy selects which variant of each emitted arc a host consumes.
type CuttingStrategy uint8

const (
	// Uncut selects the untrimmed arcs. They tile the angle hull with overlap
	// on their boundaries; rendering them requires an overlay-tolerant paint
	// strategy.
	Uncut CuttingStrategy = iota

	// Cut selects the trimmed arcs. Their starts and extents are adjusted to
	// approximately abut the neighboring arcs without overlap, at the cost of
	// possible residual sub-pixel gaps or overlaps from double-precision
	// cutting.
	Cut
)

// String converts a [CuttingStrategy] constant into its string representation.
//
// Panics:
//   - If the value is not one of the defined constants.
func (s CuttingStrategy) String() string {
	switch s {
	case Uncut:
		return "Uncut"
	case Cut:
		return "Cut"
	default:
		panic(fmt.Errorf("unsupported CuttingStrategy: %d", s))
	}
}

// ArcPair is one step of the walk: the same arc in both variants.
type ArcPair struct {
	// Uncut is the overlap-tolerant arc over the step's chord.
	Uncut arc.Arc

	// Cut is the overlap-minimized arc, trimmed at both ends.
	Cut arc.Arc
}

// Select returns the variant chosen by the strategy.
//
// Panics:
//   - If the strategy is not one of the defined constants.
func (p ArcPair) Select(strategy CuttingStrategy) arc.Arc {
	switch strategy {
	case Uncut:
		return p.Uncut
	case Cut:
		return p.Cut
	default:
		panic(fmt.Errorf("unsupported CuttingStrategy: %d", strategy))
	}
}

// AngleHull is the α-angle hull of a convex point set: for the aperture α,
// the locus of points from which the set subtends exactly the angle α, as an
// ordered closed sequence of arc pairs.
//
// An AngleHull is immutable and its sequences are restartable: every call to
// [AngleHull.Pairs], [AngleHull.Arcs] or [Map] re-runs the walk from the
// start.
type AngleHull struct {
	ring     *CircularList[point.Point]
	aperture angle.Angle
}

// New prepares the angle-hull walk for the given convex hull and aperture.
//
// The walk operates on the hull points in reversed order, so that ring
// navigation is counter-clockwise in screen space.
//
// Parameters:
//   - h (*hull.ConvexHull): The hull, with at least four distinct hull points.
//   - aperture (angle.Angle): The aperture α, strictly inside (0°, 180°).
//
// Returns:
//   - *AngleHull: The prepared angle hull.
//   - error: A [convexhull.PreconditionError] when the aperture lies outside
//     the open interval or the hull carries fewer than four distinct points.
func New(h *hull.ConvexHull, aperture angle.Angle) (*AngleHull, error) {
	if !aperture.InAperture() {
		return nil, convexhull.PreconditionError{
			Op:     "anglehull.New",
			Reason: fmt.Sprintf("aperture %s outside the open interval (0°, 180°)", aperture),
		}
	}

	points := h.Points()
	if len(points) < 4 {
		return nil, convexhull.PreconditionError{
			Op:     "anglehull.New",
			Reason: fmt.Sprintf("angle hull requires at least 4 distinct hull points, got %d", len(points)),
		}
	}
	slices.Reverse(points)

	ring, err := NewCircularList(points)
	if err != nil {
		return nil, err
	}

	return &AngleHull{
		ring:     ring,
		aperture: aperture,
	}, nil
}

// Aperture returns the aperture α the hull was generated for.
func (h *AngleHull) Aperture() angle.Angle {
	return h.aperture
}

// wvt is the angle-comparison test ("Winkelvergleichstest") that decides the
// advance direction of the walk. With D the determinant of the edge vectors
// (b-a) and (d-c) against the origin and θ the unsigned angle between them:
//
//	wvt = (D > 0) ∧ (θ ≥ α)
//
// A degenerate θ (NaN) compares below α and fails the test.
func (h *AngleHull) wvt(a, b, c, d point.Point) bool {
	det := point.Determinant(b.Sub(a), d.Sub(c), point.Origin())
	theta := angle.BetweenVectors(a, b, c, d)
	return det > 0 && theta.Compare(h.aperture) >= 0
}

// Pairs returns the walk as a lazy sequence of [ArcPair] values, one per
// hull-edge transition, in walk order. The sequence is restartable: every
// range over it re-runs the walk.
//
// The walk keeps two cursors on the ring, a left and a right caterpillar.
// Each step tests whether rotating across the right cursor's next edge still
// subtends at least α; if so the right cursor advances, otherwise the left
// one does, and when the left cursor's next point is the right cursor's
// point, both advance. One arc pair is emitted per step, over the chord between the two
// cursors. The walk closes when both cursors have returned to their initial
// hull points.
func (h *AngleHull) Pairs() iter.Seq[ArcPair] {
	return func(yield func(ArcPair) bool) {
		ls := h.ring.EntryAt(0)
		rs := ls

		// Rotate the right start cursor forward while the full aperture still
		// fits across the start edge pair.
		for h.wvt(ls.Prev().Value(), ls.Value(), rs.Value(), rs.Next().Value()) {
			rs = rs.Next()
		}

		var rhoNext angle.Angle
		if ls.Eq(rs) {
			rs = rs.Next()
			rhoNext = angle.Zero()
		} else {
			rhoNext = angle.AtVertex(rs.Value(), ls.Value(), ls.Prev().Value()).Sub(h.aperture).Double()
		}

		ll, rr := ls, rs
		for {
			l, r, rhoS := ll, rr, rhoNext
			var rhoE angle.Angle

			if h.wvt(l.Value(), l.Next().Value(), r.Value(), r.Next().Value()) {
				if h.wvt(l.Value(), r.Value(), r.Value(), r.Next().Value()) {
					rhoE = angle.AtVertex(r.Next().Value(), r.Value(), l.Value()).Sub(h.aperture).Double()
					rhoNext = angle.AtVertex(l.Value(), r.Next().Value(), r.Value()).Double()
				} else {
					rhoE = angle.Zero()
					rhoNext = angle.Zero()
				}
				rr = r.Next()
			} else {
				if l.Next().Eq(r) {
					rhoE = angle.Zero()
					rhoNext = angle.Zero()
					rr = r.Next()
				} else {
					rhoE = angle.AtVertex(l.Next().Value(), l.Value(), r.Value()).Double()
					rhoNext = angle.AtVertex(r.Value(), l.Next().Value(), l.Value()).Sub(h.aperture).Double()
				}
				ll = l.Next()
			}

			uncut, err := arc.Of(l.Value(), r.Value(), h.aperture)
			if err != nil {
				panic(convexhull.InvariantError{
					Op:     "anglehull.Pairs",
					Reason: "arc construction failed mid-walk: " + err.Error(),
				})
			}

			if !yield(ArcPair{Uncut: uncut, Cut: uncut.Cut(rhoS, rhoE)}) {
				return
			}

			if ll.Eq(ls) && rr.Eq(rs) {
				return
			}
		}
	}
}

// Arcs returns the walk as a lazy, restartable sequence of arcs in the chosen
// variant, one per hull-edge transition, in walk order.
//
// Parameters:
//   - strategy (CuttingStrategy): [Uncut] or [Cut].
func (h *AngleHull) Arcs(strategy CuttingStrategy) iter.Seq[arc.Arc] {
	return func(yield func(arc.Arc) bool) {
		for pair := range h.Pairs() {
			if !yield(pair.Select(strategy)) {
				return
			}
		}
	}
}

// Map returns the walk as a lazy, restartable sequence of collector results:
// one value per arc in walk order, in the chosen variant.
//
// Parameters:
//   - h (*AngleHull): The angle hull to walk.
//   - strategy (CuttingStrategy): [Uncut] or [Cut].
//   - collect (func(arc.Arc) T): The collector applied to each arc.
func Map[T any](h *AngleHull, strategy CuttingStrategy, collect func(a arc.Arc) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for a := range h.Arcs(strategy) {
			if !yield(collect(a)) {
				return
			}
		}
	}
}
