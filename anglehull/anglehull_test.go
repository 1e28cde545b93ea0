package anglehull

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convexhull "github.com/aerben/convex-hull"
	"github.com/aerben/convex-hull/angle"
	"github.com/aerben/convex-hull/arc"
	"github.com/aerben/convex-hull/hull"
	"github.com/aerben/convex-hull/point"
)

func squareHull(t *testing.T) *hull.ConvexHull {
	t.Helper()
	h := hull.New([]point.Point{
		point.New(0, 0), point.New(10, 0), point.New(0, 10), point.New(10, 10),
	})
	require.Equal(t, 4, h.Size())
	return h
}

func collectPairs(h *AngleHull) []ArcPair {
	var pairs []ArcPair
	for pair := range h.Pairs() {
		pairs = append(pairs, pair)
	}
	return pairs
}

func TestNew_RejectsBadApertures(t *testing.T) {
	h := squareHull(t)

	tests := map[string]angle.Angle{
		"zero":     angle.Zero(),
		"straight": angle.FromDegrees(180),
		"reflex":   angle.FromDegrees(225),
		"negative": angle.FromDegrees(-30),
	}

	for name, aperture := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(h, aperture)
			require.Error(t, err)

			var precondition convexhull.PreconditionError
			assert.True(t, errors.As(err, &precondition), "expected a PreconditionError, got %T", err)
		})
	}
}

func TestNew_RejectsSmallHulls(t *testing.T) {
	tests := map[string][]point.Point{
		"triangle": {
			point.New(0, 0), point.New(5, 5), point.New(10, 0),
		},
		"collinear collapses below four": {
			point.New(0, 0), point.New(1, 1), point.New(2, 2), point.New(3, 3),
		},
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(hull.New(input), angle.FromDegrees(90))
			require.Error(t, err)

			var precondition convexhull.PreconditionError
			assert.True(t, errors.As(err, &precondition), "expected a PreconditionError, got %T", err)
		})
	}
}

func TestAngleHull_SquareAtRightAngle(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(90))
	require.NoError(t, err)

	pairs := collectPairs(h)

	// one arc pair per hull-edge transition: each caterpillar crosses all
	// four edges of the square
	require.Len(t, pairs, 8)

	// at α=90° every uncut arc is a semicircle over its chord, β = 2(π-α) = π
	for i, pair := range pairs {
		assert.InDelta(t, math.Pi, pair.Uncut.Extent().Radians(), 1e-6,
			"uncut extent of pair %d", i)
	}

	// the four arcs over the square's edges survive cutting at full extent;
	// the four arcs over the diagonals are trimmed down to nothing
	var visible, vanished []ArcPair
	for _, pair := range pairs {
		if pair.Cut.Extent().Radians() > 1e-6 {
			visible = append(visible, pair)
		} else {
			vanished = append(vanished, pair)
		}
	}
	require.Len(t, visible, 4)
	require.Len(t, vanished, 4)

	for i, pair := range visible {
		assert.InDelta(t, 5, pair.Uncut.Radius(), 1e-9, "edge semicircle radius of pair %d", i)
		assert.InDelta(t, math.Pi, pair.Cut.Extent().Radians(), 1e-6,
			"edge semicircles must survive cutting whole")
	}
	for i, pair := range vanished {
		assert.InDelta(t, 5*math.Sqrt2, pair.Uncut.Radius(), 1e-9, "diagonal radius of pair %d", i)
		assert.InDelta(t, 0, pair.Cut.Extent().Radians(), 1e-6,
			"diagonal arcs must cut down to zero extent")
	}
}

func TestAngleHull_WalkCloses(t *testing.T) {
	inputs := map[string][]point.Point{
		"square": {
			point.New(0, 0), point.New(10, 0), point.New(0, 10), point.New(10, 10),
		},
		"wide quadrilateral": {
			point.New(0, 0), point.New(40, -3), point.New(55, 20), point.New(-10, 18),
		},
		"pentagon": {
			point.New(0, 0), point.New(20, -5), point.New(35, 10),
			point.New(18, 30), point.New(-5, 15),
		},
	}
	apertures := map[string]angle.Angle{
		"30 degrees":  angle.FromDegrees(30),
		"90 degrees":  angle.FromDegrees(90),
		"135 degrees": angle.FromDegrees(135),
	}

	for inputName, input := range inputs {
		for apertureName, aperture := range apertures {
			t.Run(inputName+" at "+apertureName, func(t *testing.T) {
				ch := hull.New(input)
				n := ch.Size()
				require.GreaterOrEqual(t, n, 4)

				h, err := New(ch, aperture)
				require.NoError(t, err)

				pairs := collectPairs(h)

				// closure: the walk terminates after at least one transition
				// per hull point, and every emitted arc is well-formed
				assert.GreaterOrEqual(t, len(pairs), n)
				for i, pair := range pairs {
					assert.Positive(t, pair.Uncut.Radius(), "pair %d radius", i)
					assert.InDelta(t,
						2*(math.Pi-aperture.Radians()),
						pair.Uncut.Extent().Radians(), 1e-6,
						"pair %d uncut extent must be 2(π-α)", i)
					assert.Equal(t, pair.Uncut.Center(), pair.Cut.Center(),
						"cutting must not move the center")
				}
			})
		}
	}
}

func TestAngleHull_SequencesAreRestartable(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(75))
	require.NoError(t, err)

	first := collectPairs(h)
	second := collectPairs(h)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Uncut.Eq(second[i].Uncut), "uncut arc %d must repeat", i)
		assert.True(t, first[i].Cut.Eq(second[i].Cut), "cut arc %d must repeat", i)
	}
}

func TestAngleHull_ArcsSelectsStrategy(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(60))
	require.NoError(t, err)

	pairs := collectPairs(h)

	var uncut []arc.Arc
	for a := range h.Arcs(Uncut) {
		uncut = append(uncut, a)
	}
	var cut []arc.Arc
	for a := range h.Arcs(Cut) {
		cut = append(cut, a)
	}

	require.Equal(t, len(pairs), len(uncut))
	require.Equal(t, len(pairs), len(cut))
	for i := range pairs {
		assert.True(t, pairs[i].Uncut.Eq(uncut[i]))
		assert.True(t, pairs[i].Cut.Eq(cut[i]))
	}
}

func TestAngleHull_EarlyBreakStopsTheWalk(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(90))
	require.NoError(t, err)

	count := 0
	for range h.Pairs() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestMap(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(90))
	require.NoError(t, err)

	var radii []float64
	for r := range Map(h, Uncut, func(a arc.Arc) float64 { return a.Radius() }) {
		radii = append(radii, r)
	}

	require.Len(t, radii, 8)
	for i, r := range radii {
		assert.Positive(t, r, "radius %d", i)
	}
}

func TestCuttingStrategy_String(t *testing.T) {
	assert.Equal(t, "Uncut", Uncut.String())
	assert.Equal(t, "Cut", Cut.String())
	assert.Panics(t, func() { _ = CuttingStrategy(99).String() })
}

func TestArcPair_Select(t *testing.T) {
	h, err := New(squareHull(t), angle.FromDegrees(90))
	require.NoError(t, err)

	for pair := range h.Pairs() {
		assert.True(t, pair.Uncut.Eq(pair.Select(Uncut)))
		assert.True(t, pair.Cut.Eq(pair.Select(Cut)))
		assert.Panics(t, func() { pair.Select(CuttingStrategy(99)) })
		break
	}
}
