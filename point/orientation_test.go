package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminant(t *testing.T) {
	tests := map[string]struct {
		a, b, c  Point
		wantSign int
	}{
		"unit left turn is positive": {
			// Determinant((0,0),(1,0),(0,1)) > 0
			a:        New(0, 0),
			b:        New(1, 0),
			c:        New(0, 1),
			wantSign: 1,
		},
		"unit right turn is negative": {
			a:        New(0, 0),
			b:        New(0, 1),
			c:        New(1, 0),
			wantSign: -1,
		},
		"collinear is zero": {
			a:        New(0, 0),
			b:        New(5, 5),
			c:        New(10, 10),
			wantSign: 0,
		},
		"collinear axis-aligned": {
			a:        New(-3, 7),
			b:        New(0, 7),
			c:        New(12, 7),
			wantSign: 0,
		},
		"large coordinates overflow 32-bit but not the widened math": {
			a:        New(-1000000000, -1000000000),
			b:        New(1000000000, -1000000000),
			c:        New(-1000000000, 1000000000),
			wantSign: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			det := Determinant(tc.a, tc.b, tc.c)
			switch tc.wantSign {
			case 1:
				assert.Positive(t, det)
			case -1:
				assert.Negative(t, det)
			default:
				assert.Zero(t, det)
			}
		})
	}
}

func TestDeterminant_Value(t *testing.T) {
	// (Cx-Ax)(Cy+Ay) + (Bx-Cx)(By+Cy) + (Ax-Bx)(Ay+By)
	// = (0-0)(1+0) + (1-0)(0+1) + (0-1)(0+0) = 1
	assert.Equal(t, int64(1), Determinant(New(0, 0), New(1, 0), New(0, 1)))
}

func TestOrientation(t *testing.T) {
	tests := map[string]struct {
		a, b, c Point
		want    OrientationType
	}{
		"counterclockwise": {New(0, 0), New(1, 0), New(0, 1), Counterclockwise},
		"clockwise":        {New(0, 0), New(0, 1), New(1, 0), Clockwise},
		"collinear":        {New(0, 0), New(1, 1), New(2, 2), Collinear},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Orientation(tc.a, tc.b, tc.c))
		})
	}
}

func TestOrientationType_String(t *testing.T) {
	assert.Equal(t, "Collinear", Collinear.String())
	assert.Equal(t, "Counterclockwise", Counterclockwise.String())
	assert.Equal(t, "Clockwise", Clockwise.String())
	assert.Panics(t, func() { _ = OrientationType(99).String() })
}
