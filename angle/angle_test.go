package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngle_FromDegrees(t *testing.T) {
	tests := map[string]struct {
		degrees float64
		want    float64
	}{
		"zero":             {0, 0},
		"right angle":      {90, math.Pi / 2},
		"straight angle":   {180, math.Pi},
		"full turn":        {360, 2 * math.Pi},
		"negative":         {-90, -math.Pi / 2},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a := FromDegrees(tc.degrees)
			assert.InDelta(t, tc.want, a.Radians(), 1e-12)
			assert.InDelta(t, tc.degrees, a.Degrees(), 1e-9)
		})
	}
}

func TestAngle_Arithmetic(t *testing.T) {
	a := FromRadians(1.5)
	b := FromRadians(0.5)

	assert.InDelta(t, 2.0, a.Add(b).Radians(), 1e-12)
	assert.InDelta(t, 1.0, a.Sub(b).Radians(), 1e-12)
	assert.InDelta(t, 3.0, a.Double().Radians(), 1e-12)
	assert.Zero(t, Zero().Radians())
}

func TestAngle_NoNormalization(t *testing.T) {
	// magnitudes beyond 2π are preserved, not reduced
	a := FromRadians(3 * math.Pi)
	assert.InDelta(t, 3*math.Pi, a.Radians(), 1e-12)
	assert.InDelta(t, 6*math.Pi, a.Double().Radians(), 1e-12)
}

func TestAngle_Compare(t *testing.T) {
	tests := map[string]struct {
		a, b Angle
		want int
	}{
		"smaller":            {FromRadians(1), FromRadians(2), -1},
		"larger":             {FromRadians(2), FromRadians(1), 1},
		"equal":              {FromRadians(1.25), FromRadians(1.25), 0},
		"nan sorts below":    {FromRadians(math.NaN()), FromRadians(-1000), -1},
		"value above nan":    {FromRadians(0), FromRadians(math.NaN()), 1},
		"nan equals nan":     {FromRadians(math.NaN()), FromRadians(math.NaN()), 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
		})
	}
}

func TestAngle_InAperture(t *testing.T) {
	tests := map[string]struct {
		a    Angle
		want bool
	}{
		"zero is excluded":          {Zero(), false},
		"just inside lower bound":   {FromDegrees(0.001), true},
		"right angle":               {FromDegrees(90), true},
		"just inside upper bound":   {FromDegrees(179.999), true},
		"straight angle excluded":   {FromDegrees(180), false},
		"reflex excluded":           {FromDegrees(270), false},
		"negative excluded":         {FromDegrees(-10), false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.InAperture())
		})
	}
}
