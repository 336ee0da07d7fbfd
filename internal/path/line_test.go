package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delve/internal/geom"
	"github.com/samdwyer/delve/internal/rng"
)

func TestTraceLineKnownLines(t *testing.T) {
	tests := []struct {
		name       string
		start, end geom.Point
		want       []geom.Point
	}{
		{"single cell", geom.Pt(3, 3), geom.Pt(3, 3), []geom.Point{{X: 3, Y: 3}}},
		{"horizontal", geom.Pt(0, 0), geom.Pt(3, 0), []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{"vertical up", geom.Pt(1, 3), geom.Pt(1, 0), []geom.Point{{X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		{"diagonal", geom.Pt(0, 0), geom.Pt(2, 2), []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"shallow", geom.Pt(0, 0), geom.Pt(4, 2), []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 2}}},
		{"steep", geom.Pt(0, 0), geom.Pt(1, 2), []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TraceLine(tt.start, tt.end))
		})
	}
}

func TestTraceLineEndpointLaw(t *testing.T) {
	src := rng.New(5509)

	for i := 0; i < 500; i++ {
		s := geom.Pt(src.IntRange(-20, 20), src.IntRange(-20, 20))
		e := geom.Pt(src.IntRange(-20, 20), src.IntRange(-20, 20))

		line := TraceLine(s, e)
		require.Equal(t, s, line[0])
		require.Equal(t, e, line[len(line)-1])
		require.Len(t, line, max(abs(e.X-s.X), abs(e.Y-s.Y))+1)

		for j := 1; j < len(line); j++ {
			require.Equal(t, 1, line[j].Chebyshev(line[j-1]), "line %v->%v has a gap at %d", s, e, j)
		}

		back := TraceLine(e, s)
		assert.ElementsMatch(t, line, back, "line %v->%v differs from its reverse", s, e)
	}
}

// A single wall directly between the origin and a cell two steps behind
// it must block that cell while cells to the side stay in sight.
func TestShadowCorner(t *testing.T) {
	wall := geom.Pt(1, 0)
	blocked := func(p geom.Point) bool {
		if p.X < 0 || p.Y < 0 || p.X >= 5 || p.Y >= 5 {
			return true
		}
		return p == wall
	}
	origin := geom.Pt(0, 0)

	assert.False(t, LineOfSight(origin, geom.Pt(2, 0), blocked))
	assert.False(t, LineOfSight(origin, geom.Pt(3, 0), blocked))
	assert.False(t, LineOfSight(origin, geom.Pt(4, 0), blocked))

	for _, p := range []geom.Point{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 4}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 4, Y: 4}} {
		assert.True(t, LineOfSight(origin, p, blocked), "lateral cell %v should be visible", p)
	}

	assert.True(t, LineOfSight(origin, wall, blocked), "the wall itself is seen")
	assert.True(t, LineOfSight(origin, origin, blocked))
}

func TestStepToward(t *testing.T) {
	next, ok := StepToward(geom.Pt(0, 0), geom.Pt(4, 2))
	require.True(t, ok)
	assert.Equal(t, geom.Pt(1, 0), next)

	_, ok = StepToward(geom.Pt(2, 2), geom.Pt(2, 2))
	assert.False(t, ok)
}
