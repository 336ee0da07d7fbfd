package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistances(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	assert.Equal(t, 25, a.DistSq(b))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.Equal(t, 4, a.Chebyshev(b))
	assert.Equal(t, b.Chebyshev(a), a.Chebyshev(b))
}

func TestLessIsRowMajor(t *testing.T) {
	assert.True(t, Pt(5, 0).Less(Pt(0, 1)))
	assert.True(t, Pt(0, 1).Less(Pt(1, 1)))
	assert.False(t, Pt(1, 1).Less(Pt(1, 1)))
}

func TestNeighbors8(t *testing.T) {
	n := Pt(3, 3).Neighbors8()
	assert.Equal(t, Pt(3, 2), n[0])
	assert.Equal(t, Pt(2, 2), n[7])

	seen := map[Point]bool{}
	for _, p := range n {
		assert.Equal(t, 1, p.Chebyshev(Pt(3, 3)))
		seen[p] = true
	}
	assert.Len(t, seen, 8)
}
