package anygeom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	center := orb.Point{3, -4}

	for _, quadSegs := range []int{1, 2, 4, 16} {
		poly := Buffer(center, 5, quadSegs)
		require.Len(t, poly, 1)

		ring := poly[0]
		require.Len(t, ring, 4*quadSegs+1)
		assert.True(t, ring.Closed())
		assert.Equal(t, orb.CW, ring.Orientation())

		assert.InDelta(t, 8, ring[0][0], 1e-12)
		assert.InDelta(t, -4, ring[0][1], 1e-12)

		for _, p := range ring {
			assert.InDelta(t, 5, planar.Distance(center, p), 1e-9)
		}

		b := poly.Bound()
		assert.InDelta(t, 10, b.Max[0]-b.Min[0], 1e-9)
		assert.InDelta(t, 10, b.Max[1]-b.Min[1], 1e-9)
	}
}

func TestBuffer_AreaConverges(t *testing.T) {
	poly := Buffer(orb.Point{0, 0}, 1, 64)
	assert.InDelta(t, math.Pi, planar.Area(poly), 1e-3)
}

func TestBuffer_MinimumSegments(t *testing.T) {
	poly := Buffer(orb.Point{0, 0}, 1, 0)
	assert.Len(t, poly[0], 5)
}
