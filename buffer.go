package anygeom

import (
	"math"

	"github.com/paulmach/orb"
)

// Buffer approximates the disc of the given radius around p as a polygon
// with quadSegs segments per quarter circle. The ring starts at
// (x+radius, y) and runs clockwise, as GEOS buffers do, and every vertex
// lies exactly radius away from p.
func Buffer(p orb.Point, radius float64, quadSegs int) orb.Polygon {
	if quadSegs < 1 {
		quadSegs = 1
	}

	n := 4 * quadSegs
	step := math.Pi / 2 / float64(quadSegs)

	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(-float64(i) * step)
		ring = append(ring, orb.Point{p[0] + radius*cos, p[1] + radius*sin})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}
