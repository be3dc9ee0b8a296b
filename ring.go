package anygeom

import (
	"cmp"
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// holeScale is the hole radius relative to the shell radius.
const holeScale = 0.4

// buildRing produces a closed ring of n jittered vertices around center.
//
// Vertex i sits in the quadrant picked by its angle 2*pi*i/n, at a distance
// along each axis of radius*uniform(0.7, 1)*(1 + 0.3*uniform(0, 1)). The
// vertices are then sorted by (x-cx, y-cy) ascending, which is not an
// angular order, so the ring may self-intersect.
func buildRing(src Source, center orb.Point, radius float64, n int) orb.Ring {
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)

		sx := -1.0
		if angle < math.Pi {
			sx = 1
		}
		sy := -1.0
		if angle > math.Pi/2 && angle < 3*math.Pi/2 {
			sy = 1
		}

		ring = append(ring, orb.Point{
			center[0] + sx*radius*jitter(src),
			center[1] + sy*radius*jitter(src),
		})
	}

	slices.SortStableFunc(ring, func(a, b orb.Point) int {
		if c := cmp.Compare(a[0]-center[0], b[0]-center[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1]-center[1], b[1]-center[1])
	})

	return append(ring, ring[0])
}

func jitter(src Source) float64 {
	return uniform(src, 0.7, 1.0) * (1 + 0.3*src.Float64())
}

// buildPolygon draws a vertex count and builds a shell centered in b, plus
// a single hole when requested.
func buildPolygon(src Source, b BBox, minVertex, maxVertex int, hole bool) orb.Polygon {
	n := intBetween(src, max(3, minVertex), maxVertex)
	center := b.Center()
	radius := math.Min(b.Width(), b.Height()) / 4

	poly := orb.Polygon{buildRing(src, center, radius, n)}
	if hole {
		poly = append(poly, buildRing(src, center, radius*holeScale, max(3, n/2)))
	}
	return poly
}
