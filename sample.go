package anygeom

import (
	"math/rand/v2"

	"github.com/paulmach/orb"
)

// Source is the randomness a Generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64

	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// globalSource forwards to the math/rand/v2 top-level functions, which are
// safe for concurrent use and seeded by the runtime.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// NewSeededSource returns a deterministic source for reproducible fixtures.
// It is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform draws from [lo, hi].
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// intBetween draws from [lo, hi], both inclusive.
func intBetween(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// samplePoint draws x and y independently and uniformly inside b.
func samplePoint(src Source, b BBox) orb.Point {
	return orb.Point{uniform(src, b[0], b[2]), uniform(src, b[1], b[3])}
}

// sampleLine draws a vertex count in [minVertex, maxVertex] and that many
// independent points.
func sampleLine(src Source, b BBox, minVertex, maxVertex int) orb.LineString {
	n := intBetween(src, minVertex, maxVertex)
	ls := make(orb.LineString, n)
	for i := range ls {
		ls[i] = samplePoint(src, b)
	}
	return ls
}
