package anygeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Generator draws random geometries from its Source. The zero value is not
// usable; build one with New.
type Generator struct {
	src Source
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSource makes the generator draw from src.
func WithSource(src Source) GeneratorOption {
	return func(g *Generator) { g.src = src }
}

// WithSeed makes the generator reproducible.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) { g.src = NewSeededSource(seed) }
}

// New returns a Generator. Without options it uses the runtime's global
// random generator and is safe for concurrent use.
func New(opts ...GeneratorOption) *Generator {
	g := &Generator{src: globalSource{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Point generates count random points. One point yields a single result,
// more yield a list.
func (g *Generator) Point(opts ...Option) (Result, error) {
	c := newConfig(1, 0, 0, opts)
	if c.count < 1 {
		return Result{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidCount, c.count)
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	geoms := make([]orb.Geometry, c.count)
	for i := range geoms {
		geoms[i] = samplePoint(g.src, bbox)
	}
	return newResult(geoms), nil
}

// MultiPoint generates one MultiPoint of count points.
func (g *Generator) MultiPoint(opts ...Option) (Result, error) {
	c := newConfig(2, 0, 0, opts)
	if c.count < 2 {
		return Result{}, fmt.Errorf("%w: count must be at least 2 for MultiPoint, got %d", ErrInvalidCount, c.count)
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	mp := make(orb.MultiPoint, c.count)
	for i := range mp {
		mp[i] = samplePoint(g.src, bbox)
	}
	return Single(mp), nil
}

// LineString generates count lines, each with a vertex count drawn from the
// vertex range (default 2 to 5).
func (g *Generator) LineString(opts ...Option) (Result, error) {
	c := newConfig(1, defaultLineMinVertex, defaultLineMaxVertex, opts)
	if err := checkVertexRange(c, 2, "LineString"); err != nil {
		return Result{}, err
	}
	if c.count < 1 {
		return Result{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidCount, c.count)
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	geoms := make([]orb.Geometry, c.count)
	for i := range geoms {
		geoms[i] = sampleLine(g.src, bbox, c.minVertex, c.maxVertex)
	}
	return newResult(geoms), nil
}

// MultiLineString generates one MultiLineString of count lines.
func (g *Generator) MultiLineString(opts ...Option) (Result, error) {
	c := newConfig(2, defaultLineMinVertex, defaultLineMaxVertex, opts)
	if c.count < 2 {
		return Result{}, fmt.Errorf("%w: count must be at least 2 for MultiLineString, got %d", ErrInvalidCount, c.count)
	}
	if err := checkVertexRange(c, 2, "LineString"); err != nil {
		return Result{}, err
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	mls := make(orb.MultiLineString, c.count)
	for i := range mls {
		mls[i] = sampleLine(g.src, bbox, c.minVertex, c.maxVertex)
	}
	return Single(mls), nil
}

// Polygon generates count polygons centered in the bbox, each with a vertex
// count drawn from the vertex range (default 3 to 8) and an optional hole.
// Rings are closed but may self-intersect.
func (g *Generator) Polygon(opts ...Option) (Result, error) {
	c := newConfig(1, defaultPolygonMinVertex, defaultPolygonMaxVertex, opts)
	if err := checkVertexRange(c, 3, "Polygon"); err != nil {
		return Result{}, err
	}
	if c.count < 1 {
		return Result{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidCount, c.count)
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	geoms := make([]orb.Geometry, c.count)
	for i := range geoms {
		geoms[i] = buildPolygon(g.src, bbox, c.minVertex, c.maxVertex, c.hole)
	}
	return newResult(geoms), nil
}

// MultiPolygon generates one MultiPolygon of count polygons sharing the
// same bbox.
func (g *Generator) MultiPolygon(opts ...Option) (Result, error) {
	c := newConfig(2, defaultPolygonMinVertex, defaultPolygonMaxVertex, opts)
	if c.count < 2 {
		return Result{}, fmt.Errorf("%w: count must be at least 2 for MultiPolygon, got %d", ErrInvalidCount, c.count)
	}
	if err := checkVertexRange(c, 3, "Polygon"); err != nil {
		return Result{}, err
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	mp := make(orb.MultiPolygon, c.count)
	for i := range mp {
		mp[i] = buildPolygon(g.src, bbox, c.minVertex, c.maxVertex, c.hole)
	}
	return Single(mp), nil
}

// Circle generates count circles approximated with numPoints segments
// (default 64). Without WithRadius each radius is
// min(width, height) * uniform(0.05, 0.15) of the bbox.
func (g *Generator) Circle(opts ...Option) (Result, error) {
	c := newConfig(1, 0, 0, opts)
	if c.count < 1 {
		return Result{}, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidCount, c.count)
	}
	if c.numPoints < 8 {
		return Result{}, fmt.Errorf("%w: num_points must be at least 8 for Circle, got %d", ErrInvalidVertexRange, c.numPoints)
	}
	if c.radius != nil && (*c.radius <= 0 || math.IsInf(*c.radius, 0) || math.IsNaN(*c.radius)) {
		return Result{}, fmt.Errorf("%w: radius must be a positive number, got %v", ErrInvalidRadius, *c.radius)
	}

	bbox, err := resolveBBox(c.bbox, c.crs)
	if err != nil {
		return Result{}, err
	}

	geoms := make([]orb.Geometry, c.count)
	for i := range geoms {
		center := samplePoint(g.src, bbox)

		var r float64
		if c.radius != nil {
			r = *c.radius
		} else {
			r = math.Min(bbox.Width(), bbox.Height()) * uniform(g.src, 0.05, 0.15)
		}

		geoms[i] = Buffer(center, r, c.numPoints/4)
	}
	return newResult(geoms), nil
}

func checkVertexRange(c *config, floor int, kind string) error {
	if c.minVertex > c.maxVertex {
		return fmt.Errorf("%w: min_vertex (%d) cannot be greater than max_vertex (%d)",
			ErrInvalidVertexRange, c.minVertex, c.maxVertex)
	}
	if c.minVertex < floor {
		return fmt.Errorf("%w: min_vertex must be at least %d for %s, got %d",
			ErrInvalidVertexRange, floor, kind, c.minVertex)
	}
	return nil
}

// Point generates random points with the default generator.
func Point(opts ...Option) (Result, error) { return defaultGenerator.Point(opts...) }

// MultiPoint generates a random MultiPoint with the default generator.
func MultiPoint(opts ...Option) (Result, error) { return defaultGenerator.MultiPoint(opts...) }

// LineString generates random lines with the default generator.
func LineString(opts ...Option) (Result, error) { return defaultGenerator.LineString(opts...) }

// MultiLineString generates a random MultiLineString with the default generator.
func MultiLineString(opts ...Option) (Result, error) {
	return defaultGenerator.MultiLineString(opts...)
}

// Polygon generates random polygons with the default generator.
func Polygon(opts ...Option) (Result, error) { return defaultGenerator.Polygon(opts...) }

// MultiPolygon generates a random MultiPolygon with the default generator.
func MultiPolygon(opts ...Option) (Result, error) { return defaultGenerator.MultiPolygon(opts...) }

// Circle generates random circles with the default generator.
func Circle(opts ...Option) (Result, error) { return defaultGenerator.Circle(opts...) }
