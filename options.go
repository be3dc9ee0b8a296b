package anygeom

// Option configures a single generator call.
type Option func(*config)

type config struct {
	count     int
	crs       int
	bbox      []float64
	minVertex int
	maxVertex int
	hole      bool
	radius    *float64
	numPoints int
}

// Defaults shared by the generators.
const (
	defaultLineMinVertex    = 2
	defaultLineMaxVertex    = 5
	defaultPolygonMinVertex = 3
	defaultPolygonMaxVertex = 8
	defaultCircleNumPoints  = 64
)

func newConfig(count, minVertex, maxVertex int, opts []Option) *config {
	c := &config{
		count:     count,
		crs:       WGS84Code,
		minVertex: minVertex,
		maxVertex: maxVertex,
		numPoints: defaultCircleNumPoints,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCount sets how many geometries (or members of a multi geometry) to
// generate.
func WithCount(n int) Option {
	return func(c *config) { c.count = n }
}

// WithCRS sets the EPSG code of the output coordinates. Default 4326.
func WithCRS(code int) Option {
	return func(c *config) { c.crs = code }
}

// WithBBox restricts sampling to [minx, miny, maxx, maxy], given in the
// output CRS. The box is validated when the generator runs.
func WithBBox(vals ...float64) Option {
	b := append([]float64{}, vals...)
	return func(c *config) { c.bbox = b }
}

// WithVertexRange sets the inclusive range vertex counts are drawn from.
// Used by line and polygon generators.
func WithVertexRange(minVertex, maxVertex int) Option {
	return func(c *config) {
		c.minVertex = minVertex
		c.maxVertex = maxVertex
	}
}

// WithMinVertex sets the lower end of the vertex range only.
func WithMinVertex(n int) Option {
	return func(c *config) { c.minVertex = n }
}

// WithMaxVertex sets the upper end of the vertex range only.
func WithMaxVertex(n int) Option {
	return func(c *config) { c.maxVertex = n }
}

// WithHole adds one interior ring to each generated polygon.
func WithHole(hole bool) Option {
	return func(c *config) { c.hole = hole }
}

// WithRadius fixes the circle radius in CRS units instead of drawing it
// from the bbox size.
func WithRadius(r float64) Option {
	return func(c *config) { c.radius = &r }
}

// WithNumPoints sets the number of segments used to approximate a circle.
func WithNumPoints(n int) Option {
	return func(c *config) { c.numPoints = n }
}
