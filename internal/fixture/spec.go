// Package fixture describes generator requests declaratively, so the CLI,
// the HTTP server and preset files share one way to ask for geometries and
// one set of output encodings.
package fixture

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tingold/anygeom"
)

var (
	ErrUnknownKind   = errors.New("fixture: unknown geometry kind")
	ErrUnknownFormat = errors.New("fixture: unknown output format")
	ErrUnknownPreset = errors.New("fixture: unknown preset")
	ErrBadParam      = errors.New("fixture: bad parameter")
)

// Geometry kinds accepted in Spec.Kind.
const (
	KindPoint           = "point"
	KindMultiPoint      = "multipoint"
	KindLineString      = "linestring"
	KindMultiLineString = "multilinestring"
	KindPolygon         = "polygon"
	KindMultiPolygon    = "multipolygon"
	KindCircle          = "circle"
)

// Kinds lists every supported kind.
var Kinds = []string{
	KindPoint, KindMultiPoint, KindLineString, KindMultiLineString,
	KindPolygon, KindMultiPolygon, KindCircle,
}

// Upper bounds on the size parameters ParseQuery accepts, so one request
// cannot ask for an arbitrarily large allocation.
const (
	MaxCount     = 10000
	MaxVertices  = 1000
	MaxNumPoints = 1024
)

// Spec is one generator request. Nil fields keep the generator defaults.
type Spec struct {
	Kind      string    `yaml:"kind"                 json:"kind"`
	Count     *int      `yaml:"count,omitempty"      json:"count,omitempty"`
	CRS       *int      `yaml:"crs,omitempty"        json:"crs,omitempty"`
	BBox      []float64 `yaml:"bbox,omitempty"       json:"bbox,omitempty"`
	MinVertex *int      `yaml:"min_vertex,omitempty" json:"min_vertex,omitempty"`
	MaxVertex *int      `yaml:"max_vertex,omitempty" json:"max_vertex,omitempty"`
	Hole      bool      `yaml:"hole,omitempty"       json:"hole,omitempty"`
	Radius    *float64  `yaml:"radius,omitempty"     json:"radius,omitempty"`
	NumPoints *int      `yaml:"num_points,omitempty" json:"num_points,omitempty"`
}

// TargetCRS is the EPSG code the spec generates in.
func (s Spec) TargetCRS() int {
	if s.CRS != nil {
		return *s.CRS
	}
	return anygeom.WGS84Code
}

// Options converts the spec to generator options.
func (s Spec) Options() []anygeom.Option {
	var opts []anygeom.Option
	if s.Count != nil {
		opts = append(opts, anygeom.WithCount(*s.Count))
	}
	if s.CRS != nil {
		opts = append(opts, anygeom.WithCRS(*s.CRS))
	}
	if s.BBox != nil {
		opts = append(opts, anygeom.WithBBox(s.BBox...))
	}
	if s.MinVertex != nil {
		opts = append(opts, anygeom.WithMinVertex(*s.MinVertex))
	}
	if s.MaxVertex != nil {
		opts = append(opts, anygeom.WithMaxVertex(*s.MaxVertex))
	}
	if s.Hole {
		opts = append(opts, anygeom.WithHole(true))
	}
	if s.Radius != nil {
		opts = append(opts, anygeom.WithRadius(*s.Radius))
	}
	if s.NumPoints != nil {
		opts = append(opts, anygeom.WithNumPoints(*s.NumPoints))
	}
	return opts
}

// Generate runs the generator matching s.Kind.
func (s Spec) Generate(g *anygeom.Generator) (anygeom.Result, error) {
	opts := s.Options()

	switch strings.ToLower(s.Kind) {
	case KindPoint:
		return g.Point(opts...)
	case KindMultiPoint:
		return g.MultiPoint(opts...)
	case KindLineString:
		return g.LineString(opts...)
	case KindMultiLineString:
		return g.MultiLineString(opts...)
	case KindPolygon:
		return g.Polygon(opts...)
	case KindMultiPolygon:
		return g.MultiPolygon(opts...)
	case KindCircle:
		return g.Circle(opts...)
	default:
		return anygeom.Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
}

// ParseQuery builds a spec for kind from URL query parameters named like the
// YAML fields (count, crs, bbox=minx,miny,maxx,maxy, min_vertex, ...).
func ParseQuery(kind string, q url.Values) (Spec, error) {
	s := Spec{Kind: strings.ToLower(kind)}

	var err error
	if s.Count, err = boundedIntParam(q, "count", MaxCount); err != nil {
		return Spec{}, err
	}
	if s.CRS, err = intParam(q, "crs"); err != nil {
		return Spec{}, err
	}
	if s.MinVertex, err = boundedIntParam(q, "min_vertex", MaxVertices); err != nil {
		return Spec{}, err
	}
	if s.MaxVertex, err = boundedIntParam(q, "max_vertex", MaxVertices); err != nil {
		return Spec{}, err
	}
	if s.NumPoints, err = boundedIntParam(q, "num_points", MaxNumPoints); err != nil {
		return Spec{}, err
	}

	if v := q.Get("radius"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: radius must be a number, got %q", ErrBadParam, v)
		}
		s.Radius = &r
	}

	if v := q.Get("hole"); v != "" {
		hole, err := strconv.ParseBool(v)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: hole must be a boolean, got %q", ErrBadParam, v)
		}
		s.Hole = hole
	}

	if v := q.Get("bbox"); v != "" {
		if s.BBox, err = ParseBBox(v); err != nil {
			return Spec{}, err
		}
	}

	return s, nil
}

// ParseBBox parses a comma separated list of numbers. Arity is checked by
// the generator, so a wrong count still reports anygeom.ErrInvalidBBox.
func ParseBBox(v string) ([]float64, error) {
	fields := strings.Split(v, ",")
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bbox value %q is not a number", ErrBadParam, f)
		}
		vals = append(vals, n)
	}
	return vals, nil
}

func intParam(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrBadParam, name, v)
	}
	return &n, nil
}

func boundedIntParam(q url.Values, name string, limit int) (*int, error) {
	n, err := intParam(q, name)
	if err != nil || n == nil {
		return n, err
	}
	if *n > limit {
		return nil, fmt.Errorf("%w: %s must be at most %d, got %d", ErrBadParam, name, limit, *n)
	}
	return n, nil
}
