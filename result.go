package anygeom

import (
	"encoding/json"
	"iter"
	"strings"

	"github.com/paulmach/orb"
)

// Result is what a generator returns: either a single Shape or an ordered
// list of them. Whether it is a list is fixed by the requested count, not
// by how many shapes it holds, so a list result is never flattened.
type Result struct {
	shapes []Shape
	many   bool
}

// Single wraps one geometry.
func Single(g orb.Geometry) Result {
	return Result{shapes: []Shape{{geom: g}}}
}

// Many wraps an ordered list of geometries.
func Many(geoms []orb.Geometry) Result {
	shapes := make([]Shape, len(geoms))
	for i, g := range geoms {
		shapes[i] = Shape{geom: g}
	}
	return Result{shapes: shapes, many: true}
}

func newResult(geoms []orb.Geometry) Result {
	if len(geoms) == 1 {
		return Single(geoms[0])
	}
	return Many(geoms)
}

// IsSingle reports whether the result holds a single geometry.
func (r Result) IsSingle() bool { return !r.many && len(r.shapes) == 1 }

// Single returns the geometry of a single result. ok is false for lists.
func (r Result) Single() (s Shape, ok bool) {
	if !r.IsSingle() {
		return Shape{}, false
	}
	return r.shapes[0], true
}

// Len is 1 for a single result and the list length otherwise.
func (r Result) Len() int { return len(r.shapes) }

// At returns the i-th shape. It panics when i is out of range.
func (r Result) At(i int) Shape { return r.shapes[i] }

// All iterates over the shapes in order.
func (r Result) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range r.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Geometries returns the wrapped geometries in order.
func (r Result) Geometries() []orb.Geometry {
	geoms := make([]orb.Geometry, len(r.shapes))
	for i, s := range r.shapes {
		geoms[i] = s.geom
	}
	return geoms
}

// GeoJSON returns a Feature for a single result and a []Feature for a
// list.
func (r Result) GeoJSON() any {
	if s, ok := r.Single(); ok {
		return s.Feature()
	}
	return r.features()
}

// FeatureCollection returns every shape as a feature of one collection.
func (r Result) FeatureCollection() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: r.features()}
}

func (r Result) features() []Feature {
	features := make([]Feature, len(r.shapes))
	for i, s := range r.shapes {
		features[i] = s.Feature()
	}
	return features
}

// MarshalJSON encodes a single result as one Feature and a list as an
// array of Features.
func (r Result) MarshalJSON() ([]byte, error) {
	if s, ok := r.Single(); ok {
		return json.Marshal(s)
	}
	if r.shapes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.shapes)
}

// String returns the WKT of a single result, or a bracketed list of WKT.
func (r Result) String() string {
	if s, ok := r.Single(); ok {
		return s.String()
	}

	parts := make([]string, len(r.shapes))
	for i, s := range r.shapes {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
