package anygeom

import (
	"encoding/json"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Shape is one generated geometry together with the read-only operations
// fixtures usually need. It never modifies the wrapped geometry.
type Shape struct {
	geom orb.Geometry
}

// Geometry returns the underlying orb geometry.
func (s Shape) Geometry() orb.Geometry { return s.geom }

// Type returns the GeoJSON type name, e.g. "Polygon".
func (s Shape) Type() string { return s.geom.GeoJSONType() }

// Area is the planar area in squared CRS units. Zero for points and lines.
func (s Shape) Area() float64 { return planar.Area(s.geom) }

// Length is the planar length of lines, or the perimeter of polygons
// including holes.
func (s Shape) Length() float64 { return planar.Length(s.geom) }

// Bounds returns the envelope of the geometry.
func (s Shape) Bounds() orb.Bound { return s.geom.Bound() }

// Centroid returns the planar centroid.
func (s Shape) Centroid() orb.Point {
	c, _ := planar.CentroidArea(s.geom)
	return c
}

// IsValid reports structural validity: finite coordinates, lines with at
// least two points and rings closed with at least four. It does not test
// rings for self-intersection.
func (s Shape) IsValid() bool {
	return validGeometry(s.geom)
}

// WKT returns the geometry as Well-Known Text.
func (s Shape) WKT() string { return wkt.MarshalString(s.geom) }

// WKB returns the geometry as little-endian Well-Known Binary.
func (s Shape) WKB() ([]byte, error) { return wkb.Marshal(s.geom) }

// Feature is a GeoJSON Feature whose properties encode as an empty
// object, never null.
type Feature struct {
	Type       string             `json:"type"`
	Properties geojson.Properties `json:"properties"`
	Geometry   *geojson.Geometry  `json:"geometry"`
}

// FeatureCollection is a GeoJSON FeatureCollection of Features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature returns the geometry as a GeoJSON Feature with empty properties.
func (s Shape) Feature() Feature {
	return Feature{
		Type:       "Feature",
		Properties: geojson.Properties{},
		Geometry:   geojson.NewGeometry(s.geom),
	}
}

// MarshalJSON encodes the shape as its Feature.
func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Feature())
}

// String returns the WKT form.
func (s Shape) String() string { return s.WKT() }

func validGeometry(g orb.Geometry) bool {
	switch v := g.(type) {
	case orb.Point:
		return finite(v)
	case orb.MultiPoint:
		if len(v) == 0 {
			return false
		}
		for _, p := range v {
			if !finite(p) {
				return false
			}
		}
		return true
	case orb.LineString:
		return validPath(v, 2)
	case orb.MultiLineString:
		if len(v) == 0 {
			return false
		}
		for _, ls := range v {
			if !validPath(ls, 2) {
				return false
			}
		}
		return true
	case orb.Polygon:
		return validPolygon(v)
	case orb.MultiPolygon:
		if len(v) == 0 {
			return false
		}
		for _, p := range v {
			if !validPolygon(p) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func validPolygon(p orb.Polygon) bool {
	if len(p) == 0 {
		return false
	}
	for _, r := range p {
		if !validPath(r, 4) || !r.Closed() {
			return false
		}
	}
	return true
}

func validPath[S ~[]orb.Point](pts S, minLen int) bool {
	if len(pts) < minLen {
		return false
	}
	for _, p := range pts {
		if !finite(p) {
			return false
		}
	}
	return true
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}
