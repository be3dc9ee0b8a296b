package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
	"gopkg.in/yaml.v3"

	"github.com/tingold/anygeom"
)

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatGeoJSON    Format = "geojson"    // Feature, or array of Features
	FormatCollection Format = "collection" // FeatureCollection
	FormatYAML       Format = "yaml"       // the GeoJSON projection as YAML
	FormatWKT        Format = "wkt"        // one WKT per line
	FormatFlatGeobuf Format = "fgb"        // indexed FlatGeobuf layer
	FormatPolyline   Format = "polyline"   // encoded polyline per line or ring, lat/lng order
)

// Formats lists every supported format.
var Formats = []Format{
	FormatGeoJSON, FormatCollection, FormatYAML, FormatWKT, FormatFlatGeobuf, FormatPolyline,
}

// ParseFormat validates a format name. Empty means GeoJSON.
func ParseFormat(v string) (Format, error) {
	if v == "" {
		return FormatGeoJSON, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(v, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, v)
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatGeoJSON, FormatCollection:
		return "application/geo+json"
	case FormatYAML:
		return "application/yaml"
	case FormatFlatGeobuf:
		return "application/octet-stream"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Encode writes r to w. crs is the EPSG code r was generated in; it is
// recorded in FlatGeobuf headers and must be 4326 for polylines.
func Encode(w io.Writer, r anygeom.Result, format Format, crs int) error {
	switch format {
	case FormatGeoJSON:
		return writeJSON(w, r)

	case FormatCollection:
		return writeJSON(w, r.FeatureCollection())

	case FormatYAML:
		// Round trip through JSON so YAML sees plain maps and arrays.
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()

	case FormatWKT:
		for _, s := range r.All() {
			if _, err := fmt.Fprintln(w, s.WKT()); err != nil {
				return err
			}
		}
		return nil

	case FormatFlatGeobuf:
		return r.WriteFlatGeobuf(w, anygeom.DefaultOptions(crs))

	case FormatPolyline:
		if crs != anygeom.WGS84Code {
			return fmt.Errorf("%w: polyline needs EPSG:4326 coordinates, got EPSG:%d", ErrUnknownFormat, crs)
		}
		for _, s := range r.All() {
			for _, path := range paths(s.Geometry()) {
				if _, err := fmt.Fprintf(w, "%s\n", polyline.EncodeCoords(latLngs(path))); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// paths splits a geometry into the point sequences a polyline can carry.
func paths(g orb.Geometry) [][]orb.Point {
	switch v := g.(type) {
	case orb.Point:
		return [][]orb.Point{{v}}
	case orb.MultiPoint:
		return [][]orb.Point{v}
	case orb.LineString:
		return [][]orb.Point{v}
	case orb.MultiLineString:
		out := make([][]orb.Point, 0, len(v))
		for _, ls := range v {
			out = append(out, ls)
		}
		return out
	case orb.Polygon:
		out := make([][]orb.Point, 0, len(v))
		for _, r := range v {
			out = append(out, r)
		}
		return out
	case orb.MultiPolygon:
		var out [][]orb.Point
		for _, p := range v {
			out = append(out, paths(p)...)
		}
		return out
	default:
		return nil
	}
}

func latLngs(pts []orb.Point) [][]float64 {
	coords := make([][]float64, len(pts))
	for i, p := range pts {
		coords[i] = []float64{p.Lat(), p.Lon()}
	}
	return coords
}
