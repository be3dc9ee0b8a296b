package fixture

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
	"gopkg.in/yaml.v3"

	"github.com/tingold/anygeom"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, f)

	for _, want := range Formats {
		f, err := ParseFormat(strings.ToUpper(string(want)))
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}

	_, err = ParseFormat("shp")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "application/geo+json", FormatGeoJSON.ContentType())
	assert.Equal(t, "application/geo+json", FormatCollection.ContentType())
	assert.Equal(t, "application/yaml", FormatYAML.ContentType())
	assert.Equal(t, "application/octet-stream", FormatFlatGeobuf.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatWKT.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", FormatPolyline.ContentType())
}

func polygons(t *testing.T, n int) anygeom.Result {
	t.Helper()
	r, err := anygeom.New(anygeom.WithSeed(7)).Polygon(
		anygeom.WithCount(n), anygeom.WithHole(true), anygeom.WithBBox(-10, 40, 10, 60))
	require.NoError(t, err)
	return r
}

func TestEncode_GeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, polygons(t, 1), FormatGeoJSON, anygeom.WGS84Code))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Feature", doc["type"])

	buf.Reset()
	require.NoError(t, Encode(&buf, polygons(t, 3), FormatGeoJSON, anygeom.WGS84Code))

	var list []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestEncode_Collection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, polygons(t, 1), FormatCollection, anygeom.WGS84Code))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])

	features := doc["features"].([]any)
	require.Len(t, features, 1)
	feature := features[0].(map[string]any)
	assert.Equal(t, "Feature", feature["type"])
	assert.Equal(t, map[string]any{}, feature["properties"])
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, polygons(t, 2), FormatYAML, anygeom.WGS84Code))

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, "Feature", doc["type"])
		geom := doc["geometry"].(map[string]any)
		assert.Equal(t, "Polygon", geom["type"])
		assert.Len(t, geom["coordinates"], 2)
	}
}

func TestEncode_WKT(t *testing.T) {
	r := polygons(t, 3)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, FormatWKT, anygeom.WGS84Code))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		g, err := wkt.Unmarshal(line)
		require.NoError(t, err)
		assert.True(t, orb.Equal(r.At(i).Geometry(), g))
	}
}

func TestEncode_FlatGeobuf(t *testing.T) {
	r, err := anygeom.New(anygeom.WithSeed(8)).Circle(
		anygeom.WithCount(4), anygeom.WithCRS(anygeom.WebMercatorCode))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, FormatFlatGeobuf, anygeom.WebMercatorCode))

	header, geoms, err := anygeom.DecodeFlatGeobuf(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, geoms, 4)
	assert.Equal(t, "Polygon", header.GeometryType)
	require.NotNil(t, header.CRS)
	assert.Equal(t, anygeom.WebMercatorCode, header.CRS.Code)
}

func TestEncode_Polyline(t *testing.T) {
	r := polygons(t, 2)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, FormatPolyline, anygeom.WGS84Code))

	var rings []orb.Ring
	for _, s := range r.All() {
		rings = append(rings, s.Geometry().(orb.Polygon)...)
	}

	scanner := bufio.NewScanner(&buf)
	i := 0
	for scanner.Scan() {
		require.Less(t, i, len(rings))

		coords, rest, err := polyline.DecodeCoords(scanner.Bytes())
		require.NoError(t, err)
		assert.Empty(t, rest)
		require.Len(t, coords, len(rings[i]))

		for j, c := range coords {
			assert.InDelta(t, rings[i][j].Lat(), c[0], 1e-5)
			assert.InDelta(t, rings[i][j].Lon(), c[1], 1e-5)
		}
		i++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, len(rings), i)
}

func TestEncode_PolylineNeedsWGS84(t *testing.T) {
	r, err := anygeom.Point(anygeom.WithCRS(anygeom.WebMercatorCode))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Encode(&buf, r, FormatPolyline, anygeom.WebMercatorCode)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, polygons(t, 1), Format("kml"), anygeom.WGS84Code)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPaths(t *testing.T) {
	assert.Len(t, paths(orb.Point{1, 2}), 1)
	assert.Len(t, paths(orb.MultiPoint{{1, 2}, {3, 4}}), 1)
	assert.Len(t, paths(orb.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}), 2)

	mp := orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, {{0.2, 0.2}, {0.5, 0.2}, {0.5, 0.5}, {0.2, 0.2}}},
		{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
	}
	assert.Len(t, paths(mp), 3)
	assert.Nil(t, paths(orb.Collection{}))
}

func TestLatLngs(t *testing.T) {
	assert.Equal(t, [][]float64{{2, 1}, {4, 3}}, latLngs([]orb.Point{{1, 2}, {3, 4}}))
}
