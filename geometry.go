package anygeom

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// fgbGeometryType maps an orb geometry to its FlatGeobuf type.
func fgbGeometryType(geom orb.Geometry) flattypes.GeometryType {
	switch geom.(type) {
	case orb.Point:
		return flattypes.GeometryTypePoint
	case orb.MultiPoint:
		return flattypes.GeometryTypeMultiPoint
	case orb.LineString:
		return flattypes.GeometryTypeLineString
	case orb.MultiLineString:
		return flattypes.GeometryTypeMultiLineString
	case orb.Polygon:
		return flattypes.GeometryTypePolygon
	case orb.MultiPolygon:
		return flattypes.GeometryTypeMultiPolygon
	default:
		return flattypes.GeometryTypeUnknown
	}
}

// layerGeometryType is the common type of geoms, or Unknown when they mix.
func layerGeometryType(geoms []orb.Geometry) flattypes.GeometryType {
	t := fgbGeometryType(geoms[0])
	for _, g := range geoms[1:] {
		if fgbGeometryType(g) != t {
			return flattypes.GeometryTypeUnknown
		}
	}
	return t
}

// geometryToFGB builds the FlatGeobuf geometry for geom, or nil when the
// type has no FlatGeobuf encoding here.
func geometryToFGB(geom orb.Geometry, builder *flatbuffers.Builder) *writer.Geometry {
	g := writer.NewGeometry(builder)

	switch v := geom.(type) {
	case orb.Point:
		g.SetType(flattypes.GeometryTypePoint)
		g.SetXY([]float64{v[0], v[1]})

	case orb.MultiPoint:
		g.SetType(flattypes.GeometryTypeMultiPoint)
		g.SetXY(flatXY(v))

	case orb.LineString:
		g.SetType(flattypes.GeometryTypeLineString)
		g.SetXY(flatXY(v))

	case orb.MultiLineString:
		g.SetType(flattypes.GeometryTypeMultiLineString)
		xy, ends := flatXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.Polygon:
		g.SetType(flattypes.GeometryTypePolygon)
		xy, ends := flatXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.MultiPolygon:
		g.SetType(flattypes.GeometryTypeMultiPolygon)
		parts := make([]writer.Geometry, 0, len(v))
		for _, poly := range v {
			pg := writer.NewGeometry(builder)
			pg.SetType(flattypes.GeometryTypePolygon)
			xy, ends := flatXYEnds(poly)
			pg.SetXY(xy)
			pg.SetEnds(ends)
			parts = append(parts, *pg)
		}
		g.SetParts(parts)

	default:
		return nil
	}

	return g
}

func flatXY[S ~[]orb.Point](pts S) []float64 {
	xy := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		xy = append(xy, p[0], p[1])
	}
	return xy
}

// flatXYEnds flattens parts (lines or rings) into one XY array plus the
// cumulative point count at the end of each part.
func flatXYEnds[S ~[]P, P ~[]orb.Point](parts S) ([]float64, []uint32) {
	var xy []float64
	ends := make([]uint32, 0, len(parts))
	for _, part := range parts {
		xy = append(xy, flatXY(part)...)
		ends = append(ends, uint32(len(xy)/2))
	}
	return xy, ends
}

// geometryFromFGB converts a decoded FlatGeobuf geometry back to orb.
func geometryFromFGB(g *flattypes.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g.Type() {
	case flattypes.GeometryTypePoint:
		if g.XyLength() < 2 {
			return nil
		}
		return orb.Point{g.Xy(0), g.Xy(1)}

	case flattypes.GeometryTypeMultiPoint:
		return orb.MultiPoint(pointsFromXY(g, 0, g.XyLength()/2))

	case flattypes.GeometryTypeLineString:
		return orb.LineString(pointsFromXY(g, 0, g.XyLength()/2))

	case flattypes.GeometryTypeMultiLineString:
		parts := partsFromEnds(g)
		mls := make(orb.MultiLineString, len(parts))
		for i, p := range parts {
			mls[i] = orb.LineString(p)
		}
		return mls

	case flattypes.GeometryTypePolygon:
		return polygonFromFGB(g)

	case flattypes.GeometryTypeMultiPolygon:
		mp := make(orb.MultiPolygon, 0, g.PartsLength())
		for i := 0; i < g.PartsLength(); i++ {
			var part flattypes.Geometry
			if g.Parts(&part, i) {
				mp = append(mp, polygonFromFGB(&part))
			}
		}
		return mp

	default:
		return nil
	}
}

func polygonFromFGB(g *flattypes.Geometry) orb.Polygon {
	parts := partsFromEnds(g)
	poly := make(orb.Polygon, len(parts))
	for i, p := range parts {
		poly[i] = orb.Ring(p)
	}
	return poly
}

// partsFromEnds splits the XY array at the ends offsets. Without ends the
// whole array is one part.
func partsFromEnds(g *flattypes.Geometry) [][]orb.Point {
	n := g.XyLength() / 2
	if g.EndsLength() == 0 {
		return [][]orb.Point{pointsFromXY(g, 0, n)}
	}

	parts := make([][]orb.Point, 0, g.EndsLength())
	start := 0
	for i := 0; i < g.EndsLength(); i++ {
		end := min(int(g.Ends(i)), n)
		parts = append(parts, pointsFromXY(g, start, end))
		start = end
	}
	return parts
}

func pointsFromXY(g *flattypes.Geometry, start, end int) []orb.Point {
	pts := make([]orb.Point, 0, end-start)
	for j := start; j < end; j++ {
		pts = append(pts, orb.Point{g.Xy(2 * j), g.Xy(2*j + 1)})
	}
	return pts
}
