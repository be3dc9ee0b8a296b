// Package anygeom generates random geometries for use as test fixtures.
// It produces orb.Geometry values (points, lines, polygons, circles and their
// multi variants) inside a bounding box expressed in a chosen EPSG coordinate
// reference system, and projects them to GeoJSON, WKT, WKB or FlatGeobuf.
//
// Polygon rings are built from a jittered point cloud around the bbox center
// and ordered by their (dx, dy) offset from that center, not by angle. The
// resulting ring is closed but is not guaranteed to be simple: generated
// polygons may self-intersect, and orb or other consumers may report them as
// invalid under OGC rules. The y offset of a vertex is positive only for
// angles strictly between π/2 and 3π/2, so a vertex at exactly a quarter
// turn is placed below the center.
package anygeom

import (
	"errors"
)

// Common errors returned by this package.
var (
	ErrInvalidCount       = errors.New("anygeom: invalid count")
	ErrInvalidVertexRange = errors.New("anygeom: invalid vertex range")
	ErrInvalidBBox        = errors.New("anygeom: invalid bbox")
	ErrInvalidRadius      = errors.New("anygeom: invalid radius")
	ErrUnsupportedCRS     = errors.New("anygeom: unsupported crs")
	ErrNoGeometry         = errors.New("anygeom: no geometry")
	ErrUnsupportedType    = errors.New("anygeom: unsupported geometry type")
	ErrInvalidData        = errors.New("anygeom: invalid data")
	ErrNoIndex            = errors.New("anygeom: file has no spatial index")
)

// WGS84Code is the EPSG code of the authoring CRS. Default bounding boxes are
// defined in it and reprojected into other targets.
const WGS84Code = 4326

// WebMercatorCode is the EPSG code of the spherical (pseudo) Mercator CRS.
const WebMercatorCode = 3857
