package anygeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// BBox is an axis-aligned box [minX, minY, maxX, maxY] in some CRS.
// Values built by NewBBox or returned from this package always satisfy
// minX < maxX and minY < maxY.
type BBox [4]float64

// NewBBox validates vals and returns them as a BBox.
func NewBBox(vals ...float64) (BBox, error) {
	if len(vals) != 4 {
		return BBox{}, fmt.Errorf("%w: want 4 values [minx, miny, maxx, maxy], got %d", ErrInvalidBBox, len(vals))
	}

	b := BBox{vals[0], vals[1], vals[2], vals[3]}
	if err := b.Validate(); err != nil {
		return BBox{}, err
	}
	return b, nil
}

// DefaultBBox returns the box samples are drawn from when the caller gives
// none, expressed in EPSG:4326. Web Mercator cannot represent the poles so
// its default stops at 85 degrees of latitude.
func DefaultBBox(crs int) BBox {
	if crs == WebMercatorCode {
		return BBox{-180, -85, 180, 85}
	}
	return BBox{-180, -90, 180, 90}
}

// Validate checks the ordering of the box edges.
func (b BBox) Validate() error {
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %v", ErrInvalidBBox, b)
		}
	}
	if b[0] >= b[2] {
		return fmt.Errorf("%w: minx (%v) must be less than maxx (%v)", ErrInvalidBBox, b[0], b[2])
	}
	if b[1] >= b[3] {
		return fmt.Errorf("%w: miny (%v) must be less than maxy (%v)", ErrInvalidBBox, b[1], b[3])
	}
	return nil
}

// Width is the extent along x.
func (b BBox) Width() float64 { return b[2] - b[0] }

// Height is the extent along y.
func (b BBox) Height() float64 { return b[3] - b[1] }

// Center is the midpoint of the box.
func (b BBox) Center() orb.Point {
	return orb.Point{(b[0] + b[2]) / 2, (b[1] + b[3]) / 2}
}

// Contains reports whether p lies inside the box, edges included.
func (b BBox) Contains(p orb.Point) bool {
	return p[0] >= b[0] && p[0] <= b[2] && p[1] >= b[1] && p[1] <= b[3]
}

// Bound converts the box to an orb.Bound.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b[0], b[1]}, Max: orb.Point{b[2], b[3]}}
}

// Slice returns the box as the plain 4-number array GeoJSON uses.
func (b BBox) Slice() []float64 {
	return []float64{b[0], b[1], b[2], b[3]}
}

// intersect returns the overlap of two boxes and whether it is non-empty.
func (b BBox) intersect(o BBox) (BBox, bool) {
	r := BBox{
		math.Max(b[0], o[0]),
		math.Max(b[1], o[1]),
		math.Min(b[2], o[2]),
		math.Min(b[3], o[3]),
	}
	return r, r[0] < r[2] && r[1] < r[3]
}

// Reproject transforms the two corners of b from one CRS to another and
// rebuilds the box from them. Only the corners move, so under non-linear
// projections the result is an approximation of the true envelope: good
// enough to sample interior points, not an exact bound.
func Reproject(b BBox, from, to int) (BBox, error) {
	if from == to {
		return b, nil
	}

	x1, y1, err := Transform(b[0], b[1], from, to)
	if err != nil {
		return BBox{}, err
	}
	x2, y2, err := Transform(b[2], b[3], from, to)
	if err != nil {
		return BBox{}, err
	}

	out := BBox{math.Min(x1, x2), math.Min(y1, y2), math.Max(x1, x2), math.Max(y1, y2)}
	if err := out.Validate(); err != nil {
		return BBox{}, fmt.Errorf("reproject %v from EPSG:%d to EPSG:%d: %w", b, from, to, err)
	}
	return out, nil
}

// resolveBBox applies the bbox policy shared by every generator. A bbox
// given by the caller is taken to be in the target CRS already and is used
// as-is. Otherwise the 4326 default is clipped to the target projection's
// area of use and reprojected.
func resolveBBox(user []float64, crs int) (BBox, error) {
	if user != nil {
		b, err := NewBBox(user...)
		if err != nil {
			return BBox{}, err
		}
		if _, err := LookupProjection(crs); err != nil {
			return BBox{}, err
		}
		return b, nil
	}

	b := DefaultBBox(crs)
	if crs == WGS84Code {
		return b, nil
	}

	proj, err := LookupProjection(crs)
	if err != nil {
		return BBox{}, err
	}
	if area, ok := proj.Area(); ok {
		clipped, ok := b.intersect(area)
		if !ok {
			return BBox{}, fmt.Errorf("%w: default bbox outside the area of EPSG:%d", ErrInvalidBBox, crs)
		}
		b = clipped
	}

	return Reproject(b, WGS84Code, crs)
}
