package anygeom

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/wroge/wgs84"
)

// Projection converts between a CRS and WGS84 longitude/latitude in degrees.
type Projection interface {
	// EPSG returns the EPSG code of the CRS.
	EPSG() int

	// ToWGS84 converts CRS coordinates to longitude/latitude.
	ToWGS84(x, y float64) (lon, lat float64)

	// FromWGS84 converts longitude/latitude to CRS coordinates.
	FromWGS84(lon, lat float64) (x, y float64)

	// Area returns the WGS84 box the projection is usable in, if it is
	// narrower than the whole globe.
	Area() (BBox, bool)
}

// epsg is the registry every code other than 4326 and 3857 resolves in.
var epsg = wgs84.EPSG()

// LookupProjection returns the projection registered for an EPSG code.
// 4326 and 3857 are built in; any other code is looked up in the wgs84
// EPSG repository (UTM zones, national grids such as 27700 or 2154, ...).
func LookupProjection(code int) (Projection, error) {
	switch code {
	case WGS84Code:
		return wgs84Identity{}, nil
	case WebMercatorCode:
		return webMercator{}, nil
	}

	if epsg.Code(code) == nil {
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnsupportedCRS, code)
	}
	return epsgProjection{
		code: code,
		to:   epsg.Transform(code, WGS84Code),
		from: epsg.Transform(WGS84Code, code),
	}, nil
}

// Transform moves a coordinate from one CRS to another through WGS84.
func Transform(x, y float64, from, to int) (float64, float64, error) {
	src, err := LookupProjection(from)
	if err != nil {
		return 0, 0, err
	}
	dst, err := LookupProjection(to)
	if err != nil {
		return 0, 0, err
	}

	lon, lat := src.ToWGS84(x, y)
	tx, ty := dst.FromWGS84(lon, lat)
	return tx, ty, nil
}

type wgs84Identity struct{}

func (wgs84Identity) EPSG() int { return WGS84Code }

func (wgs84Identity) ToWGS84(x, y float64) (float64, float64) { return x, y }

func (wgs84Identity) FromWGS84(lon, lat float64) (float64, float64) { return lon, lat }

func (wgs84Identity) Area() (BBox, bool) { return BBox{}, false }

// webMercator delegates to orb's spherical Mercator projection.
type webMercator struct{}

// webMercatorMaxLat is the latitude at which the projected square ends.
const webMercatorMaxLat = 85.05112878

func (webMercator) EPSG() int { return WebMercatorCode }

func (webMercator) ToWGS84(x, y float64) (float64, float64) {
	p := project.Mercator.ToWGS84(orb.Point{x, y})
	return p[0], p[1]
}

func (webMercator) FromWGS84(lon, lat float64) (float64, float64) {
	p := project.WGS84.ToMercator(orb.Point{lon, lat})
	return p[0], p[1]
}

func (webMercator) Area() (BBox, bool) {
	return BBox{-180, -webMercatorMaxLat, 180, webMercatorMaxLat}, true
}

// epsgProjection runs the wgs84 transforms between code and EPSG:4326,
// which the repository keeps in longitude/latitude order.
type epsgProjection struct {
	code     int
	to, from wgs84.Func
}

func (p epsgProjection) EPSG() int { return p.code }

func (p epsgProjection) ToWGS84(x, y float64) (float64, float64) {
	lon, lat, _ := p.to(x, y, 0)
	return lon, lat
}

func (p epsgProjection) FromWGS84(lon, lat float64) (float64, float64) {
	x, y, _ := p.from(lon, lat, 0)
	return x, y
}

func (p epsgProjection) Area() (BBox, bool) {
	return areaOfUse(p.code)
}

// Areas of use for the national grids that commonly show up in fixtures.
var areas = map[int]BBox{
	2154:  {-9.86, 41.15, 10.38, 51.56},
	3035:  {-35.58, 24.6, 44.83, 84.73},
	27700: {-9, 49.75, 2.01, 61.01},
}

// areaOfUse returns the WGS84 box a code is defined for. WGS84 UTM zones
// cover their six degree strip between 80S and 84N.
func areaOfUse(code int) (BBox, bool) {
	var zone int
	var south bool
	switch {
	case code > 32600 && code <= 32660:
		zone = code - 32600
	case code > 32700 && code <= 32760:
		zone, south = code-32700, true
	default:
		a, ok := areas[code]
		return a, ok
	}

	west := float64(6*zone - 186)
	if south {
		return BBox{west, -80, west + 6, 0}, true
	}
	return BBox{west, 0, west + 6, 84}, true
}
