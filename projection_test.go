package anygeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupProjection(t *testing.T) {
	tests := []struct {
		code int
		ok   bool
	}{
		{4326, true},
		{3857, true},
		{32601, true},
		{32643, true},
		{32660, true},
		{32701, true},
		{32760, true},
		{27700, true},
		{2154, true},
		{999999, false},
		{-3857, false},
		{0, false},
	}

	for _, tt := range tests {
		p, err := LookupProjection(tt.code)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrUnsupportedCRS, "EPSG:%d", tt.code)
			continue
		}
		require.NoError(t, err, "EPSG:%d", tt.code)
		assert.Equal(t, tt.code, p.EPSG())
	}
}

func TestUTM_KnownValues(t *testing.T) {
	p, err := LookupProjection(32643)
	require.NoError(t, err)

	// Central meridian of zone 43 is 75E.
	x, y := p.FromWGS84(75, 0)
	assert.InDelta(t, 500000, x, 1e-3)
	assert.InDelta(t, 0, y, 1e-3)

	// Zone edges on the equator.
	x, _ = p.FromWGS84(78, 0)
	assert.InDelta(t, 833978.56, x, 0.05)
	x, _ = p.FromWGS84(72, 0)
	assert.InDelta(t, 166021.44, x, 0.05)

	south, err := LookupProjection(32743)
	require.NoError(t, err)
	_, y = south.FromWGS84(75, 0)
	assert.InDelta(t, 10000000, y, 1e-3)
}

func TestBritishNationalGrid(t *testing.T) {
	p, err := LookupProjection(27700)
	require.NoError(t, err)

	// Charing Cross sits near E 530000, N 180000.
	x, y := p.FromWGS84(-0.1276, 51.5072)
	assert.InDelta(t, 530000, x, 5000)
	assert.InDelta(t, 180000, y, 5000)

	lon, lat := p.ToWGS84(x, y)
	assert.InDelta(t, -0.1276, lon, 1e-5)
	assert.InDelta(t, 51.5072, lat, 1e-5)
}

func TestUTM_RoundTrip(t *testing.T) {
	points := []struct {
		code     int
		lon, lat float64
	}{
		{32643, 75, 20},
		{32643, 73.5, 60},
		{32631, 2.35, 48.85},
		{32618, -73.98, 40.75},
		{32756, 151.2, -33.87},
		{32723, -46.63, -23.55},
	}

	for _, pt := range points {
		p, err := LookupProjection(pt.code)
		require.NoError(t, err)

		x, y := p.FromWGS84(pt.lon, pt.lat)
		lon, lat := p.ToWGS84(x, y)
		assert.InDelta(t, pt.lon, lon, 1e-6, "EPSG:%d lon", pt.code)
		assert.InDelta(t, pt.lat, lat, 1e-6, "EPSG:%d lat", pt.code)
	}
}

func TestWebMercator_RoundTrip(t *testing.T) {
	x, y, err := Transform(-73.98, 40.75, 4326, 3857)
	require.NoError(t, err)

	lon, lat, err := Transform(x, y, 3857, 4326)
	require.NoError(t, err)
	assert.InDelta(t, -73.98, lon, 1e-6)
	assert.InDelta(t, 40.75, lat, 1e-6)
}

func TestTransform_BetweenProjected(t *testing.T) {
	x, y, err := Transform(500000, 0, 32643, 3857)
	require.NoError(t, err)

	want, _, err := Transform(75, 0, 4326, 3857)
	require.NoError(t, err)
	assert.InDelta(t, want, x, 1e-3)
	assert.InDelta(t, 0, y, 1e-3)
}

func TestTransform_Unsupported(t *testing.T) {
	_, _, err := Transform(0, 0, 4326, 999999)
	assert.ErrorIs(t, err, ErrUnsupportedCRS)

	_, _, err = Transform(0, 0, 999999, 4326)
	assert.ErrorIs(t, err, ErrUnsupportedCRS)
}

func TestProjectionArea(t *testing.T) {
	_, ok := wgs84Identity{}.Area()
	assert.False(t, ok)

	area, ok := webMercator{}.Area()
	assert.True(t, ok)
	clipped, ok := DefaultBBox(3857).intersect(area)
	assert.True(t, ok)
	assert.Equal(t, DefaultBBox(3857), clipped)

	tests := []struct {
		code int
		want BBox
	}{
		{32643, BBox{72, 0, 78, 84}},
		{32743, BBox{72, -80, 78, 0}},
		{32601, BBox{-180, 0, -174, 84}},
		{32760, BBox{174, -80, 180, 0}},
		{27700, BBox{-9, 49.75, 2.01, 61.01}},
	}
	for _, tt := range tests {
		p, err := LookupProjection(tt.code)
		require.NoError(t, err)
		area, ok := p.Area()
		assert.True(t, ok, "EPSG:%d", tt.code)
		assert.Equal(t, tt.want, area, "EPSG:%d", tt.code)
	}

	_, ok = areaOfUse(4258)
	assert.False(t, ok)
}
