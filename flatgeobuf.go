package anygeom

import (
	"fmt"
)

// CRS describes the coordinate reference system stored in a FlatGeobuf header.
type CRS struct {
	Code        int    // EPSG code (e.g., 4326 for WGS84)
	Name        string // CRS name
	Description string // CRS description
}

// CRSFor returns the header CRS for an EPSG code this package can generate in.
func CRSFor(code int) *CRS {
	switch {
	case code == WGS84Code:
		return &CRS{Code: code, Name: "WGS 84"}
	case code == WebMercatorCode:
		return &CRS{Code: code, Name: "WGS 84 / Pseudo-Mercator"}
	case code > 32600 && code <= 32660:
		return &CRS{Code: code, Name: fmt.Sprintf("WGS 84 / UTM zone %dN", code-32600)}
	case code > 32700 && code <= 32760:
		return &CRS{Code: code, Name: fmt.Sprintf("WGS 84 / UTM zone %dS", code-32700)}
	default:
		return &CRS{Code: code}
	}
}

// Options configures FlatGeobuf encoding.
type Options struct {
	Name         string // Layer name
	Description  string // Layer description
	IncludeIndex bool   // Include spatial index (default: true)
	CRS          *CRS   // Coordinate reference system (optional)
}

// DefaultOptions returns options for an indexed layer in the given CRS.
func DefaultOptions(crs int) *Options {
	return &Options{
		Name:         "anygeom",
		IncludeIndex: true,
		CRS:          CRSFor(crs),
	}
}

// Header contains metadata about a FlatGeobuf layer.
type Header struct {
	Name          string     // Layer name
	Description   string     // Layer description
	GeometryType  string     // Geometry type ("Point", "Polygon", "Unknown", etc.)
	FeaturesCount uint64     // Number of features in the file
	Envelope      [4]float64 // Bounding box [minX, minY, maxX, maxY]
	CRS           *CRS       // Coordinate reference system
	HasIndex      bool       // Whether the file has a spatial index
}
