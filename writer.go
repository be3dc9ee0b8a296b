package anygeom

import (
	"io"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// WriteFlatGeobuf encodes every shape of r as one FlatGeobuf feature with no
// properties. A nil opts writes an indexed EPSG:4326 layer.
func (r Result) WriteFlatGeobuf(w io.Writer, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions(WGS84Code)
	}

	geoms := r.Geometries()
	if len(geoms) == 0 {
		return ErrNoGeometry
	}
	for _, g := range geoms {
		if g == nil {
			return ErrNoGeometry
		}
		if fgbGeometryType(g) == flattypes.GeometryTypeUnknown {
			return ErrUnsupportedType
		}
	}

	builder := flatbuffers.NewBuilder(4096)

	header := writer.NewHeader(builder)
	header.SetGeometryType(layerGeometryType(geoms))
	if opts.Name != "" {
		header.SetName(opts.Name)
	}
	if opts.Description != "" {
		header.SetDescription(opts.Description)
	}

	if opts.CRS != nil {
		crs := writer.NewCrs(builder)
		crs.SetOrg("EPSG")
		if opts.CRS.Code > 0 {
			crs.SetCode(int32(opts.CRS.Code))
		}
		if opts.CRS.Name != "" {
			crs.SetName(opts.CRS.Name)
		}
		if opts.CRS.Description != "" {
			crs.SetDescription(opts.CRS.Description)
		}
		header.SetCrs(crs)
	}

	gen := &shapeFeatureGenerator{geometries: geoms}
	_, err := writer.NewWriter(header, opts.IncludeIndex, gen, nil).Write(w)
	return err
}

// shapeFeatureGenerator feeds generated geometries to the FlatGeobuf writer.
type shapeFeatureGenerator struct {
	geometries []orb.Geometry
	index      int
}

func (g *shapeFeatureGenerator) Generate() *writer.Feature {
	if g.index >= len(g.geometries) {
		return nil
	}

	geom := g.geometries[g.index]
	g.index++

	builder := flatbuffers.NewBuilder(1024)
	feature := writer.NewFeature(builder)
	feature.SetGeometry(geometryToFGB(geom, builder))
	return feature
}
