package anygeom

import (
	"fmt"

	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/paulmach/orb"
)

// DecodeFlatGeobuf reads back a layer written by WriteFlatGeobuf. The layer
// must carry a spatial index: features are located through an index search
// over the header envelope.
func DecodeFlatGeobuf(data []byte) (*Header, []orb.Geometry, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	h := fgb.Header()
	if h == nil {
		return nil, nil, ErrInvalidData
	}
	header := decodeHeader(h)

	if header.FeaturesCount == 0 {
		return header, nil, nil
	}
	if !header.HasIndex || h.EnvelopeLength() < 4 {
		return header, nil, ErrNoIndex
	}

	env := header.Envelope
	features, err := fgb.Search(env[0], env[1], env[2], env[3])
	if err != nil {
		return header, nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	geoms := make([]orb.Geometry, 0, len(features))
	for _, f := range features {
		var g flattypes.Geometry
		if geom := geometryFromFGB(f.Geometry(&g)); geom != nil {
			geoms = append(geoms, geom)
		}
	}
	return header, geoms, nil
}

func decodeHeader(h *flattypes.Header) *Header {
	header := &Header{
		Name:          string(h.Name()),
		Description:   string(h.Description()),
		GeometryType:  flattypes.EnumNamesGeometryType[h.GeometryType()],
		FeaturesCount: h.FeaturesCount(),
		HasIndex:      h.IndexNodeSize() > 0,
	}

	if h.EnvelopeLength() >= 4 {
		header.Envelope = [4]float64{h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3)}
	}

	var crs flattypes.Crs
	if h.Crs(&crs) != nil {
		header.CRS = &CRS{
			Code:        int(crs.Code()),
			Name:        string(crs.Name()),
			Description: string(crs.Description()),
		}
	}

	return header
}
