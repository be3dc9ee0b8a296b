package main

import (
	"bufio"
	"os"

	"github.com/tingold/anygeom"
	"github.com/tingold/anygeom/internal/fixture"
	"github.com/tingold/anygeom/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Kind      string  `short:"k" long:"kind"       description:"Geometry kind" choice:"point" choice:"multipoint" choice:"linestring" choice:"multilinestring" choice:"polygon" choice:"multipolygon" choice:"circle" default:"point"`
	Count     int     `short:"n" long:"count"      description:"Number of geometries (or members of a multi geometry)"`
	CRS       int     `short:"c" long:"crs"        description:"EPSG code of the output coordinates" default:"4326"`
	BBox      string  `short:"b" long:"bbox"       description:"Sampling box minx,miny,maxx,maxy in the output CRS"`
	MinVertex int     `long:"min-vertex"           description:"Minimum vertices per line or polygon"`
	MaxVertex int     `long:"max-vertex"           description:"Maximum vertices per line or polygon"`
	Hole      bool    `long:"hole"                 description:"Add a hole to each polygon"`
	Radius    float64 `short:"r" long:"radius"     description:"Circle radius in CRS units"`
	NumPoints int     `long:"num-points"           description:"Segments per circle"`
	Seed      uint64  `short:"s" long:"seed"       env:"ANYGEOM_SEED" description:"Seed for reproducible output (0 draws a random seed)"`
	Format    string  `short:"f" long:"format"     description:"Output format" choice:"geojson" choice:"collection" choice:"yaml" choice:"wkt" choice:"fgb" choice:"polyline" default:"geojson"`
	Presets   string  `short:"p" long:"presets"    env:"ANYGEOM_PRESETS" description:"YAML preset file"`
	Preset    string  `short:"P" long:"preset"     description:"Name of a preset to generate instead of the flags above"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	spec, err := buildSpec(parser, &opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid request")
	}

	var gen *anygeom.Generator
	if opts.Seed != 0 {
		gen = anygeom.New(anygeom.WithSeed(opts.Seed))
	} else {
		gen = anygeom.New()
	}

	result, err := spec.Generate(gen)
	if err != nil {
		log.Fatal().Err(err).Str("kind", spec.Kind).Msg("Generation failed")
	}

	format, err := fixture.ParseFormat(opts.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid format")
	}

	out := bufio.NewWriter(os.Stdout)
	if err := fixture.Encode(out, result, format, spec.TargetCRS()); err != nil {
		log.Fatal().Err(err).Str("format", string(format)).Msg("Encoding failed")
	}
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}

	log.Debug().
		Str("kind", spec.Kind).
		Int("geometries", result.Len()).
		Int("crs", spec.TargetCRS()).
		Str("format", string(format)).
		Msg("Fixture generated")
}

// buildSpec turns the flags into a fixture spec. Flags the user did not set
// stay nil so the generator defaults apply.
func buildSpec(parser *flags.Parser, opts *Options) (fixture.Spec, error) {
	if opts.Preset != "" {
		presets, err := fixture.LoadPresets(opts.Presets)
		if err != nil {
			return fixture.Spec{}, err
		}
		return presets.Lookup(opts.Preset)
	}

	isSet := func(name string) bool {
		o := parser.FindOptionByLongName(name)
		return o != nil && o.IsSet()
	}

	spec := fixture.Spec{Kind: opts.Kind, Hole: opts.Hole}
	crs := opts.CRS
	spec.CRS = &crs

	if isSet("count") {
		spec.Count = &opts.Count
	}
	if isSet("min-vertex") {
		spec.MinVertex = &opts.MinVertex
	}
	if isSet("max-vertex") {
		spec.MaxVertex = &opts.MaxVertex
	}
	if isSet("radius") {
		spec.Radius = &opts.Radius
	}
	if isSet("num-points") {
		spec.NumPoints = &opts.NumPoints
	}
	if opts.BBox != "" {
		bbox, err := fixture.ParseBBox(opts.BBox)
		if err != nil {
			return fixture.Spec{}, err
		}
		spec.BBox = bbox
	}

	return spec, nil
}
