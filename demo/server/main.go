package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/tingold/anygeom/internal/fixture"
	"github.com/tingold/anygeom/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Addr    string `short:"a" long:"addr"    env:"LISTEN_ADDRESS"  description:"Address to listen on" default:"0.0.0.0"`
	Port    int    `short:"p" long:"port"    env:"LISTEN_PORT"     description:"Port to listen on"    default:"8080"`
	Presets string `short:"c" long:"presets" env:"ANYGEOM_PRESETS" description:"YAML preset file"`
	Seed    uint64 `short:"s" long:"seed"    env:"ANYGEOM_SEED"    description:"Seed for reproducible responses (0 draws random geometries)"`
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

	var presets *fixture.Presets
	if opts.Presets != "" {
		var err error
		presets, err = fixture.LoadPresets(opts.Presets)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Presets).Msg("Failed to load presets")
		}
	}

	srv := newServer(presets, opts.Seed)
	handler := RequestLogger(srv.routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("presets", len(presets.Names())).
		Bool("seeded", opts.Seed != 0).
		Msg("Fixture server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
