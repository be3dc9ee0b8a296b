package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tingold/anygeom"
	"github.com/tingold/anygeom/internal/fixture"
)

type server struct {
	presets *fixture.Presets

	mu   sync.Mutex
	seed anygeom.Source // nil when responses are not reproducible
}

func newServer(presets *fixture.Presets, seed uint64) *server {
	s := &server{presets: presets}
	if seed != 0 {
		s.seed = anygeom.NewSeededSource(seed)
	}
	return s
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/kinds", s.handleKinds)
	mux.HandleFunc("GET /api/{kind}", s.handleGenerate)
	mux.HandleFunc("GET /presets", s.handlePresetList)
	mux.HandleFunc("GET /presets/{name}", s.handlePreset)
	return mux
}

// generator returns a generator for one request. A seeded server derives a
// per-request seed from its base source so responses follow a fixed
// sequence without sharing a non-thread-safe source between requests.
func (s *server) generator() *anygeom.Generator {
	if s.seed == nil {
		return anygeom.New()
	}

	s.mu.Lock()
	seed := uint64(s.seed.IntN(1<<62)) + 1
	s.mu.Unlock()

	return anygeom.New(anygeom.WithSeed(seed))
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) handleKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"kinds": fixture.Kinds, "formats": fixture.Formats})
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	spec, err := fixture.ParseQuery(r.PathValue("kind"), r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveSpec(w, r, spec)
}

func (s *server) handlePresetList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": s.presets.Names()})
}

func (s *server) handlePreset(w http.ResponseWriter, r *http.Request) {
	spec, err := s.presets.Lookup(r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveSpec(w, r, spec)
}

func (s *server) serveSpec(w http.ResponseWriter, r *http.Request, spec fixture.Spec) {
	format, err := fixture.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := spec.Generate(s.generator())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Encode fully before writing so a failure can still become an error status.
	var buf bytes.Buffer
	if err := fixture.Encode(&buf, result, format, spec.TargetCRS()); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Rejected request")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, fixture.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, anygeom.ErrInvalidCount),
		errors.Is(err, anygeom.ErrInvalidVertexRange),
		errors.Is(err, anygeom.ErrInvalidBBox),
		errors.Is(err, anygeom.ErrInvalidRadius),
		errors.Is(err, anygeom.ErrUnsupportedCRS),
		errors.Is(err, fixture.ErrUnknownKind),
		errors.Is(err, fixture.ErrUnknownFormat),
		errors.Is(err, fixture.ErrBadParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
