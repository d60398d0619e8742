// Package server serves rendered catalog diagrams over HTTP.
//
// Routes:
//
//	GET /healthz                  build info
//	GET /boxes                    JSON list of boxes
//	GET /boxes/{name}.{format}    one box as svg, png or pdf; the format is
//	                              everything after the last dot
//	GET /sheets                   JSON list of package sheets
//	GET /sheets/{name}?format=    one sheet, svg by default
//
// Box and sheet renderings accept attributes, methods and notes query
// parameters that override the configured section toggles. Rendered bytes go
// through a [cache.Cache] under keys scoped to the catalog's content, so an
// edited catalog never reuses renderings of its previous version.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/umlsvg/pkg/buildinfo"
	"github.com/matzehuels/umlsvg/pkg/cache"
	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/observability"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// DefaultCacheTTL bounds how long a rendering is reused.
const DefaultCacheTTL = time.Hour

// Server renders boxes and sheets from one catalog.
type Server struct {
	catalog *catalog.Catalog
	cfg     uml.Config
	margin  float64
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	logger  *log.Logger
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithConfig sets the default section toggles and metrics.
func WithConfig(cfg uml.Config) Option { return func(s *Server) { s.cfg = cfg } }

// WithMargin sets the blank border around each rendering.
func WithMargin(m float64) Option { return func(s *Server) { s.margin = m } }

// WithCache stores renderings in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) { s.cache, s.ttl = c, ttl }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// New builds a server for c.
func New(c *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: c,
		cfg:     uml.DefaultConfig(),
		margin:  sink.DefaultMargin,
		cache:   cache.NewNullCache(),
		ttl:     DefaultCacheTTL,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.keyer = cache.NewScopedKeyer(nil, fingerprint(c)+":")
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/boxes", func(r chi.Router) {
		r.Get("/", s.handleListBoxes)
		r.Get("/{file}", s.handleBox)
	})
	r.Route("/sheets", func(r chi.Router) {
		r.Get("/", s.handleListSheets)
		r.Get("/{name}", s.handleSheet)
	})
	return r
}

// fingerprint identifies a catalog by its encoded content.
func fingerprint(c *catalog.Catalog) string {
	var buf bytes.Buffer
	if err := catalog.Encode(&buf, c); err != nil {
		return cache.Hash([]byte(c.Name))[:16]
	}
	return cache.Hash(buf.Bytes())[:16]
}

// splitFile splits "name.format" at the last dot. Box names may contain
// dots themselves.
func splitFile(file string) (name, format string, ok bool) {
	i := strings.LastIndexByte(file, '.')
	if i <= 0 || i == len(file)-1 {
		return "", "", false
	}
	return file[:i], file[i+1:], true
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr, "catalog", s.catalog.Name, "boxes", s.catalog.Len())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

// config applies query overrides to the server defaults.
func (s *Server) config(r *http.Request) (uml.Config, error) {
	cfg := s.cfg
	q := r.URL.Query()
	for _, t := range []struct {
		name string
		dst  *bool
	}{
		{"attributes", &cfg.DisplayAttributes},
		{"methods", &cfg.DisplayMethods},
		{"notes", &cfg.DisplayNotes},
	} {
		v := q.Get(t.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", t.name, v)
		}
		*t.dst = b
	}
	return cfg, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrCodeInvalidInput), errors.Is(err, errors.ErrCodeInvalidFormat):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
