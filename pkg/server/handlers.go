package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/umlsvg/pkg/cache"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/observability"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// BoxSummary is one entry of GET /boxes.
type BoxSummary struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Attributes []string `json:"attributes,omitempty"`
	Methods    []string `json:"methods,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Height     float64  `json:"height"`
}

// SheetSummary is one entry of GET /sheets.
type SheetSummary struct {
	Name    string   `json:"name"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Members []string `json:"members"`
}

func (s *Server) handleListBoxes(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.config(r)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]BoxSummary, 0, s.catalog.Len())
	for _, b := range s.catalog.Boxes() {
		out = append(out, BoxSummary{
			Name:       b.Name(),
			Kind:       b.Kind().String(),
			Attributes: b.Attributes(),
			Methods:    b.Methods(),
			Notes:      b.Notes(),
			Height:     b.Height(cfg),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListSheets(w http.ResponseWriter, _ *http.Request) {
	out := make([]SheetSummary, 0)
	for _, sh := range s.catalog.Sheets() {
		members := make([]string, len(sh.Members))
		for i, m := range sh.Members {
			members[i] = m.Box
		}
		out = append(out, SheetSummary{
			Name:    sh.Name(),
			Width:   sh.Package.Width,
			Height:  sh.Package.Height,
			Members: members,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBox(w http.ResponseWriter, r *http.Request) {
	name, format, ok := splitFile(chi.URLParam(r, "file"))
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "missing format extension in %q", chi.URLParam(r, "file")))
		return
	}
	cfg, err := s.config(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if !sink.ValidFormats[format] {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format))
		return
	}
	b, err := s.catalog.Box(name)
	if err != nil {
		writeError(w, err)
		return
	}

	key := s.keyer.ArtifactKey(name, s.artifactOpts(b.Kind(), format, cfg))
	data, err := s.render(r.Context(), key, name, format, func() ([]byte, error) {
		return sink.Render(b, format, 0, sink.WithConfig(cfg), sink.WithMargin(s.margin))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, format, data)
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = sink.FormatSVG
	}
	cfg, err := s.config(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if !sink.ValidFormats[format] {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format))
		return
	}
	sh, err := s.catalog.Sheet(name)
	if err != nil {
		writeError(w, err)
		return
	}

	key := s.keyer.ArtifactKey(name, s.artifactOpts(uml.KindPackage, format, cfg))
	data, err := s.render(r.Context(), key, name, format, func() ([]byte, error) {
		return sink.RenderSheet(sh, s.catalog, format, 0, sink.WithConfig(cfg), sink.WithMargin(s.margin))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeArtifact(w, format, data)
}

func (s *Server) render(ctx context.Context, key, name, format string, fn func() ([]byte, error)) ([]byte, error) {
	data, _, err := cache.Fetch(ctx, s.cache, key, "artifact", s.ttl, func() ([]byte, error) {
		start := time.Now()
		observability.Render().OnRenderStart(ctx, name, format)
		data, err := fn()
		observability.Render().OnRenderComplete(ctx, name, format, len(data), time.Since(start), err)
		return data, err
	})
	return data, err
}

func (s *Server) artifactOpts(kind uml.Kind, format string, cfg uml.Config) cache.ArtifactKeyOpts {
	cfg = cfg.Resolved()
	return cache.ArtifactKeyOpts{
		Kind:       kind.String(),
		Format:     format,
		Attributes: cfg.DisplayAttributes,
		Methods:    cfg.DisplayMethods,
		Notes:      cfg.DisplayNotes,
		Padding:    cfg.Padding,
		TextHeight: cfg.TextHeight,
		Margin:     s.margin,
	}
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
