package sink

import (
	"github.com/google/uuid"

	"github.com/matzehuels/umlsvg/pkg/svg"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// DefaultMargin is the blank border around a rendered shape.
const DefaultMargin = 10.0

// ClassDiagram marks the top-level group every diagram is drawn into.
const ClassDiagram = "diagram"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cfg        uml.Config
	theme      Theme
	stylesheet bool
	css        string
	margin     float64
	id         string
}

// WithConfig sets the section toggles and metrics.
func WithConfig(cfg uml.Config) SVGOption { return func(r *svgRenderer) { r.cfg = cfg } }

// WithTheme replaces the embedded stylesheet's rules.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithStylesheet embeds css verbatim instead of the theme's rules.
func WithStylesheet(css string) SVGOption { return func(r *svgRenderer) { r.css = css } }

// WithoutStylesheet leaves styling to the embedding page.
func WithoutStylesheet() SVGOption { return func(r *svgRenderer) { r.stylesheet = false } }

// WithMargin sets the blank border around the drawing.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithID overrides the generated group id the stylesheet is scoped to.
func WithID(id string) SVGOption { return func(r *svgRenderer) { r.id = id } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		cfg:        uml.DefaultConfig(),
		theme:      DefaultTheme(),
		stylesheet: true,
		margin:     DefaultMargin,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// GroupID derives a stable element id from a shape's kind and name. The same
// shape always gets the same id, so output is reproducible.
func GroupID(kind uml.Kind, name string) string {
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind.String()+":"+name))
	return "uml-" + u.String()[:8]
}

// RenderSVG draws a single shape into a standalone SVG document.
func RenderSVG(s uml.Shape, opts ...SVGOption) []byte {
	doc, _ := BuildSVG(s, opts...)
	return doc.Bytes()
}

// BuildSVG is RenderSVG without serialization. It also returns the group the
// shape was drawn into.
func BuildSVG(s uml.Shape, opts ...SVGOption) (*svg.Document, *svg.Element) {
	r := newSVGRenderer(opts...)
	id := r.id
	if id == "" {
		id = GroupID(s.Kind(), s.Name())
	}

	w, h := s.Size(r.cfg)
	doc, g := r.document(id, w, h)
	s.Insert(g, r.cfg)
	return doc, g
}

func (r svgRenderer) document(id string, w, h float64) (*svg.Document, *svg.Element) {
	m := r.margin
	doc := svg.NewDocument(-m, -m, w+2*m, h+2*m)
	switch {
	case !r.stylesheet:
	case r.css != "":
		doc.AddStylesheet(r.css)
	default:
		doc.AddStylesheet(r.theme.CSS(id))
	}
	g := svg.NewElement("g").Set("id", id).Set("class", ClassDiagram)
	doc.Append(g)
	return doc, g
}
