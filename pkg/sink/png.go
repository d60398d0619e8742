package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/svg"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// DefaultScale renders PNGs at twice the SVG resolution.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

func newPNGRenderer(opts ...PNGOption) pngRenderer {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPNG rasterizes a single shape.
func RenderPNG(s uml.Shape, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	doc, _ := BuildSVG(s, r.svgOptions()...)
	return r.rasterize(doc)
}

// RenderSheetPNG rasterizes a package sheet.
func RenderSheetPNG(s *catalog.Sheet, c *catalog.Catalog, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts...)
	doc, _, err := BuildSheetSVG(s, c, r.svgOptions()...)
	if err != nil {
		return nil, err
	}
	return r.rasterize(doc)
}

// svgOptions disables the embedded stylesheet; the rasterizer only reads
// presentation attributes, which are inlined from the theme instead.
func (r pngRenderer) svgOptions() []SVGOption {
	return append(append([]SVGOption{}, r.svgOpts...), WithoutStylesheet())
}

func (r pngRenderer) theme() Theme {
	return newSVGRenderer(r.svgOpts...).theme
}

type label struct {
	x, y  float64
	text  string
	props []Prop
}

func (r pngRenderer) rasterize(doc *svg.Document) ([]byte, error) {
	theme := r.theme()
	theme.Inline(doc.Root)
	labels := collectLabels(doc.Root, theme, 0, 0)
	stripText(doc.Root)

	minX, minY, vw, vh := viewBox(doc.Root)
	w := int(math.Ceil(vw * r.scale))
	h := int(math.Ceil(vh * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty drawing (%dx%d)", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc.Bytes()), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse svg")
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	for _, l := range labels {
		drawLabel(img, l, (l.x-minX)*r.scale, (l.y-minY)*r.scale, r.scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func viewBox(root *svg.Element) (x, y, w, h float64) {
	v, _ := root.Get("viewBox")
	f := strings.Fields(v)
	if len(f) != 4 {
		return 0, 0, root.Float("width"), root.Float("height")
	}
	vals := make([]float64, 4)
	for i, s := range f {
		vals[i], _ = strconv.ParseFloat(s, 64)
	}
	return vals[0], vals[1], vals[2], vals[3]
}

// collectLabels returns every text element with its absolute position,
// following translate() transforms on enclosing groups.
func collectLabels(e *svg.Element, theme Theme, dx, dy float64) []label {
	if t, ok := e.Get("transform"); ok {
		x, y := parseTranslate(t)
		dx, dy = dx+x, dy+y
	}
	if e.Name == "text" {
		return []label{{
			x:     dx + e.Float("x"),
			y:     dy + e.Float("y"),
			text:  e.Text,
			props: theme.Resolve(e),
		}}
	}
	var out []label
	for _, c := range e.Children {
		out = append(out, collectLabels(c, theme, dx, dy)...)
	}
	return out
}

func stripText(e *svg.Element) {
	kept := e.Children[:0]
	for _, c := range e.Children {
		if c.Name == "text" {
			continue
		}
		stripText(c)
		kept = append(kept, c)
	}
	e.Children = kept
}

func drawLabel(img draw.Image, l label, x, y, scale float64) {
	size, bold, anchor := 9.0, false, "start"
	fill := color.Color(color.Black)
	for _, p := range l.props {
		switch p.Name {
		case "font-size":
			if v, err := strconv.ParseFloat(strings.TrimSuffix(p.Value, "px"), 64); err == nil {
				size = v
			}
		case "font-weight":
			bold = p.Value == "bold"
		case "text-anchor":
			anchor = p.Value
		case "fill":
			if c, ok := parseHex(p.Value); ok {
				fill = c
			}
		}
	}

	face := loadFace(size*scale, bold)
	if face == nil {
		return
	}
	d := &font.Drawer{Dst: img, Src: image.NewUniform(fill), Face: face}
	switch anchor {
	case "middle":
		x -= float64(d.MeasureString(l.text).Round()) / 2
	case "end":
		x -= float64(d.MeasureString(l.text).Round())
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(l.text)
}

var (
	fontsOnce sync.Once
	regular   *opentype.Font
	boldFont  *opentype.Font

	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

type faceKey struct {
	size float64
	bold bool
}

func loadFace(size float64, bold bool) font.Face {
	fontsOnce.Do(func() {
		regular, _ = opentype.Parse(gomono.TTF)
		boldFont, _ = opentype.Parse(gomonobold.TTF)
	})

	facesMu.Lock()
	defer facesMu.Unlock()
	k := faceKey{size, bold}
	if f, ok := faces[k]; ok {
		return f
	}
	src := regular
	if bold {
		src = boldFont
	}
	if src == nil {
		return nil
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil
	}
	faces[k] = f
	return f
}

func parseHex(s string) (color.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
