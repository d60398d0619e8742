package sink

import (
	"fmt"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/svg"
)

// ClassMember marks the translated group holding one placed box.
const ClassMember = "member"

// RenderSheetSVG draws a package sheet: every placed member box, then the
// package symbol behind them.
func RenderSheetSVG(s *catalog.Sheet, c *catalog.Catalog, opts ...SVGOption) ([]byte, error) {
	doc, _, err := BuildSheetSVG(s, c, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}

// BuildSheetSVG is RenderSheetSVG without serialization.
func BuildSheetSVG(s *catalog.Sheet, c *catalog.Catalog, opts ...SVGOption) (*svg.Document, *svg.Element, error) {
	boxes, err := s.Resolve(c)
	if err != nil {
		return nil, nil, err
	}

	r := newSVGRenderer(opts...)
	id := r.id
	if id == "" {
		id = GroupID(s.Package.Kind(), s.Name())
	}

	w, h := s.Package.Size(r.cfg)
	for i, b := range boxes {
		bw, bh := b.Size(r.cfg)
		w = max(w, s.Members[i].X+bw)
		h = max(h, s.Members[i].Y+bh)
	}

	doc, g := r.document(id, w, h)
	for i, b := range boxes {
		m := s.Members[i]
		mg := svg.NewElement("g").
			Set("transform", translate(m.X, m.Y)).
			Set("class", ClassMember)
		b.Insert(mg, r.cfg)
		g.AppendChild(mg)
	}
	s.Package.Insert(g, r.cfg)
	return doc, g, nil
}

func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", svg.FormatFloat(x), svg.FormatFloat(y))
}

func parseTranslate(v string) (x, y float64) {
	if _, err := fmt.Sscanf(v, "translate(%g,%g)", &x, &y); err != nil {
		return 0, 0
	}
	return x, y
}
