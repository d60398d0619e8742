package sink

import (
	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// Render produces a shape in the given format. scale only applies to PNG;
// zero selects DefaultScale.
func Render(s uml.Shape, format string, scale float64, opts ...SVGOption) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(s, opts...), nil
	case FormatPNG:
		return RenderPNG(s, WithPNGSVGOptions(opts...), WithScale(scale))
	case FormatPDF:
		return RenderPDF(s, WithPDFSVGOptions(opts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// RenderSheet produces a package sheet in the given format.
func RenderSheet(sh *catalog.Sheet, c *catalog.Catalog, format string, scale float64, opts ...SVGOption) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSheetSVG(sh, c, opts...)
	case FormatPNG:
		return RenderSheetPNG(sh, c, WithPNGSVGOptions(opts...), WithScale(scale))
	case FormatPDF:
		return RenderSheetPDF(sh, c, WithPDFSVGOptions(opts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}
