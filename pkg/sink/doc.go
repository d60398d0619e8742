// Package sink turns boxes, package symbols and sheets into output
// documents.
//
// [RenderSVG] produces a standalone SVG for a single shape and
// [RenderSheetSVG] one for a package sheet with its placed members. Shapes
// only carry role classes; the document embeds a [Theme] stylesheet scoped
// to the diagram's group id, so several diagrams can be inlined into one HTML
// page without their rules leaking.
//
// [RenderPNG] rasterizes in pure Go with oksvg and rasterx after inlining
// the theme's presentation attributes; text is drawn separately with bitmap
// fonts. [ToPDF] shells out to rsvg-convert.
package sink

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}
