package sink

import (
	"bytes"
	"os/exec"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

func newPDFRenderer(opts ...PDFOption) pdfRenderer {
	var r pdfRenderer
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPDF renders a shape as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(s uml.Shape, opts ...PDFOption) ([]byte, error) {
	r := newPDFRenderer(opts...)
	return ToPDF(RenderSVG(s, r.svgOpts...))
}

// RenderSheetPDF renders a package sheet as PDF via SVG conversion.
func RenderSheetPDF(s *catalog.Sheet, c *catalog.Catalog, opts ...PDFOption) ([]byte, error) {
	r := newPDFRenderer(opts...)
	data, err := RenderSheetSVG(s, c, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return ToPDF(data)
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, FormatPDF)
}

func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
