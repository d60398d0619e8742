package svg

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Encode writes e and its descendants as indented XML.
func (e *Element) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := e.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}

// String returns the encoded element. Encoding into a buffer cannot fail
// for well-formed names, so errors are dropped.
func (e *Element) String() string {
	var buf bytes.Buffer
	_ = e.Encode(&buf)
	return buf.String()
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Document is a standalone SVG document: a root <svg> element with an
// optional embedded stylesheet followed by content.
type Document struct {
	Root *Element
}

// NewDocument creates a document whose viewport and viewBox match the given
// extent.
func NewDocument(minX, minY, width, height float64) *Document {
	root := NewElement("svg").
		Set("xmlns", Namespace).
		Set("viewBox", FormatFloat(minX)+" "+FormatFloat(minY)+" "+FormatFloat(width)+" "+FormatFloat(height)).
		Set("width", width).
		Set("height", height)
	return &Document{Root: root}
}

// AddStylesheet appends a <style> element carrying css.
func (d *Document) AddStylesheet(css string) {
	if css == "" {
		return
	}
	d.Root.AppendChild(NewElement("style").Set("type", "text/css").SetText(css))
}

// Append adds a top-level element.
func (d *Document) Append(e *Element) {
	d.Root.AppendChild(e)
}

// WriteTo writes the XML declaration and the document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := d.Root.Encode(&buf); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}

// Bytes returns the encoded document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}
