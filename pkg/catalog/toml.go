package catalog

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

type document struct {
	Name   string     `toml:"name"`
	Boxes  []boxDoc   `toml:"box"`
	Sheets []sheetDoc `toml:"sheet,omitempty"`
}

type boxDoc struct {
	Name       string   `toml:"name"`
	Kind       string   `toml:"kind,omitempty"`
	Width      float64  `toml:"width,omitempty"`
	Style      string   `toml:"style,omitempty"`
	Attributes []string `toml:"attributes,omitempty"`
	Methods    []string `toml:"methods,omitempty"`
	Notes      []string `toml:"notes,omitempty"`
}

type sheetDoc struct {
	Name      string      `toml:"name"`
	Width     float64     `toml:"width"`
	Height    float64     `toml:"height"`
	NameWidth float64     `toml:"name_width,omitempty"`
	Members   []memberDoc `toml:"member"`
}

type memberDoc struct {
	Box string  `toml:"box"`
	X   float64 `toml:"x"`
	Y   float64 `toml:"y"`
}

// Load reads a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes a TOML catalog. Unknown keys, unknown kinds, unnamed
// entries and placements of undeclared boxes are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown keys: %s", strings.Join(keys, ", "))
	}

	c := New(doc.Name)
	for i, bd := range doc.Boxes {
		b, err := bd.box()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "box %d", i+1)
		}
		c.Add(b)
	}
	for i, sd := range doc.Sheets {
		s, err := sd.sheet(c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "sheet %d", i+1)
		}
		c.AddSheet(s)
	}
	return c, nil
}

func (bd boxDoc) box() (*uml.Box, error) {
	if bd.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidName, "missing name")
	}
	kind := uml.KindClass
	if bd.Kind != "" {
		k, ok := uml.ParseKind(bd.Kind)
		if !ok || k == uml.KindPackage {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: invalid kind %q (must be 'class' or 'interface')", bd.Name, bd.Kind)
		}
		kind = k
	}

	b := uml.NewBox(bd.Name, kind)
	if bd.Width > 0 {
		b.Width = bd.Width
	}
	if bd.Style != "" {
		b.Style = bd.Style
	}
	for _, s := range bd.Attributes {
		b.AddAttribute(s)
	}
	for _, s := range bd.Methods {
		b.AddMethod(s)
	}
	for _, s := range bd.Notes {
		b.AddNote(s)
	}
	return b, nil
}

func (sd sheetDoc) sheet(c *Catalog) (*Sheet, error) {
	if sd.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidName, "missing name")
	}
	if sd.Width <= 0 || sd.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: width and height must be positive", sd.Name)
	}
	s := NewSheet(sd.Name, sd.Width, sd.Height)
	if sd.NameWidth > 0 {
		s.Package.NameWidth = sd.NameWidth
	}
	for _, m := range sd.Members {
		s.Place(m.Box, m.X, m.Y)
	}
	if _, err := s.Resolve(c); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes c as TOML. The output parses back to an equivalent catalog.
func Encode(w io.Writer, c *Catalog) error {
	doc := document{Name: c.Name}
	for _, b := range c.Boxes() {
		bd := boxDoc{
			Name:       b.Name(),
			Kind:       b.Kind().String(),
			Attributes: b.Attributes(),
			Methods:    b.Methods(),
			Notes:      b.Notes(),
		}
		if b.Width != uml.DefaultBoxWidth {
			bd.Width = b.Width
		}
		if b.Style != uml.DefaultStyle {
			bd.Style = b.Style
		}
		doc.Boxes = append(doc.Boxes, bd)
	}
	for _, s := range c.Sheets() {
		sd := sheetDoc{
			Name:   s.Name(),
			Width:  s.Package.Width,
			Height: s.Package.Height,
		}
		if s.Package.NameWidth != uml.DefaultNameWidth {
			sd.NameWidth = s.Package.NameWidth
		}
		for _, m := range s.Members {
			sd.Members = append(sd.Members, memberDoc{Box: m.Box, X: m.X, Y: m.Y})
		}
		doc.Sheets = append(doc.Sheets, sd)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode catalog %s", c.Name)
	}
	_, err := buf.WriteTo(w)
	return err
}
