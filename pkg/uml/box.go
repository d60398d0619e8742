package uml

import (
	"strings"

	"github.com/matzehuels/umlsvg/pkg/svg"
)

// Role classes attached to inserted elements.
const (
	ClassOutline     = "outline"
	ClassTitle       = "title"
	ClassAttribute   = "attribute"
	ClassMethod      = "method"
	ClassDivider     = "divider"
	ClassNote        = "note"
	ClassNoteConnect = "note connect"
	ClassNoteCorner  = "note corner"
	ClassInner       = "inner"
)

// cornerRadius is the interface outline's corner radius in paddings.
const cornerRadius = 1.5

// Box is a class or interface box. Entries are append-only and used
// verbatim as text content.
type Box struct {
	name  string
	kind  Kind
	Width float64
	Style string

	attributes []string
	methods    []string
	notes      []string
}

// NewClass creates a class box with a square outline.
func NewClass(name string) *Box { return newBox(name, KindClass) }

// NewInterface creates an interface box. Interfaces draw a rounded outline
// and never show attributes.
func NewInterface(name string) *Box { return newBox(name, KindInterface) }

// NewBox creates a box of the given kind. KindPackage is not a box kind and
// is treated as KindClass.
func NewBox(name string, kind Kind) *Box {
	if kind != KindInterface {
		kind = KindClass
	}
	return newBox(name, kind)
}

func newBox(name string, kind Kind) *Box {
	return &Box{name: name, kind: kind, Width: DefaultBoxWidth, Style: DefaultStyle}
}

func (b *Box) Name() string { return b.name }
func (b *Box) Kind() Kind   { return b.kind }

// AddAttribute appends an attribute line.
func (b *Box) AddAttribute(s string) { b.attributes = append(b.attributes, s) }

// AddMethod appends a method signature line.
func (b *Box) AddMethod(s string) { b.methods = append(b.methods, s) }

// AddNote appends a line to the note callout.
func (b *Box) AddNote(s string) { b.notes = append(b.notes, s) }

func (b *Box) Attributes() []string { return clone(b.attributes) }
func (b *Box) Methods() []string    { return clone(b.methods) }
func (b *Box) Notes() []string      { return clone(b.notes) }

// NameHeight is the height of the title section.
func (b *Box) NameHeight(cfg Config) float64 {
	cfg = cfg.withDefaults()
	return cfg.Padding*2 + cfg.TextHeight
}

// AttributesHeight is the attribute section's height: zero when hidden or
// for interfaces, one padding when empty.
func (b *Box) AttributesHeight(cfg Config) float64 {
	if !cfg.DisplayAttributes || b.kind == KindInterface {
		return 0
	}
	return sectionHeight(cfg.withDefaults(), len(b.attributes))
}

// MethodsHeight is the method section's height: zero when hidden, one
// padding when empty.
func (b *Box) MethodsHeight(cfg Config) float64 {
	if !cfg.DisplayMethods {
		return 0
	}
	return sectionHeight(cfg.withDefaults(), len(b.methods))
}

// NotesHeight is the note polygon's height, or zero without notes.
func (b *Box) NotesHeight(cfg Config) float64 {
	if len(b.notes) == 0 {
		return 0
	}
	cfg = cfg.withDefaults()
	return cfg.Padding*2 + float64(len(b.notes))*cfg.TextHeight
}

// Height is the outline height: name, attributes and methods. Notes are
// drawn below the outline and are not included.
func (b *Box) Height(cfg Config) float64 {
	return b.NameHeight(cfg) + b.AttributesHeight(cfg) + b.MethodsHeight(cfg)
}

// Extent is the full drawn height including the note callout.
func (b *Box) Extent(cfg Config) float64 {
	h := b.Height(cfg)
	if cfg.DisplayNotes && len(b.notes) > 0 {
		h += cfg.withDefaults().Padding + b.NotesHeight(cfg)
	}
	return h
}

// Size reports the box width and Extent.
func (b *Box) Size(cfg Config) (float64, float64) {
	return b.Width, b.Extent(cfg)
}

func sectionHeight(cfg Config, n int) float64 {
	if n == 0 {
		return cfg.Padding
	}
	return cfg.Padding*2 + float64(n)*cfg.TextHeight
}

// Insert draws the box into t top to bottom: outline, name, then each
// enabled section. t's class gains the box style.
func (b *Box) Insert(t Target, cfg Config) {
	cfg = cfg.withDefaults()
	y := 0.0
	y = b.insertOutline(t, cfg, y)
	y = b.insertName(t, cfg, y)
	if cfg.DisplayAttributes {
		y = b.insertAttributes(t, cfg, y)
	}
	if cfg.DisplayMethods {
		y = b.insertMethods(t, cfg, y)
	}
	if cfg.DisplayNotes {
		b.insertNotes(t, cfg, y)
	}
}

func (b *Box) insertOutline(t Target, cfg Config, y float64) float64 {
	addClass(t, b.Style)

	e := rect(0, 0, b.Width, b.Height(cfg), ClassOutline)
	if b.kind == KindInterface {
		e.Set("rx", cfg.Padding*cornerRadius)
		e.Set("ry", cfg.Padding*cornerRadius)
	}
	t.AppendChild(e)
	return y
}

func (b *Box) insertName(t Target, cfg Config, y float64) float64 {
	y += cfg.Padding + cfg.TextHeight
	t.AppendChild(text(b.Width/2, y, ClassTitle, b.name))
	return y + cfg.Padding
}

func (b *Box) insertAttributes(t Target, cfg Config, y float64) float64 {
	if b.kind == KindInterface {
		return y
	}
	return b.insertSection(t, cfg, y, b.attributes, ClassAttribute)
}

func (b *Box) insertMethods(t Target, cfg Config, y float64) float64 {
	return b.insertSection(t, cfg, y, b.methods, ClassMethod)
}

// insertSection draws a divider followed by one line per entry.
func (b *Box) insertSection(t Target, cfg Config, y float64, entries []string, class string) float64 {
	t.AppendChild(line(0, y, b.Width, y, ClassDivider))

	y += cfg.Padding
	for _, s := range entries {
		y += cfg.TextHeight
		t.AppendChild(text(cfg.Padding, y, class, s))
	}
	if len(entries) > 0 {
		y += cfg.Padding
	}
	return y
}

// insertNotes draws the dog-eared callout below y, joined to the box by a
// short diagonal connector.
func (b *Box) insertNotes(t Target, cfg Config, y float64) float64 {
	if len(b.notes) == 0 {
		return y
	}
	p := cfg.Padding
	joinTop := y
	y += p

	t.AppendChild(line(b.Width/2-p*2, y, b.Width/2+p*2, joinTop, ClassNoteConnect))

	h := b.NotesHeight(cfg)
	t.AppendChild(svg.NewElement("polygon").
		Set("points", points(0, y+p, 0, y+h, b.Width, y+h, b.Width, y, p, y)).
		Set("class", ClassNote))
	t.AppendChild(svg.NewElement("polygon").
		Set("points", points(p, y, 0, y+p, p, y+p)).
		Set("class", ClassNoteCorner))

	y += p
	for _, s := range b.notes {
		y += cfg.TextHeight
		t.AppendChild(text(p, y, ClassNote, s))
	}
	return y
}

// points formats coordinate pairs as an SVG points list.
func points(xy ...float64) string {
	var sb strings.Builder
	for i := 0; i+1 < len(xy); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(svg.FormatFloat(xy[i]))
		sb.WriteByte(',')
		sb.WriteString(svg.FormatFloat(xy[i+1]))
	}
	return sb.String()
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
