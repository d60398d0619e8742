package uml

import "github.com/matzehuels/umlsvg/pkg/svg"

// Kind discriminates the closed set of drawable shapes.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindPackage
)

var kindNames = map[Kind]string{
	KindClass:     "class",
	KindInterface: "interface",
	KindPackage:   "package",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a kind name back to its value.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Target is the container a shape draws into. *svg.Element satisfies it.
type Target interface {
	AppendChild(*svg.Element)
	InsertBefore(child, ref *svg.Element)
	FirstChild() *svg.Element
	Class() string
	SetClass(string)
}

// Shape is implemented by every drawable in this package.
type Shape interface {
	// Name is the label drawn in the shape's title.
	Name() string
	// Kind is the shape's discriminant.
	Kind() Kind
	// Insert draws the shape into t.
	Insert(t Target, cfg Config)
	// Size is the width and full drawn height, used to size documents.
	Size(cfg Config) (width, height float64)
}

var (
	_ Shape  = (*Box)(nil)
	_ Shape  = (*Package)(nil)
	_ Target = (*svg.Element)(nil)
)

// addClass appends name to t's class attribute.
func addClass(t Target, name string) {
	t.SetClass(t.Class() + " " + name)
}

func text(x, y float64, class, s string) *svg.Element {
	return svg.NewElement("text").
		Set("x", x).
		Set("y", y).
		Set("class", class).
		SetText(s)
}

func line(x1, y1, x2, y2 float64, class string) *svg.Element {
	return svg.NewElement("line").
		Set("x1", x1).
		Set("y1", y1).
		Set("x2", x2).
		Set("y2", y2).
		Set("class", class)
}

func rect(x, y, w, h float64, class string) *svg.Element {
	return svg.NewElement("rect").
		Set("x", x).
		Set("y", y).
		Set("width", w).
		Set("height", h).
		Set("class", class)
}
