package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single element attribute. Attributes keep insertion order so
// output is stable.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the SVG tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Set assigns an attribute, replacing any existing value. Numbers are
// formatted in their shortest form ("80", "7.5").
func (e *Element) Set(name string, value any) *Element {
	v := formatValue(value)
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = v
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: v})
	return e
}

// Get returns the attribute value and whether it was set.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Float returns a numeric attribute, or 0 if it is missing or not a number.
func (e *Element) Float(name string) float64 {
	v, ok := e.Get(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// Remove deletes an attribute if present.
func (e *Element) Remove(name string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// SetText replaces the element's character data.
func (e *Element) SetText(s string) *Element {
	e.Text = s
	return e
}

// Class returns the class attribute, or "" if unset.
func (e *Element) Class() string {
	v, _ := e.Get("class")
	return v
}

// SetClass replaces the class attribute.
func (e *Element) SetClass(v string) {
	e.Set("class", v)
}

// AddClass appends name to the class attribute separated by a space.
func (e *Element) AddClass(name string) {
	e.SetClass(e.Class() + " " + name)
}

// HasClass reports whether name is one of the element's class tokens.
func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Class()) {
		if c == name {
			return true
		}
	}
	return false
}

// AppendChild adds c as the last child.
func (e *Element) AppendChild(c *Element) {
	e.Children = append(e.Children, c)
}

// FirstChild returns the first child or nil.
func (e *Element) FirstChild() *Element {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// InsertBefore inserts c immediately before ref. A nil or foreign ref
// appends c, as the DOM does for a null reference node.
func (e *Element) InsertBefore(c, ref *Element) {
	if ref == nil {
		e.AppendChild(c)
		return
	}
	for i, child := range e.Children {
		if child == ref {
			e.Children = append(e.Children, nil)
			copy(e.Children[i+1:], e.Children[i:])
			e.Children[i] = c
			return
		}
	}
	e.AppendChild(c)
}

// Walk visits e and all descendants depth first. Returning false from fn
// skips the node's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// All returns every descendant (including e) with the given tag name, in
// document order.
func (e *Element) All(name string) []*Element {
	var out []*Element
	e.Walk(func(n *Element) bool {
		if n.Name == name {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Find returns descendants matching pred in document order.
func (e *Element) Find(pred func(*Element) bool) []*Element {
	var out []*Element
	e.Walk(func(n *Element) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// WithClass matches elements carrying exactly the given class attribute.
func WithClass(class string) func(*Element) bool {
	return func(e *Element) bool { return e.Class() == class }
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return FormatFloat(x)
	case float32:
		return FormatFloat(float64(x))
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case interface{ String() string }:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// FormatFloat formats f in the shortest decimal form without exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
