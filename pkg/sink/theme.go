package sink

import (
	"strings"

	"github.com/matzehuels/umlsvg/pkg/svg"
)

// Prop is a single presentation property.
type Prop struct {
	Name, Value string
}

// Rule styles elements by tag name (optional) and a set of classes that
// must all be present.
type Rule struct {
	Element string
	Classes []string
	Props   []Prop
}

// Theme is an ordered rule list. Later rules win when several match.
type Theme struct {
	Name  string
	Rules []Rule
}

// DefaultTheme is a plain black-on-white look with pale yellow notes.
func DefaultTheme() Theme {
	mono := []Prop{{"font-family", "monospace"}, {"font-size", "9px"}, {"fill", "#000000"}}
	return Theme{
		Name: "default",
		Rules: []Rule{
			{"rect", []string{"outline"}, []Prop{{"fill", "#ffffff"}, {"stroke", "#333333"}, {"stroke-width", "1"}}},
			{"rect", []string{"inner"}, []Prop{{"fill", "#f7f7f7"}, {"stroke", "#aaaaaa"}, {"stroke-width", "1"}}},
			{"text", []string{"title"}, []Prop{{"font-family", "sans-serif"}, {"font-size", "10px"}, {"font-weight", "bold"}, {"text-anchor", "middle"}, {"fill", "#000000"}}},
			{"text", []string{"attribute"}, mono},
			{"text", []string{"method"}, mono},
			{"text", []string{"note"}, mono},
			{"line", []string{"divider"}, []Prop{{"stroke", "#333333"}, {"stroke-width", "1"}}},
			{"polygon", []string{"note"}, []Prop{{"fill", "#ffffcc"}, {"stroke", "#999999"}, {"stroke-width", "1"}}},
			{"polygon", []string{"note", "corner"}, []Prop{{"fill", "#e6e6a8"}}},
			{"line", []string{"note", "connect"}, []Prop{{"stroke", "#999999"}, {"stroke-width", "1"}, {"stroke-dasharray", "2,2"}}},
		},
	}
}

// CSS renders the theme as a stylesheet. A non-empty scope is prepended to
// every selector as an id selector.
func (t Theme) CSS(scope string) string {
	var sb strings.Builder
	for _, r := range t.Rules {
		if scope != "" {
			sb.WriteString("#" + scope + " ")
		}
		sb.WriteString(r.selector())
		sb.WriteString(" {")
		for _, p := range r.Props {
			sb.WriteString(" " + p.Name + ": " + p.Value + ";")
		}
		sb.WriteString(" }\n")
	}
	return sb.String()
}

func (r Rule) selector() string {
	return r.Element + "." + strings.Join(r.Classes, ".")
}

func (r Rule) matches(e *svg.Element) bool {
	if r.Element != "" && r.Element != e.Name {
		return false
	}
	for _, c := range r.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// Resolve returns the properties that apply to e, in first-set order.
func (t Theme) Resolve(e *svg.Element) []Prop {
	var out []Prop
	for _, r := range t.Rules {
		if !r.matches(e) {
			continue
		}
		for _, p := range r.Props {
			out = setProp(out, p)
		}
	}
	return out
}

// Inline copies resolved properties onto every element under root as
// presentation attributes.
func (t Theme) Inline(root *svg.Element) {
	root.Walk(func(e *svg.Element) bool {
		for _, p := range t.Resolve(e) {
			e.Set(p.Name, p.Value)
		}
		return true
	})
}

func setProp(props []Prop, p Prop) []Prop {
	for i := range props {
		if props[i].Name == p.Name {
			props[i].Value = p.Value
			return props
		}
	}
	return append(props, p)
}
