package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/umlsvg/pkg/svg"
)

func TestThemeCSS(t *testing.T) {
	css := DefaultTheme().CSS("")
	if !strings.Contains(css, "rect.outline {") {
		t.Errorf("unscoped css:\n%s", css)
	}
	if strings.HasPrefix(css, "#") {
		t.Error("unexpected scope prefix")
	}

	scoped := DefaultTheme().CSS("box")
	if !strings.Contains(scoped, "#box polygon.note.corner {") {
		t.Errorf("scoped css:\n%s", scoped)
	}
}

func TestThemeResolve(t *testing.T) {
	theme := DefaultTheme()

	corner := svg.NewElement("polygon").Set("class", "note corner")
	props := theme.Resolve(corner)
	if got := propValue(props, "fill"); got != "#e6e6a8" {
		t.Errorf("corner fill = %q, later rule should win", got)
	}
	if got := propValue(props, "stroke"); got != "#999999" {
		t.Errorf("corner stroke = %q, inherited from note rule", got)
	}

	unstyled := svg.NewElement("circle").Set("class", "outline")
	if len(theme.Resolve(unstyled)) != 0 {
		t.Error("rules should match on element name")
	}
}

func TestThemeInline(t *testing.T) {
	g := svg.NewElement("g")
	g.AppendChild(svg.NewElement("line").Set("class", "divider"))
	DefaultTheme().Inline(g)

	if v, _ := g.Children[0].Get("stroke"); v != "#333333" {
		t.Errorf("inlined stroke = %q", v)
	}
	if _, ok := g.Get("stroke"); ok {
		t.Error("group should not be styled")
	}
}

func propValue(props []Prop, name string) string {
	for _, p := range props {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}
