package uml

import (
	"testing"

	"github.com/matzehuels/umlsvg/pkg/svg"
)

func render(s Shape, cfg Config) *svg.Element {
	g := svg.NewElement("g")
	s.Insert(g, cfg)
	return g
}

func count(g *svg.Element, name, class string) int {
	n := 0
	for _, c := range g.Children {
		if c.Name == name && c.Class() == class {
			n++
		}
	}
	return n
}

func texts(g *svg.Element, class string) []string {
	var out []string
	for _, c := range g.Children {
		if c.Name == "text" && c.Class() == class {
			out = append(out, c.Text)
		}
	}
	return out
}

func hidden() Config {
	cfg := DefaultConfig()
	cfg.DisplayAttributes = false
	cfg.DisplayMethods = false
	cfg.DisplayNotes = false
	return cfg
}

func TestHeightEmptyBox(t *testing.T) {
	b := NewClass("Empty")

	if got := b.Height(hidden()); got != 30 {
		t.Errorf("Height() with sections hidden = %v, want 30", got)
	}
	if got := b.NameHeight(DefaultConfig()); got != 30 {
		t.Errorf("NameHeight() = %v, want 30", got)
	}
	// Empty sections still reserve one padding each.
	if got := b.Height(DefaultConfig()); got != 50 {
		t.Errorf("Height() = %v, want 50", got)
	}
}

func TestAttributesHeight(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		display bool
		want    float64
	}{
		{"empty", 0, true, 10},
		{"one", 1, true, 30},
		{"three", 3, true, 50},
		{"hidden", 3, false, 0},
		{"hidden empty", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewClass("C")
			for i := 0; i < tt.count; i++ {
				b.AddAttribute("a")
			}
			cfg := DefaultConfig()
			cfg.DisplayAttributes = tt.display
			if got := b.AttributesHeight(cfg); got != tt.want {
				t.Errorf("AttributesHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMethodsHeight(t *testing.T) {
	b := NewInterface("I")
	cfg := DefaultConfig()
	if got := b.MethodsHeight(cfg); got != 10 {
		t.Errorf("MethodsHeight() empty = %v, want 10", got)
	}
	b.AddMethod("a()")
	b.AddMethod("b()")
	if got := b.MethodsHeight(cfg); got != 40 {
		t.Errorf("MethodsHeight() = %v, want 40", got)
	}
	cfg.DisplayMethods = false
	if got := b.MethodsHeight(cfg); got != 0 {
		t.Errorf("MethodsHeight() hidden = %v, want 0", got)
	}
}

func TestCustomMetrics(t *testing.T) {
	b := NewClass("C")
	b.AddAttribute("a")
	cfg := DefaultConfig()
	cfg.Padding = 4
	cfg.TextHeight = 12
	// name 2*4+12, attributes 2*4+12, methods 4
	if got := b.Height(cfg); got != 44 {
		t.Errorf("Height() = %v, want 44", got)
	}
}

func TestWidget(t *testing.T) {
	b := NewClass("Widget")
	b.AddAttribute("id")
	b.AddAttribute("label")
	b.AddMethod("render()")

	cfg := DefaultConfig()
	if got := b.Height(cfg); got != 100 {
		t.Fatalf("Height() = %v, want 100", got)
	}

	g := render(b, cfg)

	if n := count(g, "rect", ClassOutline); n != 1 {
		t.Fatalf("outline rects = %d, want 1", n)
	}
	outline := g.Children[0]
	if h := outline.Float("height"); h != 100 {
		t.Errorf("outline height = %v, want 100", h)
	}
	if w := outline.Float("width"); w != 160 {
		t.Errorf("outline width = %v, want 160", w)
	}
	if _, ok := outline.Get("rx"); ok {
		t.Error("class outline should not be rounded")
	}
	if got := texts(g, ClassTitle); len(got) != 1 || got[0] != "Widget" {
		t.Errorf("titles = %v, want [Widget]", got)
	}
	if n := count(g, "line", ClassDivider); n != 2 {
		t.Errorf("dividers = %d, want 2", n)
	}
	if got := texts(g, ClassAttribute); len(got) != 2 || got[0] != "id" || got[1] != "label" {
		t.Errorf("attributes = %v, want [id label]", got)
	}
	if got := texts(g, ClassMethod); len(got) != 1 || got[0] != "render()" {
		t.Errorf("methods = %v, want [render()]", got)
	}
	if len(g.Children) != 8 {
		t.Errorf("children = %d, want 8", len(g.Children))
	}
}

func TestWidgetPositions(t *testing.T) {
	b := NewClass("Widget")
	b.AddAttribute("id")
	b.AddAttribute("label")
	b.AddMethod("render()")

	g := render(b, DefaultConfig())

	want := []struct {
		name, class string
		attr        string
		value       float64
	}{
		{"rect", ClassOutline, "y", 0},
		{"text", ClassTitle, "y", 20},
		{"line", ClassDivider, "y1", 30},
		{"text", ClassAttribute, "y", 50},
		{"text", ClassAttribute, "y", 60},
		{"line", ClassDivider, "y1", 70},
		{"text", ClassMethod, "y", 90},
	}
	for i, w := range want {
		e := g.Children[i]
		if e.Name != w.name || e.Class() != w.class {
			t.Fatalf("child %d = <%s class=%q>, want <%s class=%q>", i, e.Name, e.Class(), w.name, w.class)
		}
		if got := e.Float(w.attr); got != w.value {
			t.Errorf("child %d %s = %v, want %v", i, w.attr, got, w.value)
		}
	}

	if x := g.Children[1].Float("x"); x != 80 {
		t.Errorf("title x = %v, want 80", x)
	}
	if x := g.Children[3].Float("x"); x != 10 {
		t.Errorf("attribute x = %v, want 10", x)
	}
}

func TestOutlineIgnoresNotes(t *testing.T) {
	plain := NewClass("Widget")
	plain.AddAttribute("id")
	noted := NewClass("Widget")
	noted.AddAttribute("id")
	noted.AddNote("new Widget()")
	noted.AddNote("widget.render()")

	cfg := DefaultConfig()
	if plain.Height(cfg) != noted.Height(cfg) {
		t.Fatalf("Height() differs with notes: %v vs %v", plain.Height(cfg), noted.Height(cfg))
	}

	g := render(noted, cfg)
	outline := g.Children[0]
	if got := outline.Float("height"); got != noted.Height(cfg) {
		t.Errorf("outline height = %v, want %v", got, noted.Height(cfg))
	}

	// The callout starts one padding below the outline.
	notes := g.Find(svg.WithClass(ClassNote))
	poly := notes[0]
	if poly.Name != "polygon" {
		t.Fatalf("first note element = %s, want polygon", poly.Name)
	}
	// Height 70: name 30, one attribute 30, empty methods 10.
	wantPoints := "0,90 0,120 160,120 160,80 10,80"
	if got, _ := poly.Get("points"); got != wantPoints {
		t.Errorf("note points = %q, want %q", got, wantPoints)
	}

	if got, want := noted.Extent(cfg), noted.Height(cfg)+10+noted.NotesHeight(cfg); got != want {
		t.Errorf("Extent() = %v, want %v", got, want)
	}
}

func TestInterfaceSuppressesAttributes(t *testing.T) {
	b := NewInterface("Option")
	b.AddAttribute("hidden1")
	b.AddAttribute("hidden2")
	b.AddMethod("process(...)")
	b.AddMethod("validate(...)")

	cfg := DefaultConfig()
	if got := b.AttributesHeight(cfg); got != 0 {
		t.Errorf("AttributesHeight() = %v, want 0", got)
	}
	// name 30 + methods 2*10+2*10
	if got := b.Height(cfg); got != 70 {
		t.Errorf("Height() = %v, want 70", got)
	}

	g := render(b, cfg)
	if n := len(texts(g, ClassAttribute)); n != 0 {
		t.Errorf("attribute lines = %d, want 0", n)
	}
	if got := texts(g, ClassMethod); len(got) != 2 {
		t.Errorf("method lines = %v, want 2 entries", got)
	}
	// Only the methods section draws a divider.
	if n := count(g, "line", ClassDivider); n != 1 {
		t.Errorf("dividers = %d, want 1", n)
	}
	outline := g.Children[0]
	if rx := outline.Float("rx"); rx != 15 {
		t.Errorf("rx = %v, want 15", rx)
	}
	if ry := outline.Float("ry"); ry != 15 {
		t.Errorf("ry = %v, want 15", ry)
	}
	if len(b.Attributes()) != 2 {
		t.Errorf("Attributes() should keep added entries, got %v", b.Attributes())
	}
}

func TestNotesCallout(t *testing.T) {
	tests := []struct {
		name  string
		notes []string
	}{
		{"single", []string{"-f <arg1>"}},
		{"several", []string{"a", "b", "c"}},
		{"markup", []string{"<src1> <src2> ... <dst>", "x & y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewClass("Noted")
			for _, n := range tt.notes {
				b.AddNote(n)
			}
			cfg := DefaultConfig()
			g := render(b, cfg)

			if n := count(g, "line", ClassNoteConnect); n != 1 {
				t.Errorf("connectors = %d, want 1", n)
			}
			if n := count(g, "polygon", ClassNoteCorner); n != 1 {
				t.Errorf("corners = %d, want 1", n)
			}
			if n := count(g, "polygon", ClassNote); n != 1 {
				t.Errorf("note polygons = %d, want 1", n)
			}
			got := texts(g, ClassNote)
			if len(got) != len(tt.notes) {
				t.Fatalf("note lines = %d, want %d", len(got), len(tt.notes))
			}
			for i := range got {
				if got[i] != tt.notes[i] {
					t.Errorf("note %d = %q, want %q", i, got[i], tt.notes[i])
				}
			}

			want := 20 + float64(len(tt.notes))*10
			if h := b.NotesHeight(cfg); h != want {
				t.Errorf("NotesHeight() = %v, want %v", h, want)
			}
		})
	}
}

func TestNotesGeometry(t *testing.T) {
	b := NewClass("Widget")
	b.AddAttribute("id")
	b.AddAttribute("label")
	b.AddMethod("render()")
	b.AddNote("x")

	g := render(b, DefaultConfig())
	conn := g.Find(svg.WithClass(ClassNoteConnect))[0]
	for attr, want := range map[string]float64{"x1": 60, "y1": 110, "x2": 100, "y2": 100} {
		if got := conn.Float(attr); got != want {
			t.Errorf("connector %s = %v, want %v", attr, got, want)
		}
	}
	corner := g.Find(svg.WithClass(ClassNoteCorner))[0]
	if got, _ := corner.Get("points"); got != "10,110 0,120 10,120" {
		t.Errorf("corner points = %q", got)
	}
	lines := texts(g, ClassNote)
	last := g.Children[len(g.Children)-1]
	if len(lines) != 1 || last.Float("y") != 130 {
		t.Errorf("note text y = %v, want 130", last.Float("y"))
	}
	if got := b.Extent(DefaultConfig()); got != 140 {
		t.Errorf("Extent() = %v, want 140", got)
	}
}

func TestAllSectionsHidden(t *testing.T) {
	b := NewClass("Busy")
	b.AddAttribute("a")
	b.AddMethod("m()")
	b.AddNote("n")

	g := render(b, hidden())
	if len(g.Children) != 2 {
		t.Fatalf("children = %d, want 2 (outline and title)", len(g.Children))
	}
	if g.Children[0].Name != "rect" || g.Children[0].Class() != ClassOutline {
		t.Errorf("first child = <%s class=%q>, want outline rect", g.Children[0].Name, g.Children[0].Class())
	}
	if g.Children[1].Name != "text" || g.Children[1].Class() != ClassTitle {
		t.Errorf("second child = <%s class=%q>, want title text", g.Children[1].Name, g.Children[1].Class())
	}
	if h := g.Children[0].Float("height"); h != 30 {
		t.Errorf("outline height = %v, want 30", h)
	}
}

func TestInsertAddsStyleClass(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		style   string
		want    string
	}{
		{"empty container", "", DefaultStyle, " type"},
		{"existing class", "diagram", DefaultStyle, "diagram type"},
		{"custom style", "diagram", "highlight", "diagram highlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := svg.NewElement("g")
			if tt.initial != "" {
				g.SetClass(tt.initial)
			}
			b := NewClass("C")
			b.Style = tt.style
			b.Insert(g, DefaultConfig())
			if got := g.Class(); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertAppendsAfterExisting(t *testing.T) {
	g := svg.NewElement("g")
	marker := svg.NewElement("desc")
	g.AppendChild(marker)

	NewClass("C").Insert(g, DefaultConfig())
	if g.FirstChild() != marker {
		t.Error("box shapes should be appended after existing children")
	}
}

func TestZeroConfigMetrics(t *testing.T) {
	b := NewClass("C")
	cfg := Config{DisplayAttributes: true, DisplayMethods: true}
	if got := b.Height(cfg); got != 50 {
		t.Errorf("Height() with zero metrics = %v, want 50", got)
	}
}

func TestConfigResolved(t *testing.T) {
	got := Config{Padding: 4}.Resolved()
	if got.Padding != 4 || got.TextHeight != DefaultTextHeight {
		t.Errorf("Resolved() metrics = %v/%v, want 4/%v", got.Padding, got.TextHeight, DefaultTextHeight)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Kind
	}{
		{NewClass("a"), KindClass},
		{NewInterface("b"), KindInterface},
		{NewBox("c", KindPackage), KindClass},
		{NewPackage("d", 10, 10), KindPackage},
	}
	for _, tt := range tests {
		if got := tt.shape.Kind(); got != tt.want {
			t.Errorf("%s Kind() = %v, want %v", tt.shape.Name(), got, tt.want)
		}
	}

	for _, k := range []Kind{KindClass, KindInterface, KindPackage} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("enum"); ok {
		t.Error("ParseKind(enum) should fail")
	}
}
