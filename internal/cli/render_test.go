package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

func TestRenderBoxes(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "render", "Option", "Group", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, name := range []string{"Option", "Group"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".svg"))
		if err != nil {
			t.Fatalf("%s.svg not written: %v", name, err)
		}
		if !strings.Contains(string(data), ">"+name+"</text>") {
			t.Errorf("%s.svg missing title", name)
		}
	}
}

func TestRenderToggles(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "render", "Group", "--no-notes", "--no-methods", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "Group.svg"))
	out := string(data)
	if strings.Contains(out, "appendUsage") || strings.Contains(out, `class="note"`) {
		t.Errorf("hidden sections rendered:\n%s", out)
	}
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "render", "--all", "-o", dir, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*.svg"))
	if want := catalog.CLI2().Len(); len(files) != want {
		t.Errorf("wrote %d files, want %d", len(files), want)
	}
}

func TestRenderPNGFormat(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "render", "Switch", "-f", "svg,png", "--scale", "1", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, f := range []string{"Switch.svg", "Switch.png"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s missing: %v", f, err)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no boxes", []string{"render"}, errors.ErrCodeInvalidInput},
		{"unknown box", []string{"render", "Nope"}, errors.ErrCodeBoxNotFound},
		{"bad format", []string{"render", "Option", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"missing catalog", []string{"render", "Option", "-c", "/nonexistent/catalog.toml"}, errors.ErrCodeFileNotFound},
		{"unknown sheet", []string{"sheet", "org.example"}, errors.ErrCodeSheetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", t.TempDir())
			_, err := execute(t, newTestCLI(t), args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderCustomCatalog(t *testing.T) {
	src := filepath.Join(t.TempDir(), "widgets.toml")
	body := `name = "widgets"

[[box]]
name = "Widget"
kind = "class"
attributes = ["id", "label"]
methods = ["render()"]
`
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "render", "Widget", "-c", src, "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Widget.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `height="100"`) {
		t.Errorf("outline height 100 not found:\n%s", data)
	}
}

func TestRenderConfigMetricsBypassCache(t *testing.T) {
	dir := t.TempDir()
	c := newTestCLI(t)
	if _, err := execute(t, c, "render", "Group", "-o", dir); err != nil {
		t.Fatalf("default render: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(dir, "Group.svg"))
	if err != nil {
		t.Fatal(err)
	}

	// Same cache directory, different metrics.
	p := writeConfig(t, "[render]\npadding = 4\ntext_height = 12\nmargin = 50\n")
	if _, err := execute(t, New(&bytes.Buffer{}, LogInfo), "render", "Group", "-o", dir, "--config", p); err != nil {
		t.Fatalf("configured render: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(dir, "Group.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(before, after) {
		t.Fatal("changed padding and text_height reused the cached rendering")
	}
	if !strings.Contains(string(after), `viewBox="-50 -50 `) {
		t.Errorf("margin not applied:\n%s", after)
	}
}

func TestArtifactOptsSeparateSettings(t *testing.T) {
	base := renderSettings{cfg: uml.DefaultConfig(), margin: 10, scale: 2}
	keyer := catalogKeyer([]byte("name = \"w\""))
	key := func(s renderSettings) string {
		return keyer.ArtifactKey("Widget", s.artifactOpts(uml.KindClass, "svg"))
	}

	padding := base
	padding.cfg.Padding = 4
	textHeight := base
	textHeight.cfg.TextHeight = 12
	margin := base
	margin.margin = 50
	width := base
	width.width = 200

	seen := map[string]string{key(base): "base"}
	for name, s := range map[string]renderSettings{
		"padding":     padding,
		"text_height": textHeight,
		"margin":      margin,
		"width":       width,
	} {
		k := key(s)
		if prev, ok := seen[k]; ok {
			t.Errorf("%s shares a cache key with %s", name, prev)
		}
		seen[k] = name
	}

	// Zero metrics render with the defaults and share their key.
	zero := base
	zero.cfg.Padding, zero.cfg.TextHeight = 0, 0
	if key(zero) != key(base) {
		t.Error("zero metrics keyed differently from the defaults they render with")
	}

	other := catalogKeyer([]byte("name = \"v\""))
	if other.ArtifactKey("Widget", base.artifactOpts(uml.KindClass, "svg")) == key(base) {
		t.Error("different catalog sources share a cache key")
	}
}

func TestSheetCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, newTestCLI(t), "sheet", "org.apache.commons.cli2.option", "-o", dir); err != nil {
		t.Fatalf("sheet: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "org.apache.commons.cli2.option.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `class="diagram package"`) {
		t.Error("package symbol missing")
	}
}

func TestExportRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cli2.toml")
	if _, err := execute(t, newTestCLI(t), "export", "-o", p); err != nil {
		t.Fatalf("export: %v", err)
	}
	c, err := catalog.Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := catalog.CLI2()
	if c.Len() != want.Len() || len(c.Sheets()) != len(want.Sheets()) {
		t.Errorf("round trip: %d boxes, %d sheets", c.Len(), len(c.Sheets()))
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v", got)
	}
	if got := strings.Join(parseFormats(" SVG, png ,"), ","); got != "svg,png" {
		t.Errorf("parseFormats = %s", got)
	}
}

func TestBoxListModel(t *testing.T) {
	boxes := catalog.CLI2().Boxes()
	var m tea.Model = NewBoxListModel(boxes, uml.DefaultConfig())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	bm := m.(BoxListModel)
	if bm.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", bm.Cursor)
	}
	if bm.Config.DisplayNotes || bm.Config.DisplayAttributes || !bm.Config.DisplayMethods {
		t.Errorf("toggles = %+v", bm.Config)
	}
	if !strings.Contains(bm.View(), boxes[1].Name()) {
		t.Error("view does not show the selected box")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit")
	}
	if sel := m.(BoxListModel).Selected; sel == nil || sel.Name() != boxes[1].Name() {
		t.Errorf("selected = %v", sel)
	}
}
