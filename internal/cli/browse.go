package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/svg"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	noteStyle         = lipgloss.NewStyle().Foreground(colorYellow)
)

// BoxListModel is the bubbletea model for browsing a catalog. The section
// toggles update the preview and the heights live.
type BoxListModel struct {
	Boxes    []*uml.Box
	Config   uml.Config
	Cursor   int
	Offset   int
	Height   int
	Selected *uml.Box
}

// NewBoxListModel creates a browser over boxes starting from cfg.
func NewBoxListModel(boxes []*uml.Box, cfg uml.Config) BoxListModel {
	return BoxListModel{Boxes: boxes, Config: cfg, Height: 15}
}

func (m BoxListModel) Init() tea.Cmd { return nil }

func (m BoxListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Boxes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "a":
			m.Config.DisplayAttributes = !m.Config.DisplayAttributes
		case "m":
			m.Config.DisplayMethods = !m.Config.DisplayMethods
		case "n":
			m.Config.DisplayNotes = !m.Config.DisplayNotes
		case "enter":
			if len(m.Boxes) > 0 {
				m.Selected = m.Boxes[m.Cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m BoxListModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Catalog"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  a/m/n toggle sections  ⏎ render  q quit"))
	b.WriteString("\n")
	b.WriteString(m.toggles())
	b.WriteString("\n\n")

	if len(m.Boxes) == 0 {
		b.WriteString(listDimStyle.Render("  no boxes"))
		return b.String()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.list(), "  ", m.preview()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Boxes))))
	return b.String()
}

func (m BoxListModel) toggles() string {
	flag := func(name string, on bool) string {
		if on {
			return StyleSuccess.Render("● " + name)
		}
		return listDimStyle.Render("○ " + name)
	}
	return strings.Join([]string{
		flag("attributes", m.Config.DisplayAttributes),
		flag("methods", m.Config.DisplayMethods),
		flag("notes", m.Config.DisplayNotes),
	}, "   ")
}

func (m BoxListModel) list() string {
	end := min(m.Offset+m.Height, len(m.Boxes))
	var lines []string
	for i := m.Offset; i < end; i++ {
		bx := m.Boxes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-28s %-9s %5s", cursor, bx.Name(), bx.Kind(), svg.FormatFloat(bx.Height(m.Config)))
		if i == m.Cursor {
			lines = append(lines, listSelectedStyle.Render(line))
		} else {
			lines = append(lines, listNormalStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// preview sketches the selected box as text, honoring the toggles.
func (m BoxListModel) preview() string {
	bx := m.Boxes[m.Cursor]
	title := bx.Name()
	if bx.Kind() == uml.KindInterface {
		title = "«interface» " + title
	}

	lines := []string{StyleTitle.Render(title)}
	section := func(entries []string) {
		lines = append(lines, listDimStyle.Render(strings.Repeat("─", 24)))
		lines = append(lines, entries...)
	}
	if m.Config.DisplayAttributes && bx.Kind() != uml.KindInterface {
		section(bx.Attributes())
	}
	if m.Config.DisplayMethods {
		section(bx.Methods())
	}
	out := previewStyle.Render(strings.Join(lines, "\n"))

	if notes := bx.Notes(); m.Config.DisplayNotes && len(notes) > 0 {
		out += "\n" + previewStyle.Render(noteStyle.Render(strings.Join(notes, "\n")))
	}
	return out
}

func (c *CLI) browseCommand() *cobra.Command {
	var path, output string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a catalog interactively and render the chosen box",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := loadCatalog(path)
			if err != nil {
				return err
			}

			model := NewBoxListModel(cat.Boxes(), c.Config.Render.UML())
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			result := final.(BoxListModel)
			if result.Selected == nil {
				return nil
			}

			dir := output
			if dir == "" {
				dir = c.Config.Output.Dir
			}
			if dir == "" {
				dir = "."
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			p := filepath.Join(dir, result.Selected.Name()+"."+sink.FormatSVG)
			if err := os.WriteFile(p, sink.RenderSVG(result.Selected, sink.WithConfig(result.Config), sink.WithMargin(c.Config.Render.Margin)), 0o644); err != nil {
				return err
			}
			printSuccess("Rendered %s", StyleHighlight.Render(result.Selected.Name()))
			printFile(p, false)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "catalog", "c", "", "TOML catalog file (default: built-in cli2 catalog)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory for the chosen box")
	return cmd
}
