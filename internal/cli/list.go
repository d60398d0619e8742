package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/svg"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

func (c *CLI) listCommand() *cobra.Command {
	var path string
	var sheets bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog boxes with their computed heights",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := loadCatalog(path)
			if err != nil {
				return err
			}
			cfg := c.Config.Render.UML()

			printKeyValue("catalog", cat.Name)
			printKeyValue("boxes", strconv.Itoa(cat.Len()))
			printKeyValue("sheets", strconv.Itoa(len(cat.Sheets())))
			fmt.Fprintln(cmd.OutOrStdout())

			if sheets {
				fmt.Fprintln(cmd.OutOrStdout(), sheetTable(cat))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), boxTable(cat, cfg))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "catalog", "c", "", "TOML catalog file (default: built-in cli2 catalog)")
	cmd.Flags().BoolVar(&sheets, "sheets", false, "list package sheets instead of boxes")
	return cmd
}

func boxTable(cat *catalog.Catalog, cfg uml.Config) string {
	var rows [][]string
	for _, b := range cat.Boxes() {
		rows = append(rows, []string{
			b.Name(),
			b.Kind().String(),
			strconv.Itoa(len(b.Attributes())),
			strconv.Itoa(len(b.Methods())),
			strconv.Itoa(len(b.Notes())),
			svg.FormatFloat(b.Height(cfg)),
			svg.FormatFloat(b.Extent(cfg)),
		})
	}
	return styledTable(rows, "Box", "Kind", "Attrs", "Methods", "Notes", "Height", "Extent")
}

func sheetTable(cat *catalog.Catalog) string {
	var rows [][]string
	for _, s := range cat.Sheets() {
		w, h := s.Package.Size(uml.Config{})
		rows = append(rows, []string{
			s.Name(),
			svg.FormatFloat(w) + "x" + svg.FormatFloat(h),
			strconv.Itoa(len(s.Members)),
		})
	}
	return styledTable(rows, "Package", "Size", "Members")
}

func styledTable(rows [][]string, headers ...string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col >= 2:
				return StyleNumber
			}
			return StyleDim
		}).
		Render()
}
