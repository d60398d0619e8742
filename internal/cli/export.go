package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/catalog"
)

func (c *CLI) exportCommand() *cobra.Command {
	var path, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a catalog as TOML",
		Long: `Export writes the catalog, by default the built-in cli2 catalog, as an
editable TOML file that render and sheet accept through --catalog.`,
		Example: `  umlsvg export -o cli2.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := loadCatalog(path)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := catalog.Encode(w, cat); err != nil {
				return err
			}
			if output != "" && output != "-" {
				loggerFromContext(cmd.Context()).Info("Exported", "boxes", cat.Len(), "sheets", len(cat.Sheets()), "file", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "catalog", "c", "", "TOML catalog file (default: built-in cli2 catalog)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
