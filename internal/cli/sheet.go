package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

func (c *CLI) sheetCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "sheet [package...]",
		Short: "Render package sheets with their placed boxes",
		Long: `Sheet draws a package symbol with every member box at its declared offset
and writes <package>.<format> into the output directory.`,
		Example: `  umlsvg sheet org.apache.commons.cli2.option -f svg,pdf
  umlsvg sheet --all --catalog widgets.toml`,
		ValidArgsFunction: completeSheetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheet(cmd.Context(), args, &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "render every sheet in the catalog")
	return cmd
}

func (c *CLI) runSheet(ctx context.Context, names []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	rs, err := c.settings(opts)
	if err != nil {
		return err
	}
	cat, src, err := loadCatalog(opts.catalog)
	if err != nil {
		return err
	}
	applyWidth(cat, rs.width)

	var sheets []*catalog.Sheet
	if opts.all {
		sheets = cat.Sheets()
	}
	for _, name := range names {
		s, err := cat.Sheet(name)
		if err != nil {
			return err
		}
		sheets = append(sheets, s)
	}
	if len(sheets) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "name at least one package or pass --all")
	}

	if err := os.MkdirAll(rs.dir, 0o755); err != nil {
		return err
	}
	ch := c.newCache(opts.noCache)
	defer ch.Close()
	keyer := catalogKeyer(src)

	prog := newProgress(logger)
	for _, s := range sheets {
		if err := errors.ValidateName(s.Name()); err != nil {
			return err
		}
		logger.Debug("sheet", "package", s.Name(), "members", len(s.Members))
		for _, format := range rs.formats {
			key := keyer.ArtifactKey(s.Name(), rs.artifactOpts(uml.KindPackage, format))
			data, cached, err := renderArtifact(ctx, ch, key, s.Name(), format, func() ([]byte, error) {
				return sink.RenderSheet(s, cat, format, rs.scale, rs.svgOptions()...)
			})
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "%s.%s", s.Name(), format)
			}
			path := filepath.Join(rs.dir, s.Name()+"."+format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			printFile(path, cached)
			prog.add()
		}
	}
	prog.done("Rendered")
	return nil
}
