package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/cache"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/observability"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

// renderOpts holds the flags shared by render and sheet.
type renderOpts struct {
	catalog      string
	output       string
	formats      string
	all          bool
	noAttributes bool
	noMethods    bool
	noNotes      bool
	noCache      bool
	scale        float64
	width        float64
}

func (o *renderOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.catalog, "catalog", "c", "", "TOML catalog file (default: built-in cli2 catalog)")
	f.StringVarP(&o.output, "output", "o", "", "output directory (default from config, else current directory)")
	f.StringVarP(&o.formats, "format", "f", "", "output format(s): svg, png, pdf (comma-separated)")
	f.BoolVar(&o.noAttributes, "no-attributes", false, "hide attribute sections")
	f.BoolVar(&o.noMethods, "no-methods", false, "hide method sections")
	f.BoolVar(&o.noNotes, "no-notes", false, "hide note callouts")
	f.BoolVar(&o.noCache, "no-cache", false, "render without reading or writing the cache")
	f.Float64Var(&o.scale, "scale", 0, "PNG scale factor (default from config)")
	f.Float64Var(&o.width, "width", 0, "override every box width")
}

// renderSettings is the merged result of the config file and the flags.
type renderSettings struct {
	cfg     uml.Config
	formats []string
	dir     string
	scale   float64
	margin  float64
	width   float64
}

// svgOptions are the sink options every rendering of these settings uses.
func (s renderSettings) svgOptions() []sink.SVGOption {
	return []sink.SVGOption{sink.WithConfig(s.cfg), sink.WithMargin(s.margin)}
}

// settings merges the config file with the flags.
func (c *CLI) settings(o *renderOpts) (renderSettings, error) {
	cfg := c.Config.Render.UML()
	if o.noAttributes {
		cfg.DisplayAttributes = false
	}
	if o.noMethods {
		cfg.DisplayMethods = false
	}
	if o.noNotes {
		cfg.DisplayNotes = false
	}
	rs := renderSettings{cfg: cfg.Resolved(), margin: c.Config.Render.Margin}

	rs.formats = c.Config.Output.Formats
	if o.formats != "" || len(rs.formats) == 0 {
		rs.formats = parseFormats(o.formats)
	}
	if err := errors.ValidateFormats(rs.formats, sink.ValidFormats); err != nil {
		return rs, err
	}

	rs.dir = o.output
	if rs.dir == "" {
		rs.dir = c.Config.Output.Dir
	}
	if rs.dir == "" {
		rs.dir = "."
	}

	rs.scale = o.scale
	if rs.scale <= 0 {
		rs.scale = c.Config.Render.Scale
	}
	rs.width = o.width
	if rs.width <= 0 {
		rs.width = c.Config.Render.Width
	}
	return rs, nil
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [box...]",
		Short: "Render catalog boxes to SVG, PNG or PDF",
		Long: `Render writes one file per box and format, named <box>.<format>, into the
output directory. Pass box names or --all.`,
		Example: `  umlsvg render Option Group -f svg,png -o site/images
  umlsvg render --all --no-notes
  umlsvg render Widget --catalog widgets.toml`,
		ValidArgsFunction: completeBoxNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "render every box in the catalog")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, names []string, opts *renderOpts) error {
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

	if opts.all {
		names = cat.Names()
	}
	if len(names) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "name at least one box or pass --all")
	}
	logger.Debug("rendering", "catalog", cat.Name, "boxes", len(names), "formats", rs.formats, "dir", rs.dir)

	if err := os.MkdirAll(rs.dir, 0o755); err != nil {
		return err
	}
	ch := c.newCache(opts.noCache)
	defer ch.Close()
	keyer := catalogKeyer(src)

	prog := newProgress(logger)
	for _, name := range names {
		if err := errors.ValidateName(name); err != nil {
			return err
		}
		b, err := cat.Box(name)
		if err != nil {
			return err
		}
		for _, format := range rs.formats {
			key := keyer.ArtifactKey(name, rs.artifactOpts(b.Kind(), format))
			data, cached, err := renderArtifact(ctx, ch, key, name, format, func() ([]byte, error) {
				return sink.Render(b, format, rs.scale, rs.svgOptions()...)
			})
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "%s.%s", name, format)
			}
			path := filepath.Join(rs.dir, name+"."+format)
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

// catalogKeyer scopes cache keys to the catalog's content, so editing a
// catalog file never serves stale renderings.
func catalogKeyer(src []byte) cache.Keyer {
	return cache.NewScopedKeyer(nil, cache.Hash(src)[:16]+":")
}

// artifactOpts lists every setting that changes the bytes of one rendering.
func (s renderSettings) artifactOpts(kind uml.Kind, format string) cache.ArtifactKeyOpts {
	cfg := s.cfg.Resolved()
	o := cache.ArtifactKeyOpts{
		Kind:       kind.String(),
		Format:     format,
		Attributes: cfg.DisplayAttributes,
		Methods:    cfg.DisplayMethods,
		Notes:      cfg.DisplayNotes,
		Padding:    cfg.Padding,
		TextHeight: cfg.TextHeight,
		Margin:     s.margin,
	}
	if format == sink.FormatPNG {
		o.Scale = s.scale
	}
	if s.width > 0 {
		o.Width = s.width
	}
	return o
}

// renderArtifact runs fn through the cache and the render hooks.
func renderArtifact(ctx context.Context, ch cache.Cache, key, name, format string, fn func() ([]byte, error)) ([]byte, bool, error) {
	return cache.Fetch(ctx, ch, key, "artifact", 0, func() ([]byte, error) {
		start := time.Now()
		observability.Render().OnRenderStart(ctx, name, format)
		data, err := fn()
		observability.Render().OnRenderComplete(ctx, name, format, len(data), time.Since(start), err)
		return data, err
	})
}
