package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/buildinfo"
	"github.com/matzehuels/umlsvg/pkg/observability"
)

// RootCommand creates the umlsvg command tree.
//
// The persistent pre-run raises the log level for --verbose, loads the
// config file, attaches the logger to the command context and routes
// render and cache events to the logger.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "umlsvg draws UML class boxes and package symbols as SVG",
		Long: `umlsvg renders UML class and interface boxes, with optional note callouts,
and package symbols holding placed boxes. Diagrams come from the built-in cli2
catalog or from a TOML catalog file and can be written as SVG, PNG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetRenderHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/umlsvg/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sheetCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
