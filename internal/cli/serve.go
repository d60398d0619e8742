package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/umlsvg/pkg/cache"
	"github.com/matzehuels/umlsvg/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var path, addr, redisAddr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve catalog diagrams over HTTP",
		Long: `Serve renders boxes and sheets on request:

  GET /boxes/Option.svg?notes=false
  GET /sheets/org.apache.commons.cli2.option?format=png

Renderings are cached in Redis when --redis is given, otherwise in the
local cache directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cat, _, err := loadCatalog(path)
			if err != nil {
				return err
			}
			applyWidth(cat, c.Config.Render.Width)

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if redisAddr == "" {
				redisAddr = c.Config.Server.RedisAddr
			}

			var ch cache.Cache
			switch {
			case noCache:
				ch = cache.NewNullCache()
			case redisAddr != "":
				ch, err = cache.NewRedisCache(ctx, redisAddr)
				if err != nil {
					return err
				}
				logger.Info("Using redis cache", "addr", redisAddr)
			default:
				ch = c.newCache(false)
			}
			defer ch.Close()

			srv := server.New(cat,
				server.WithConfig(c.Config.Render.UML()),
				server.WithMargin(c.Config.Render.Margin),
				server.WithCache(ch, c.Config.Server.CacheTTL),
				server.WithLogger(logger),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVarP(&path, "catalog", "c", "", "TOML catalog file (default: built-in cli2 catalog)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the render cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	return cmd
}
