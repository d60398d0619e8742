// Package cli implements the umlsvg command-line interface.
//
// Commands render boxes and package sheets from the built-in cli2 catalog
// or a TOML catalog file, list and export catalogs, browse them
// interactively and serve them over HTTP. Every command accepts --verbose
// for debug logging and --config for a TOML settings file.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/umlsvg/pkg/cache"
	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/sink"
)

const appName = "umlsvg"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir follows XDG: $XDG_CACHE_HOME/umlsvg or ~/.cache/umlsvg.
func cacheDir() (string, error) {
	if h := os.Getenv("XDG_CACHE_HOME"); h != "" {
		return filepath.Join(h, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir follows XDG: $XDG_CONFIG_HOME/umlsvg or ~/.config/umlsvg.
func configDir() (string, error) {
	if h := os.Getenv("XDG_CONFIG_HOME"); h != "" {
		return filepath.Join(h, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadCatalog reads a TOML catalog, or the built-in one when path is empty.
// The source bytes are returned for cache keying.
func loadCatalog(path string) (*catalog.Catalog, []byte, error) {
	if path == "" {
		return catalog.CLI2(), catalog.CLI2Source(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return c, src, nil
}

// parseFormats splits a comma-separated format list, defaulting to svg.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{sink.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
