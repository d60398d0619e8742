package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/umlsvg/pkg/catalog"
	"github.com/matzehuels/umlsvg/pkg/errors"
	"github.com/matzehuels/umlsvg/pkg/server"
	"github.com/matzehuels/umlsvg/pkg/sink"
	"github.com/matzehuels/umlsvg/pkg/uml"
)

const configFile = "config.toml"

// Config is the settings file. Flags override it; zero-valued keys that
// are absent keep the defaults.
//
//	[render]
//	attributes = true
//	methods = true
//	notes = false
//	padding = 10
//	text_height = 10
//	width = 200   # overrides declared box widths
//
//	[server]
//	addr = ":8080"
//	cache_ttl = "1h"
//	redis_addr = "localhost:6379"
//
//	[output]
//	dir = "site/images"
//	formats = ["svg", "png"]
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
}

type RenderConfig struct {
	Attributes bool    `toml:"attributes"`
	Methods    bool    `toml:"methods"`
	Notes      bool    `toml:"notes"`
	Padding    float64 `toml:"padding"`
	TextHeight float64 `toml:"text_height"`
	Width      float64 `toml:"width"`
	Margin     float64 `toml:"margin"`
	Scale      float64 `toml:"scale"`
}

type ServerConfig struct {
	Addr      string        `toml:"addr"`
	CacheTTL  time.Duration `toml:"cache_ttl"`
	RedisAddr string        `toml:"redis_addr"`
}

type OutputConfig struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Attributes: true,
			Methods:    true,
			Notes:      true,
			Padding:    uml.DefaultPadding,
			TextHeight: uml.DefaultTextHeight,
			Margin:     sink.DefaultMargin,
			Scale:      sink.DefaultScale,
		},
		Server: ServerConfig{
			Addr:     ":8080",
			CacheTTL: server.DefaultCacheTTL,
		},
		Output: OutputConfig{
			Dir:     ".",
			Formats: []string{sink.FormatSVG},
		},
	}
}

// LoadConfig reads path over the defaults. With an empty path the user
// config file is used if it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate rejects non-positive text metrics, negative sizes and unknown
// output formats.
func (c Config) Validate() error {
	r := c.Render
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"render.padding", r.Padding},
		{"render.text_height", r.TextHeight},
	} {
		if v.val <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive", v.name)
		}
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"render.width", r.Width},
		{"render.margin", r.Margin},
		{"render.scale", r.Scale},
	} {
		if v.val < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative", v.name)
		}
	}
	if len(c.Output.Formats) > 0 {
		if err := errors.ValidateFormats(c.Output.Formats, sink.ValidFormats); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.formats")
		}
	}
	return nil
}

// UML converts the render section to a drawing config.
func (r RenderConfig) UML() uml.Config {
	return uml.Config{
		DisplayAttributes: r.Attributes,
		DisplayMethods:    r.Methods,
		DisplayNotes:      r.Notes,
		Padding:           r.Padding,
		TextHeight:        r.TextHeight,
	}
}

// applyWidth sets every box in c to width w. Zero keeps declared widths.
func applyWidth(c *catalog.Catalog, w float64) {
	if w <= 0 {
		return
	}
	for _, b := range c.Boxes() {
		b.Width = w
	}
}
