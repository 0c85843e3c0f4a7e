package config

import (
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
)

// Output formats understood by the exporter.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxPrecision bounds optimize.precision.
const MaxPrecision = 8

// Config is the effective svgset configuration.
type Config struct {
	Source   Source   `koanf:"source" toml:"source"`
	Naming   Naming   `koanf:"naming" toml:"naming"`
	Optimize Optimize `koanf:"optimize" toml:"optimize"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Source holds where icons are imported from
type Source struct {
	Dir            string   `koanf:"dir" toml:"dir"`
	IncludeSubdirs bool     `koanf:"include_subdirs" toml:"include_subdirs"`
	Extensions     []string `koanf:"extensions" toml:"extensions"`
}

// Naming holds the Logical Name rules
type Naming struct {
	// Prefix is the icon set prefix written to the manifest
	Prefix string `koanf:"prefix" toml:"prefix"`
	// StripTokens are removed from every derived keyword
	StripTokens []string `koanf:"strip_tokens" toml:"strip_tokens"`
	// BrandPrefixes are leading tokens dropped when computing the base concept
	BrandPrefixes []string `koanf:"brand_prefixes" toml:"brand_prefixes"`
}

// Optimize holds optimizer settings. A negative precision disables rounding.
type Optimize struct {
	Precision int `koanf:"precision" toml:"precision"`
}

// Output holds manifest settings
type Output struct {
	Path   string `koanf:"path" toml:"path"`
	Format string `koanf:"format" toml:"format"`
	Pretty bool   `koanf:"pretty" toml:"pretty"`
}

// Validate checks the configuration and normalises values that have a
// canonical form.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unsupported output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}

	if strings.TrimSpace(c.Naming.Prefix) == "" {
		return errors.New(errors.ErrConfigValid, "naming.prefix must not be empty").
			WithDetail("key", "naming.prefix")
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New(errors.ErrConfigValid, "output.path must not be empty").
			WithDetail("key", "output.path")
	}
	if c.Optimize.Precision > MaxPrecision {
		return errors.Newf(errors.ErrConfigValid, "optimize.precision must be at most %d", MaxPrecision).
			WithDetail("key", "optimize.precision")
	}

	for i, ext := range c.Source.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Source.Extensions[i] = ext
	}
	return nil
}
