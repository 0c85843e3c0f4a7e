package genconfig

import (
	"github.com/arthur-debert/svgset/pkg/config"
	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/types"
)

// GenConfigOptions holds options for the config command
type GenConfigOptions struct {
	// Config is the configuration to render. Defaults are used when nil.
	Config *config.Config
	// Write saves the configuration instead of only returning it.
	Write bool
	// Path is where Write saves it, config.DefaultConfigFile when empty.
	Path       string
	FileSystem types.FS
}

// GenConfigResult holds the rendered configuration
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig renders the effective configuration as TOML and optionally
// writes it. An existing file is never overwritten.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	content, err := cfg.ToTOML()
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigFile
	}

	if _, err := fs.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, path)
	return result, nil
}
