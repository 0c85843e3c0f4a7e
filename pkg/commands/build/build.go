package build

import (
	"time"

	"github.com/arthur-debert/svgset/pkg/config"
	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/export"
	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/importer"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/naming"
	"github.com/arthur-debert/svgset/pkg/pipeline"
	"github.com/arthur-debert/svgset/pkg/types"
)

// BuildOptions holds options for the build command
type BuildOptions struct {
	// Config is the effective configuration. Defaults are used when nil.
	Config *config.Config
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
	// DryRun runs the whole pass but does not write the manifest.
	DryRun bool
}

// BuildResult describes one build
type BuildResult struct {
	Source   string
	Output   string
	Format   export.Format
	DryRun   bool
	Written  bool
	Report   *pipeline.Report
	Manifest *iconset.Manifest
}

// Build imports the source directory, runs every icon through the pipeline
// and writes the manifest. The manifest is only written once the whole pass
// has succeeded.
func Build(opts BuildOptions) (*BuildResult, error) {
	logger := logging.GetLogger("commands.build")
	defer logging.LogDuration(time.Now(), "build")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	if cfg.Source.Dir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no source directory given")
	}

	result := &BuildResult{
		Source: cfg.Source.Dir,
		Output: cfg.Output.Path,
		Format: format,
		DryRun: opts.DryRun,
	}

	logger.Info().
		Str("source", cfg.Source.Dir).
		Str("output", cfg.Output.Path).
		Str("prefix", cfg.Naming.Prefix).
		Msg("Starting build")

	stripTokens := cfg.Naming.StripTokens
	set, err := importer.ImportDirectory(fs, cfg.Source.Dir, importer.Options{
		Prefix:         cfg.Naming.Prefix,
		IncludeSubdirs: cfg.Source.IncludeSubdirs,
		Extensions:     cfg.Source.Extensions,
		Keyword: func(_ importer.File, defaultKeyword string) string {
			return naming.StripTokens(defaultKeyword, stripTokens)
		},
	})
	if err != nil {
		return nil, err
	}

	p := pipeline.New(pipeline.Options{
		Precision:     cfg.Optimize.Precision,
		BrandPrefixes: cfg.Naming.BrandPrefixes,
	})
	report, err := p.Run(set)
	result.Report = report
	if err != nil {
		return result, err
	}

	manifest, err := set.Export()
	if err != nil {
		return result, err
	}
	result.Manifest = manifest

	if opts.DryRun {
		logger.Info().Msg("Dry run, manifest not written")
		return result, nil
	}

	if err := export.Write(fs, cfg.Output.Path, manifest, export.Options{
		Format: format,
		Pretty: cfg.Output.Pretty,
	}); err != nil {
		return result, err
	}
	result.Written = true

	logger.Info().
		Int("icons", len(manifest.Icons)).
		Int("aliases", len(manifest.Aliases)).
		Int("failed", len(report.Failures)).
		Msg("Build finished")
	return result, nil
}
