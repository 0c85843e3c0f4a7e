// Package export writes and reads icon manifests.
package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/types"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrManifestFormat, "unknown manifest format: %s", s)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Options controls Encode and Write
type Options struct {
	Format Format
	// Pretty indents JSON output. YAML is always indented.
	Pretty bool
}

// Encode serialises a manifest. Map keys are emitted in sorted order so the
// same icon set always produces the same bytes.
func Encode(m *iconset.Manifest, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	switch opts.Format {
	case FormatJSON, "":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if opts.Pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestWrite, "failed to encode manifest")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestWrite, "failed to encode manifest")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestWrite, "failed to encode manifest")
		}
	default:
		return nil, errors.Newf(errors.ErrManifestFormat, "unknown manifest format: %s", opts.Format)
	}

	return buf.Bytes(), nil
}

// Write encodes the manifest and writes it to path, creating parent
// directories as needed.
func Write(fs types.FS, path string, m *iconset.Manifest, opts Options) error {
	logger := logging.GetLogger("export")

	data, err := Encode(m, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrManifestWrite, "cannot create %s", dir).
				WithDetail("path", path)
		}
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger.Info().
		Str("path", path).
		Str("format", string(opts.Format)).
		Int("icons", len(m.Icons)).
		Int("aliases", len(m.Aliases)).
		Msg("Wrote manifest")
	return nil
}

// Read loads a manifest written by Write. The format follows the file
// extension.
func Read(fs types.FS, path string) (*iconset.Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	var m iconset.Manifest
	switch FormatFromPath(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "invalid manifest %s", path).
			WithDetail("path", path)
	}
	if m.Icons == nil {
		m.Icons = map[string]iconset.ManifestIcon{}
	}
	return &m, nil
}
