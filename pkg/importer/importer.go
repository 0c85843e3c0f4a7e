// Package importer walks a source directory and loads icon files into a
// fresh icon set as raw, unprocessed entries.
package importer

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/naming"
	"github.com/arthur-debert/svgset/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// InfoFile is read from the source root, when present, into the set info.
const InfoFile = "info.toml"

// File describes one imported file.
type File struct {
	// Path is the full path of the file.
	Path string
	// Subdir is the directory relative to the root, slash separated, empty
	// for files directly under the root.
	Subdir string
	// Name is the base file name without extension.
	Name string
	Ext  string
}

// KeywordFunc derives the Logical Name of a file. It must be pure: the
// same file and default keyword always give the same result. Returning an
// empty string skips the file.
type KeywordFunc func(file File, defaultKeyword string) string

// Options configures ImportDirectory.
type Options struct {
	Prefix         string
	IncludeSubdirs bool
	// Extensions lists accepted file extensions, case-insensitive.
	// Defaults to .svg.
	Extensions []string
	Keyword    KeywordFunc
}

// ImportDirectory reads every matching file under root into a new icon set.
// Directories are walked in lexical order, hidden files and directories are
// ignored. When two files derive the same Logical Name the first one wins.
// A directory that cannot be read aborts the import.
func ImportDirectory(fs types.FS, root string, opts Options) (*iconset.IconSet, error) {
	logger := logging.GetLogger("importer")

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".svg"}
	}
	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = true
	}

	keyword := opts.Keyword
	if keyword == nil {
		keyword = func(_ File, defaultKeyword string) string { return defaultKeyword }
	}

	set := iconset.New(opts.Prefix)

	info, err := readInfo(fs, root)
	if err != nil {
		return nil, err
	}
	set.Info = info

	var walk func(dir, subdir string) error
	walk = func(dir, subdir string) error {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrSourceRead, "cannot read directory %s", dir).
				WithDetail("path", dir)
		}

		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			full := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				if !opts.IncludeSubdirs {
					continue
				}
				if err := walk(full, path.Join(subdir, entry.Name())); err != nil {
					return err
				}
				continue
			}

			ext := filepath.Ext(entry.Name())
			if !accepted[strings.ToLower(ext)] {
				continue
			}

			file := File{
				Path:   full,
				Subdir: subdir,
				Name:   strings.TrimSuffix(entry.Name(), ext),
				Ext:    ext,
			}
			name := keyword(file, naming.DefaultKeyword(entry.Name()))
			if name == "" {
				logger.Debug().Str("path", full).Msg("Skipping file with empty keyword")
				continue
			}
			if _, exists := set.Entry(name); exists {
				logger.Warn().Str("path", full).Str("icon", name).Msg("Duplicate icon name, keeping the first file")
				continue
			}

			data, err := fs.ReadFile(full)
			if err != nil {
				return errors.Wrapf(err, errors.ErrSourceRead, "cannot read %s", full).
					WithDetail("path", full)
			}
			if err := set.Add(name, iconset.EntryIcon, data); err != nil {
				return err
			}
			logger.Trace().Str("path", full).Str("icon", name).Msg("Imported icon")
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}

	logger.Info().Str("root", root).Int("icons", set.Len()).Msg("Imported source directory")
	return set, nil
}

func readInfo(fs types.FS, root string) (*iconset.Info, error) {
	infoPath := filepath.Join(root, InfoFile)
	if _, err := fs.Stat(infoPath); err != nil {
		return nil, nil
	}

	data, err := fs.ReadFile(infoPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceInfo, "cannot read %s", infoPath)
	}

	var info iconset.Info
	if err := toml.Unmarshal(data, &info); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceInfo, "invalid %s", infoPath)
	}
	return &info, nil
}
