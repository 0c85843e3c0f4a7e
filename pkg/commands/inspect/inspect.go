package inspect

import (
	"sort"

	"github.com/arthur-debert/svgset/pkg/export"
	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/types"
)

// InspectOptions holds options for the inspect command
type InspectOptions struct {
	Path       string
	FileSystem types.FS
}

// IconRow is one icon of the manifest
type IconRow struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Bytes is the length of the body markup.
	Bytes int `json:"bytes"`
	// Aliases lists the aliases pointing at this icon.
	Aliases []string `json:"aliases,omitempty"`
}

// AliasRow is one alias of the manifest
type AliasRow struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

// InspectResult is a sorted view of a manifest
type InspectResult struct {
	Path    string     `json:"path"`
	Prefix  string     `json:"prefix"`
	Icons   []IconRow  `json:"icons"`
	Aliases []AliasRow `json:"aliases"`
	// Dangling lists aliases whose parent is not in the manifest.
	Dangling []string `json:"dangling,omitempty"`
}

// Inspect loads a manifest and lists its icons and aliases by name.
func Inspect(opts InspectOptions) (*InspectResult, error) {
	log := logging.GetLogger("commands.inspect")
	log.Debug().Str("command", "Inspect").Str("path", opts.Path).Msg("Executing command")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	m, err := export.Read(fs, opts.Path)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{
		Path:    opts.Path,
		Prefix:  m.Prefix,
		Icons:   make([]IconRow, 0, len(m.Icons)),
		Aliases: make([]AliasRow, 0, len(m.Aliases)),
	}

	byParent := make(map[string][]string)
	for name, a := range m.Aliases {
		result.Aliases = append(result.Aliases, AliasRow{Name: name, Parent: a.Parent})
		if _, ok := m.Icons[a.Parent]; !ok {
			result.Dangling = append(result.Dangling, name)
			continue
		}
		byParent[a.Parent] = append(byParent[a.Parent], name)
	}
	sort.Slice(result.Aliases, func(i, j int) bool { return result.Aliases[i].Name < result.Aliases[j].Name })
	sort.Strings(result.Dangling)

	for name, icon := range m.Icons {
		aliases := byParent[name]
		sort.Strings(aliases)
		result.Icons = append(result.Icons, IconRow{
			Name:    name,
			Width:   icon.Width,
			Height:  icon.Height,
			Bytes:   len(icon.Body),
			Aliases: aliases,
		})
	}
	sort.Slice(result.Icons, func(i, j int) bool { return result.Icons[i].Name < result.Icons[j].Name })

	if len(result.Dangling) > 0 {
		log.Warn().Strs("aliases", result.Dangling).Msg("Manifest has aliases without a parent icon")
	}
	log.Info().Str("command", "Inspect").Int("icons", len(result.Icons)).Int("aliases", len(result.Aliases)).Msg("Command finished")
	return result, nil
}
