package iconset

import (
	"github.com/arthur-debert/svgset/pkg/errors"
)

// Manifest is the serialisable form of an IconSet.
type Manifest struct {
	Prefix  string                   `json:"prefix" yaml:"prefix"`
	Info    *Info                    `json:"info,omitempty" yaml:"info,omitempty"`
	Icons   map[string]ManifestIcon  `json:"icons" yaml:"icons"`
	Aliases map[string]ManifestAlias `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// ManifestIcon is the committed content of one Logical Name.
type ManifestIcon struct {
	Body   string  `json:"body" yaml:"body"`
	Left   float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Top    float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ManifestAlias points at a canonical icon.
type ManifestAlias struct {
	Parent string `json:"parent" yaml:"parent"`
}

// Export builds the manifest. Only committed icon entries are written;
// raw and metadata entries are left out. An alias whose target is not in
// the manifest is an error.
func (s *IconSet) Export() (*Manifest, error) {
	m := &Manifest{
		Prefix: s.Prefix,
		Info:   s.Info,
		Icons:  make(map[string]ManifestIcon),
	}

	for name, e := range s.entries {
		if e.Type != EntryIcon || !e.Committed() {
			continue
		}
		m.Icons[name] = ManifestIcon{
			Body:   e.Icon.Body,
			Left:   e.Icon.Left,
			Top:    e.Icon.Top,
			Width:  e.Icon.Width,
			Height: e.Icon.Height,
		}
	}

	if len(s.aliases) > 0 {
		m.Aliases = make(map[string]ManifestAlias, len(s.aliases))
	}
	for alias, target := range s.aliases {
		if _, ok := m.Icons[target]; !ok {
			return nil, errors.Newf(errors.ErrInvalidAliasTarget, "alias %q targets %q which is not exported", alias, target)
		}
		m.Aliases[alias] = ManifestAlias{Parent: target}
	}

	return m, nil
}
