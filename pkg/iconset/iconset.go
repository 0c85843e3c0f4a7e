package iconset

import (
	"sort"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/svg"
)

// EntryType tags what an imported entry holds.
type EntryType int

const (
	// EntryIcon is an icon file that goes through the cleanup pipeline.
	EntryIcon EntryType = iota
	// EntryMetadata is a non-icon entry carried along untouched.
	EntryMetadata
)

func (t EntryType) String() string {
	switch t {
	case EntryIcon:
		return "icon"
	case EntryMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// Entry is one Logical Name in the set.
type Entry struct {
	Type EntryType
	Raw  []byte
	// Icon is nil until the entry is committed.
	Icon *svg.Icon
}

// Committed reports whether normalised content has been committed.
func (e *Entry) Committed() bool {
	return e.Icon != nil
}

// Info describes the icon set as a whole.
type Info struct {
	Name    string `toml:"name" json:"name,omitempty" yaml:"name,omitempty"`
	Author  string `toml:"author" json:"author,omitempty" yaml:"author,omitempty"`
	License string `toml:"license" json:"license,omitempty" yaml:"license,omitempty"`
	URL     string `toml:"url" json:"url,omitempty" yaml:"url,omitempty"`
}

// IconSet maps Logical Names to entries plus an alias table.
type IconSet struct {
	Prefix string
	Info   *Info

	entries map[string]*Entry
	aliases map[string]string
}

// New creates an empty set for prefix.
func New(prefix string) *IconSet {
	return &IconSet{
		Prefix:  prefix,
		entries: make(map[string]*Entry),
		aliases: make(map[string]string),
	}
}

// Add inserts a raw entry. Names must be non-empty and unique.
func (s *IconSet) Add(name string, typ EntryType, raw []byte) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "entry name cannot be empty")
	}
	if _, ok := s.entries[name]; ok {
		return errors.Newf(errors.ErrInvalidInput, "entry %q already exists", name).
			WithDetail("name", name)
	}
	s.entries[name] = &Entry{Type: typ, Raw: raw}
	return nil
}

// Entry returns the entry stored under name.
func (s *IconSet) Entry(name string) (*Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Commit stores icon under name, inserting or overwriting an icon entry.
// If name was registered as an alias, the alias is dropped.
func (s *IconSet) Commit(name string, icon *svg.Icon) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "cannot commit an icon without a name")
	}
	if icon == nil {
		return errors.Newf(errors.ErrInvalidInput, "cannot commit empty content for %q", name)
	}

	delete(s.aliases, name)
	if e, ok := s.entries[name]; ok {
		e.Type = EntryIcon
		e.Icon = icon
		return nil
	}
	s.entries[name] = &Entry{Type: EntryIcon, Icon: icon}
	return nil
}

// Exists reports whether name holds a committed icon. Raw imported entries
// and aliases do not count.
func (s *IconSet) Exists(name string) bool {
	e, ok := s.entries[name]
	return ok && e.Type == EntryIcon && e.Committed()
}

// Alias points alias at canonical. canonical must be a committed icon entry;
// aliases of aliases are rejected. An alias name equal to an existing entry
// is rejected with ErrAliasShadowsIcon.
func (s *IconSet) Alias(alias, canonical string) error {
	if alias == "" || canonical == "" {
		return errors.New(errors.ErrInvalidInput, "alias and target names cannot be empty")
	}
	if alias == canonical {
		return errors.Newf(errors.ErrInvalidAliasTarget, "alias %q cannot point at itself", alias)
	}
	if _, isAlias := s.aliases[canonical]; isAlias {
		return errors.Newf(errors.ErrInvalidAliasTarget, "alias %q targets alias %q", alias, canonical).
			WithDetail("alias", alias).
			WithDetail("target", canonical)
	}
	if !s.Exists(canonical) {
		return errors.Newf(errors.ErrInvalidAliasTarget, "alias %q targets %q which is not a committed icon", alias, canonical).
			WithDetail("alias", alias).
			WithDetail("target", canonical)
	}
	if _, ok := s.entries[alias]; ok {
		return errors.Newf(errors.ErrAliasShadowsIcon, "alias %q would shadow an icon of the same name", alias).
			WithDetail("alias", alias).
			WithDetail("target", canonical)
	}

	s.aliases[alias] = canonical
	return nil
}

// AliasTarget returns the canonical name for alias.
func (s *IconSet) AliasTarget(alias string) (string, bool) {
	target, ok := s.aliases[alias]
	return target, ok
}

// Remove deletes the entry or alias stored under name. Aliases targeting a
// removed entry are removed with it.
func (s *IconSet) Remove(name string) {
	delete(s.aliases, name)
	if _, ok := s.entries[name]; !ok {
		return
	}
	delete(s.entries, name)
	for alias, target := range s.aliases {
		if target == name {
			delete(s.aliases, alias)
		}
	}
}

// Names returns all entry names in lexical order.
func (s *IconSet) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AliasNames returns all alias names in lexical order.
func (s *IconSet) AliasNames() []string {
	names := make([]string, 0, len(s.aliases))
	for name := range s.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (s *IconSet) Len() int {
	return len(s.entries)
}
