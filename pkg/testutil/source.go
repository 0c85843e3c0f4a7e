package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/arthur-debert/svgset/pkg/types"
	"github.com/stretchr/testify/require"
)

// BrokenSVG does not parse.
const BrokenSVG = `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0"`

// ScriptSVG parses but is rejected by cleanup.
const ScriptSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><script>alert(1)</script><path d="M0 0h16v16H0z"/></svg>`

// SVG returns a valid square icon of the given size whose single path
// covers the whole box.
func SVG(size int) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %[1]d %[1]d"><path d="M0 0h%[1]dv%[1]dH0z"/></svg>`, size)
}

// SVGBody is the manifest body produced from SVG(size).
func SVGBody(size int) string {
	return fmt.Sprintf(`<path d="M0 0h%[1]dv%[1]dH0z"/>`, size)
}

// SourceTree builds an icon source directory on an in-memory filesystem
type SourceTree struct {
	FS   types.FS
	Root string
}

// NewSourceTree creates an empty source directory at /src
func NewSourceTree(t *testing.T) *SourceTree {
	t.Helper()

	fs := filesystem.NewMemory()
	root := "/src"
	require.NoError(t, fs.MkdirAll(root, 0755))
	return &SourceTree{FS: fs, Root: root}
}

// AddFile writes content at a path relative to the root
func (s *SourceTree) AddFile(t *testing.T, rel, content string) string {
	t.Helper()

	full := filepath.Join(s.Root, rel)
	require.NoError(t, s.FS.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, s.FS.WriteFile(full, []byte(content), 0644))
	return full
}

// AddIcon writes a valid icon of the given size
func (s *SourceTree) AddIcon(t *testing.T, rel string, size int) string {
	t.Helper()
	return s.AddFile(t, rel, SVG(size))
}
