package svgset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/svgset/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "icons")
	files := map[string]string{
		"Arch_Amazon-EC2_64.svg":      testutil.SVG(64),
		"Arch_Amazon-EC2_48.svg":      testutil.SVG(48),
		"nested/Res_Amazon-S3_32.svg": testutil.SVG(32),
		"nested/Res_Amazon-S3_16.svg": testutil.SVG(16),
		"Broken.svg":                  testutil.BrokenSVG,
	}
	for name, content := range files {
		path := filepath.Join(src, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return src
}

func TestBuildCommand(t *testing.T) {
	src := writeSource(t)
	out := filepath.Join(t.TempDir(), "dist", "icons.json")

	stdout, err := runCmd(t, "build", src, "-o", out, "--report", "json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, float64(4), report["icons"])
	assert.Equal(t, true, report["written"])
	assert.Len(t, report["failures"], 1)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var manifest struct {
		Prefix  string                       `json:"prefix"`
		Icons   map[string]json.RawMessage   `json:"icons"`
		Aliases map[string]map[string]string `json:"aliases"`
	}
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "aws", manifest.Prefix)
	assert.Len(t, manifest.Icons, 4)
	assert.Equal(t, "amazon-ec2-64", manifest.Aliases["ec2"]["parent"])
	assert.Equal(t, "amazon-s3-32", manifest.Aliases["s3"]["parent"])
}

func TestBuildCommandFlags(t *testing.T) {
	src := writeSource(t)
	out := filepath.Join(t.TempDir(), "icons.yaml")

	t.Run("no subdirs and yaml", func(t *testing.T) {
		_, err := runCmd(t, "build", src, "-o", out, "--format", "yaml", "--no-subdirs", "--prefix", "cloud", "--report", "text")
		require.NoError(t, err)

		stdout, err := runCmd(t, "inspect", out, "--report", "text")
		require.NoError(t, err)
		assert.Contains(t, stdout, "(cloud): 2 icons, 1 aliases")
		assert.NotContains(t, stdout, "amazon-s3")
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		dry := filepath.Join(t.TempDir(), "dry.json")
		stdout, err := runCmd(t, "build", src, "-o", dry, "--dry-run", "--report", "text")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Dry run")
		assert.NoFileExists(t, dry)
	})

	t.Run("strict fails on discarded icons", func(t *testing.T) {
		_, err := runCmd(t, "build", src, "-o", filepath.Join(t.TempDir(), "s.json"), "--strict", "--report", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 icon(s) failed")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runCmd(t, "build", src, "--format", "xml", "--report", "text")
		require.Error(t, err)
	})
}

func TestBuildCommandMissingSource(t *testing.T) {
	_, err := runCmd(t, "build", filepath.Join(t.TempDir(), "missing"), "-o", filepath.Join(t.TempDir(), "x.json"), "--report", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SOURCE_READ")
}

func TestConfigCommand(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[naming]\nprefix = \"mdi\"\n"), 0644))

	stdout, err := runCmd(t, "config", "--config", cfgFile, "--report", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[naming]")
	assert.Contains(t, stdout, "mdi")
}

func TestVersionCommand(t *testing.T) {
	stdout, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "svgset dev")
}

func TestCompletionCommand(t *testing.T) {
	stdout, err := runCmd(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "svgset")

	_, err = runCmd(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootWithoutCommand(t *testing.T) {
	_, err := runCmd(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
}

func TestHelpTopics(t *testing.T) {
	stdout, err := runCmd(t, "help", "topics")
	require.NoError(t, err)
	for _, name := range []string{"aliases", "cleanup", "manifest", "naming"} {
		assert.Contains(t, stdout, "  "+name+"\n")
	}

	stdout, err = runCmd(t, "help", "aliases")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Size variants and aliases")
}
