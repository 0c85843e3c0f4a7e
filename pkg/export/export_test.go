// Test Type: Unit Test
// Description: Tests for manifest encoding, writing and reading

package export_test

import (
	"testing"

	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/export"
	"github.com/arthur-debert/svgset/pkg/filesystem"
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest(t *testing.T) *iconset.Manifest {
	t.Helper()
	set := iconset.New("aws")
	set.Info = &iconset.Info{Name: "AWS", License: "CC-BY-4.0"}
	require.NoError(t, set.Commit("ec2-64", &svg.Icon{Body: `<path d="M0 0h64v64H0z"/>`, Width: 64, Height: 64}))
	require.NoError(t, set.Commit("ec2-16", &svg.Icon{Body: `<rect width="16" height="16"/>`, Left: 1, Width: 16, Height: 16}))
	require.NoError(t, set.Alias("ec2", "ec2-64"))

	m, err := set.Export()
	require.NoError(t, err)
	return m
}

func TestEncodeJSON(t *testing.T) {
	m := sampleManifest(t)

	data, err := export.Encode(m, export.Options{Format: export.FormatJSON})
	require.NoError(t, err)

	want := `{"prefix":"aws","info":{"name":"AWS","license":"CC-BY-4.0"},` +
		`"icons":{"ec2-16":{"body":"<rect width=\"16\" height=\"16\"/>","left":1,"width":16,"height":16},` +
		`"ec2-64":{"body":"<path d=\"M0 0h64v64H0z\"/>","width":64,"height":64}},` +
		`"aliases":{"ec2":{"parent":"ec2-64"}}}` + "\n"
	assert.Equal(t, want, string(data))

	pretty, err := export.Encode(m, export.Options{Format: export.FormatJSON, Pretty: true})
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"prefix\": \"aws\",\n")
}

func TestEncodeIsDeterministic(t *testing.T) {
	m := sampleManifest(t)
	for _, format := range []export.Format{export.FormatJSON, export.FormatYAML} {
		first, err := export.Encode(m, export.Options{Format: format})
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := export.Encode(m, export.Options{Format: format})
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestWriteAndRead(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format export.Format
	}{
		{name: "json", path: "/out/logos/icons.json", format: export.FormatJSON},
		{name: "yaml", path: "/out/logos/icons.yaml", format: export.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemory()
			m := sampleManifest(t)

			require.NoError(t, export.Write(fs, tt.path, m, export.Options{Format: tt.format, Pretty: true}))

			got, err := export.Read(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, m, got)
		})
	}
}

func TestReadErrors(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := export.Read(fs, "/missing.json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))

	require.NoError(t, fs.WriteFile("/broken.json", []byte("{"), 0644))
	_, err = export.Read(fs, "/broken.json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{in: "json", want: export.FormatJSON},
		{in: "", want: export.FormatJSON},
		{in: "YAML", want: export.FormatYAML},
		{in: "yml", want: export.FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrManifestFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, export.FormatYAML, export.FormatFromPath("icons.YML"))
	assert.Equal(t, export.FormatJSON, export.FormatFromPath("icons"))
}
