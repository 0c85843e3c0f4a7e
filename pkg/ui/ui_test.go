package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/svgset/pkg/commands/build"
	"github.com/arthur-debert/svgset/pkg/commands/genconfig"
	"github.com/arthur-debert/svgset/pkg/commands/inspect"
	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/export"
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/naming"
	"github.com/arthur-debert/svgset/pkg/pipeline"
	"github.com/arthur-debert/svgset/pkg/resolver"
	"github.com/arthur-debert/svgset/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuild() *build.BuildResult {
	return &build.BuildResult{
		Source:  "files/svg",
		Output:  "logos/aws/icons.json",
		Format:  export.FormatJSON,
		Written: true,
		Report: &pipeline.Report{
			Processed: 4,
			Committed: []string{"a-16", "a-32", "thing-64"},
			Failures: []pipeline.Failure{
				{Name: "broken", Stage: pipeline.StageParse, Err: errors.New(errors.ErrSVGParse, "malformed XML")},
			},
			Shadowed: []string{"thing"},
			Divergences: []resolver.Plan{
				{Name: "a-16", Stem: "a", Base: "a", Tier: naming.Tier16, Alias: false, TierLoopAlias: true},
			},
		},
		Manifest: &iconset.Manifest{
			Prefix: "aws",
			Icons: map[string]iconset.ManifestIcon{
				"a-16":     {Body: "<path/>", Width: 16, Height: 16},
				"a-32":     {Body: "<path/>", Width: 32, Height: 32},
				"thing-64": {Body: "<path/>", Width: 64, Height: 64},
			},
			Aliases: map[string]iconset.ManifestAlias{"a": {Parent: "a-32"}},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "create terminal renderer", format: ui.FormatTerminal},
		{name: "create text renderer", format: ui.FormatText},
		{name: "create json renderer", format: ui.FormatJSON},
		{name: "create auto renderer with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderer, err := ui.NewRenderer(tt.format, &buf)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestTextRendererBuild(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleBuild()))

	out := buf.String()
	assert.Contains(t, out, "Built logos/aws/icons.json")
	assert.Contains(t, out, "  icons:     3\n")
	assert.Contains(t, out, "  aliases:   1\n")
	assert.Contains(t, out, "  failed:    1\n")
	assert.Contains(t, out, "discarded broken (parse): [SVG_PARSE] malformed XML")
	assert.Contains(t, out, "alias thing skipped")
	assert.Contains(t, out, "alias rules disagree for a-16 (base a, applied alias=false, tier order alias=true)")
}

func TestJSONRendererBuild(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleBuild()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(3), got["icons"])
	assert.Equal(t, float64(4), got["processed"])

	failures := got["failures"].([]interface{})
	require.Len(t, failures, 1)
	failure := failures[0].(map[string]interface{})
	assert.Equal(t, "broken", failure["name"])
	assert.Equal(t, "SVG_PARSE", failure["code"])
	assert.Equal(t, "parse", failure["stage"])
}

func TestJSONRendererError(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	err = errors.New(errors.ErrSourceRead, "cannot read").WithDetail("path", "/src")
	require.NoError(t, renderer.RenderError(err))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "SOURCE_READ", got["code"])
	assert.Equal(t, map[string]interface{}{"path": "/src"}, got["details"])
}

func TestInspectRenderers(t *testing.T) {
	res := &inspect.InspectResult{
		Path:   "icons.json",
		Prefix: "aws",
		Icons: []inspect.IconRow{
			{Name: "ec2-64", Width: 64, Height: 64, Bytes: 20, Aliases: []string{"ec2"}},
		},
		Aliases:  []inspect.AliasRow{{Name: "ec2", Parent: "ec2-64"}},
		Dangling: []string{"lost"},
	}

	for _, format := range []ui.Format{ui.FormatText, ui.FormatTerminal} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			renderer, err := ui.NewRenderer(format, &buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderResult(res))

			out := buf.String()
			assert.Contains(t, out, "icons.json (aws): 1 icons, 1 aliases")
			assert.Contains(t, out, "ec2-64")
			assert.Contains(t, out, "64x64")
			assert.Contains(t, out, "lost")
		})
	}
}

func TestGenConfigRendering(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&genconfig.GenConfigResult{ConfigContent: "[naming]\n"}))
	assert.Equal(t, "[naming]\n", buf.String())

	buf.Reset()
	require.NoError(t, renderer.RenderResult(&genconfig.GenConfigResult{FilesWritten: []string{"svgset.toml"}}))
	assert.Equal(t, "Wrote svgset.toml\n", buf.String())
}
