// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/svgset/pkg/commands/build"
	"github.com/arthur-debert/svgset/pkg/commands/genconfig"
	"github.com/arthur-debert/svgset/pkg/commands/inspect"
	"github.com/arthur-debert/svgset/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *build.BuildResult:
		return r.renderBuild(display.NewBuildSummary(v))
	case *display.BuildSummary:
		return r.renderBuild(v)
	case *inspect.InspectResult:
		return r.renderInspect(v)
	case *genconfig.GenConfigResult:
		if len(v.FilesWritten) > 0 {
			return r.lines(prefixAll("Wrote ", v.FilesWritten)...)
		}
		_, err := io.WriteString(r.output, v.ConfigContent)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderBuild(s *display.BuildSummary) error {
	lines := []string{}
	if s.DryRun {
		lines = append(lines, fmt.Sprintf("Dry run, %s not written", s.Output))
	} else {
		lines = append(lines, fmt.Sprintf("Built %s", s.Output))
	}
	lines = append(lines,
		fmt.Sprintf("  source:    %s", s.Source),
		fmt.Sprintf("  format:    %s", s.Format),
		fmt.Sprintf("  processed: %d", s.Processed),
		fmt.Sprintf("  icons:     %d", s.Icons),
		fmt.Sprintf("  aliases:   %d", s.Aliases),
		fmt.Sprintf("  failed:    %d", len(s.Failures)),
	)
	for _, f := range s.Failures {
		lines = append(lines, fmt.Sprintf("  discarded %s (%s): %s", f.Name, f.Stage, f.Error))
	}
	for _, name := range s.Shadowed {
		lines = append(lines, fmt.Sprintf("  alias %s skipped, name already used by an icon", name))
	}
	for _, d := range s.Divergences {
		lines = append(lines, fmt.Sprintf("  alias rules disagree for %s (base %s, applied alias=%t, tier order alias=%t)",
			d.Name, d.Base, d.Alias, d.TierLoopAlias))
	}
	return r.lines(lines...)
}

func (r *Renderer) renderInspect(res *inspect.InspectResult) error {
	width := len("ICON")
	for _, icon := range res.Icons {
		if len(icon.Name) > width {
			width = len(icon.Name)
		}
	}

	lines := []string{
		fmt.Sprintf("%s (%s): %d icons, %d aliases", res.Path, res.Prefix, len(res.Icons), len(res.Aliases)),
		fmt.Sprintf("%-*s  %-9s  %6s  %s", width, "ICON", "SIZE", "BYTES", "ALIASES"),
	}
	for _, icon := range res.Icons {
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%-*s  %-9s  %6d  %s", width, icon.Name,
			fmt.Sprintf("%gx%g", icon.Width, icon.Height), icon.Bytes, strings.Join(icon.Aliases, ", ")), " "))
	}
	if len(res.Dangling) > 0 {
		lines = append(lines, "Aliases without a parent: "+strings.Join(res.Dangling, ", "))
	}
	return r.lines(lines...)
}

func (r *Renderer) lines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func prefixAll(prefix string, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = prefix + item
	}
	return out
}
