// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/svgset/pkg/commands/build"
	"github.com/arthur-debert/svgset/pkg/commands/genconfig"
	"github.com/arthur-debert/svgset/pkg/commands/inspect"
	"github.com/arthur-debert/svgset/pkg/ui/display"
	"github.com/arthur-debert/svgset/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer writes styled output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *build.BuildResult:
		return r.renderBuild(display.NewBuildSummary(v))
	case *display.BuildSummary:
		return r.renderBuild(v)
	case *inspect.InspectResult:
		return r.renderInspect(v)
	case *genconfig.GenConfigResult:
		return r.renderGenConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", "Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderBuild(s *display.BuildSummary) error {
	var b strings.Builder

	title := "Built " + s.Output
	if s.DryRun {
		title = "Dry run, " + s.Output + " not written"
	}
	b.WriteString(styles.Render("Header", title) + "\n")

	row := func(label string, value interface{}) {
		b.WriteString(styles.Render("Item", styles.Render("Label", label)+styles.Render("Value", fmt.Sprint(value))) + "\n")
	}
	row("source", s.Source)
	row("format", s.Format)
	row("processed", s.Processed)
	row("icons", s.Icons)
	row("aliases", s.Aliases)

	failed := fmt.Sprint(len(s.Failures))
	if len(s.Failures) == 0 {
		failed = styles.Render("Success", failed)
	} else {
		failed = styles.Render("Error", failed)
	}
	b.WriteString(styles.Render("Item", styles.Render("Label", "failed")+failed) + "\n")

	if len(s.Failures) > 0 {
		b.WriteString("\n" + styles.Render("Error", "Discarded icons") + "\n")
		for _, f := range s.Failures {
			b.WriteString(styles.Render("Item", fmt.Sprintf("%s %s %s",
				f.Name, styles.Render("Muted", "("+f.Stage+")"), f.Error)) + "\n")
		}
	}

	if len(s.Shadowed) > 0 {
		b.WriteString("\n" + styles.Render("Warning", "Aliases skipped, name already used by an icon") + "\n")
		for _, name := range s.Shadowed {
			b.WriteString(styles.Render("Item", name) + "\n")
		}
	}

	if len(s.Divergences) > 0 {
		b.WriteString("\n" + styles.Render("Warning", "Alias rules disagree") + "\n")
		for _, d := range s.Divergences {
			b.WriteString(styles.Render("Item", fmt.Sprintf("%s %s", d.Name,
				styles.Render("Muted", fmt.Sprintf("(base %s, applied alias=%t, tier order alias=%t)", d.Base, d.Alias, d.TierLoopAlias)))) + "\n")
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderInspect(res *inspect.InspectResult) error {
	header := styles.Render("Header", fmt.Sprintf("%s (%s): %d icons, %d aliases",
		res.Path, res.Prefix, len(res.Icons), len(res.Aliases)))
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return err
	}

	icons := pterm.TableData{{"Icon", "Size", "Bytes", "Aliases"}}
	for _, icon := range res.Icons {
		icons = append(icons, []string{
			icon.Name,
			fmt.Sprintf("%gx%g", icon.Width, icon.Height),
			fmt.Sprint(icon.Bytes),
			strings.Join(icon.Aliases, ", "),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(icons).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	if len(res.Dangling) > 0 {
		msg := styles.Render("Warning", "Aliases without a parent: ") + strings.Join(res.Dangling, ", ")
		if _, err := fmt.Fprintln(r.output, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderGenConfig(res *genconfig.GenConfigResult) error {
	if len(res.FilesWritten) > 0 {
		for _, path := range res.FilesWritten {
			if _, err := fmt.Fprintln(r.output, styles.Render("Success", "Wrote ")+path); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := io.WriteString(r.output, res.ConfigContent)
	return err
}
