// Package display converts command results into flat, serialisable views
// shared by every renderer.
package display

import (
	"github.com/arthur-debert/svgset/pkg/commands/build"
	"github.com/arthur-debert/svgset/pkg/errors"
)

// FailureView is one discarded icon
type FailureView struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

// DivergenceView is one icon where the two alias rules disagree
type DivergenceView struct {
	Name          string `json:"name"`
	Base          string `json:"base"`
	Tier          string `json:"tier"`
	Alias         bool   `json:"alias"`
	TierLoopAlias bool   `json:"tierLoopAlias"`
}

// BuildSummary is what a build prints
type BuildSummary struct {
	Source      string           `json:"source"`
	Output      string           `json:"output"`
	Format      string           `json:"format"`
	DryRun      bool             `json:"dryRun"`
	Written     bool             `json:"written"`
	Processed   int              `json:"processed"`
	Icons       int              `json:"icons"`
	Aliases     int              `json:"aliases"`
	Failures    []FailureView    `json:"failures"`
	Skipped     []string         `json:"skipped,omitempty"`
	Shadowed    []string         `json:"shadowed,omitempty"`
	Divergences []DivergenceView `json:"divergences,omitempty"`
}

// NewBuildSummary flattens a build result
func NewBuildSummary(r *build.BuildResult) *BuildSummary {
	s := &BuildSummary{
		Source:   r.Source,
		Output:   r.Output,
		Format:   string(r.Format),
		DryRun:   r.DryRun,
		Written:  r.Written,
		Failures: []FailureView{},
	}
	if r.Manifest != nil {
		s.Icons = len(r.Manifest.Icons)
		s.Aliases = len(r.Manifest.Aliases)
	}
	if r.Report == nil {
		return s
	}

	s.Processed = r.Report.Processed
	s.Skipped = r.Report.Skipped
	s.Shadowed = r.Report.Shadowed
	for _, f := range r.Report.Failures {
		s.Failures = append(s.Failures, FailureView{
			Name:  f.Name,
			Stage: string(f.Stage),
			Code:  string(errors.GetErrorCode(f.Err)),
			Error: f.Err.Error(),
		})
	}
	for _, p := range r.Report.Divergences {
		s.Divergences = append(s.Divergences, DivergenceView{
			Name:          p.Name,
			Base:          p.Base,
			Tier:          p.Tier.String(),
			Alias:         p.Alias,
			TierLoopAlias: p.TierLoopAlias,
		})
	}
	return s
}
