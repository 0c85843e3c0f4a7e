// Package pipeline runs the single validation pass over an imported icon
// set: parse, structural cleanup, optimisation, then alias resolution.
//
// Entries are visited in lexical Logical Name order. A parse, cleanup or
// optimisation failure removes the entry from the set and is recorded in
// the Report; it never stops the pass. Resolver errors are fatal.
package pipeline

import (
	"github.com/arthur-debert/svgset/pkg/iconset"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/resolver"
	"github.com/arthur-debert/svgset/pkg/svg"
	"github.com/rs/zerolog"
)

// Parser materialises structured content from raw bytes.
type Parser interface {
	Parse(raw []byte) (*svg.Document, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(raw []byte) (*svg.Document, error)

// Parse calls f.
func (f ParserFunc) Parse(raw []byte) (*svg.Document, error) {
	return f(raw)
}

// Cleaner normalises markup structure.
type Cleaner interface {
	Cleanup(doc *svg.Document) error
}

// Optimizer applies size and geometry optimisation.
type Optimizer interface {
	Optimize(doc *svg.Document) error
}

// Stage names the step an entry failed at.
type Stage string

const (
	StageParse    Stage = "parse"
	StageCleanup  Stage = "cleanup"
	StageOptimize Stage = "optimize"
	StageExtract  Stage = "extract"
)

// Failure is a discarded entry.
type Failure struct {
	Name  string
	Stage Stage
	Err   error
}

// Report summarises one pass.
type Report struct {
	// Processed counts icon entries visited.
	Processed int
	// Committed lists names committed, in processing order.
	Committed []string
	Failures  []Failure
	// Skipped lists non-icon entries left untouched.
	Skipped []string
	// Shadowed lists Base Concepts whose alias collided with an icon name.
	Shadowed []string
	// Divergences lists plans where the tier-comparison formulation of the
	// alias rule would have decided differently.
	Divergences []resolver.Plan
}

// Options configures a Pipeline.
type Options struct {
	Precision     int
	BrandPrefixes []string
}

// Pipeline wires the collaborators of the pass.
type Pipeline struct {
	Parser    Parser
	Cleaner   Cleaner
	Optimizer Optimizer
	Resolver  *resolver.Resolver

	logger zerolog.Logger
}

// New creates a Pipeline backed by the svg package.
func New(opts Options) *Pipeline {
	return &Pipeline{
		Parser:    ParserFunc(svg.Parse),
		Cleaner:   svg.Cleaner{},
		Optimizer: svg.Optimizer{Precision: opts.Precision},
		Resolver:  resolver.New(resolver.Options{BrandPrefixes: opts.BrandPrefixes}),
		logger:    logging.GetLogger("pipeline"),
	}
}

// Run processes every entry of set in lexical order. set is owned by the
// pass for its whole duration.
func (p *Pipeline) Run(set *iconset.IconSet) (*Report, error) {
	done := logging.LogOperationStart(p.logger, "pipeline")
	defer done()

	report := &Report{}
	for _, name := range set.Names() {
		entry, ok := set.Entry(name)
		if !ok {
			continue
		}
		if entry.Type != iconset.EntryIcon {
			p.logger.Debug().Str("icon", name).Str("type", entry.Type.String()).Msg("Skipping non-icon entry")
			report.Skipped = append(report.Skipped, name)
			continue
		}
		report.Processed++

		icon, stage, err := p.process(entry.Raw)
		if err != nil {
			p.discard(set, report, name, stage, err)
			continue
		}

		plan := p.Resolver.Plan(set, name)
		if plan.Diverges() {
			logger := logging.ForIcon(p.logger, name, "")
			logger.Warn().
				Str("tier", plan.Tier.String()).
				Bool("alias", plan.Alias).
				Bool("tierLoopAlias", plan.TierLoopAlias).
				Msg("Alias rule formulations disagree")
			report.Divergences = append(report.Divergences, plan)
		}

		outcome, err := p.Resolver.Resolve(set, name, icon)
		if err != nil {
			return report, err
		}
		report.Committed = append(report.Committed, name)
		if outcome.Shadowed != "" {
			report.Shadowed = append(report.Shadowed, outcome.Shadowed)
		}
	}

	p.logger.Info().
		Int("processed", report.Processed).
		Int("committed", len(report.Committed)).
		Int("failed", len(report.Failures)).
		Msg("Pipeline finished")

	return report, nil
}

func (p *Pipeline) process(raw []byte) (*svg.Icon, Stage, error) {
	doc, err := p.Parser.Parse(raw)
	if err != nil {
		return nil, StageParse, err
	}
	if err := p.Cleaner.Cleanup(doc); err != nil {
		return nil, StageCleanup, err
	}
	if err := p.Optimizer.Optimize(doc); err != nil {
		return nil, StageOptimize, err
	}
	icon, err := doc.Icon()
	if err != nil {
		return nil, StageExtract, err
	}
	return icon, "", nil
}

func (p *Pipeline) discard(set *iconset.IconSet, report *Report, name string, stage Stage, err error) {
	logger := logging.ForIcon(p.logger, name, string(stage))
	logger.Error().
		Err(err).
		Msg("Discarding invalid icon")
	set.Remove(name)
	report.Failures = append(report.Failures, Failure{Name: name, Stage: stage, Err: err})
}
