package resolver

import (
	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/naming"
	"github.com/arthur-debert/svgset/pkg/svg"
	"github.com/rs/zerolog"
)

// Store is the part of the icon set the resolver reads and writes. Exists
// is true only for committed icons.
type Store interface {
	Commit(name string, icon *svg.Icon) error
	Exists(name string) bool
	Alias(alias, canonical string) error
}

// Options configures a Resolver.
type Options struct {
	// BrandPrefixes are stripped from the start of Base Concepts.
	BrandPrefixes []string
}

// Resolver applies the size-variant alias rule.
type Resolver struct {
	brands []string
	logger zerolog.Logger
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	return &Resolver{
		brands: opts.BrandPrefixes,
		logger: logging.GetLogger("resolver"),
	}
}

// Plan is the decision for one Logical Name.
type Plan struct {
	Name string
	Stem string
	Tier naming.Tier
	// Base is the Base Concept, empty when the name has no tier.
	Base string
	// Alias is true when Base should be aliased to Name.
	Alias bool
	// TierLoopAlias is the decision of the tier-comparison formulation:
	// alias whenever no larger sibling exists. Tier 16 is promotable there,
	// so a lone 16 gets an alias under this rule and never under Alias.
	TierLoopAlias bool
}

// Diverges reports whether the two formulations disagree.
func (p Plan) Diverges() bool {
	return p.Alias != p.TierLoopAlias
}

// Outcome records what Resolve did.
type Outcome struct {
	Plan
	// Aliased is the alias registered, empty when none.
	Aliased string
	// Shadowed is set when the alias was skipped because an icon already
	// carries the Base Concept name.
	Shadowed string
}

// Plan computes the decision for name against the current store contents.
func (r *Resolver) Plan(store Store, name string) Plan {
	stem, tier, ok := naming.ParseTier(name)
	p := Plan{Name: name, Stem: stem, Tier: tier}
	if !ok {
		return p
	}
	p.Base = naming.BaseConcept(stem, r.brands)

	exists := func(t naming.Tier) bool {
		return store.Exists(naming.Sibling(stem, t))
	}

	switch tier {
	case naming.Tier64:
		p.Alias = true
	case naming.Tier48:
		p.Alias = !exists(naming.Tier64)
	case naming.Tier32:
		p.Alias = !exists(naming.Tier64) || !exists(naming.Tier48)
	}

	p.TierLoopAlias = true
	for _, larger := range tier.Larger() {
		if exists(larger) {
			p.TierLoopAlias = false
			break
		}
	}

	return p
}

// Resolve commits icon under name and registers the Base Concept alias
// when the plan calls for it. Errors are fatal to the pass.
func (r *Resolver) Resolve(store Store, name string, icon *svg.Icon) (Outcome, error) {
	out := Outcome{Plan: r.Plan(store, name)}

	if err := store.Commit(name, icon); err != nil {
		return out, err
	}
	if !out.Alias {
		r.logger.Trace().Str("icon", name).Str("tier", out.Tier.String()).Msg("Committed without alias")
		return out, nil
	}

	err := store.Alias(out.Base, name)
	switch {
	case err == nil:
		out.Aliased = out.Base
		r.logger.Debug().
			Str("alias", out.Base).
			Str("icon", name).
			Str("tier", out.Tier.String()).
			Msg("Set alias")
	case errors.IsErrorCode(err, errors.ErrAliasShadowsIcon):
		out.Shadowed = out.Base
		r.logger.Warn().
			Str("alias", out.Base).
			Str("icon", name).
			Msg("Alias name is already an icon, keeping the icon")
	default:
		return out, err
	}

	return out, nil
}
