// Package resolver decides under which names a cleaned icon is committed
// and which Base Concept alias, if any, it receives.
//
// Every icon is committed under its own Logical Name. Size-suffixed icons
// may additionally own the alias from their Base Concept:
//
//	-64  always, overriding any earlier alias
//	-48  when no -64 sibling exists
//	-32  when the -64 or the -48 sibling is missing
//	-16  never
//	none never
//
// A sibling exists only once it has been committed. Existence checks run
// against the set at the time the name is resolved, so the order of
// resolution is part of the contract. The pipeline resolves in lexical
// Logical Name order, smaller tiers first, and the last alias written wins;
// a tier that fails validation never takes the alias from a smaller one.
//
// A second formulation of the rule, where a tier owns the alias only if no
// larger tier sibling exists and -16 is promotable, disagrees with the rule
// above for some partial size sets. Plan computes both so callers can
// report every name where they diverge.
package resolver
