// Package iconset holds the in-memory icon collection built during one
// import pass.
//
// An IconSet owns two maps. Entries are keyed by Logical Name and start out
// as raw imported bytes; the pipeline either commits normalised content to
// an entry or removes it. Aliases map an alias name to the Logical Name of a
// committed icon entry.
//
// Invariants kept by the store:
//
//   - an alias always targets a committed icon entry, never another alias
//   - an alias name never equals an entry name (the entry wins)
//   - removing an entry removes every alias that targets it
//
// Registering an alias that already exists repoints it (last writer wins).
//
// The set is exclusively owned by a single pass and is not safe for
// concurrent use.
package iconset
