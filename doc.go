// Package pluralize selects grammatical plural forms for counted
// messages and renders localized "you have joined N times" texts.
//
// The core is ResolveCategory: a pure, total function mapping a language
// tag and a count to one of the closed plural categories (zero,
// singular, dual, few, many, plural). Around it the package provides a
// translation store with JSON/YAML loaders, a plural-aware translator
// that assembles "<prefix>.<category>" message keys, and a join tracker
// with pluggable counter storage (in-memory or Redis).
package pluralize
