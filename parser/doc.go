// Package parser reads the small line-oriented `.ilp` text format into
// an ilp.ParsedILP (spec.md §6). One header line gives the sense, one
// line per constraint, and an optional `notes:` trailer that is
// consumed to EOF and ignored. It is a hand-rolled line scanner, not a
// parser-combinator library: the grammar has no nesting worth pulling
// in a dependency for.
package parser
