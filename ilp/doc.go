// Package ilp defines the canonical integer-linear-program data model
// consumed by the rest of the engine (proximity, pgraph, longestpath,
// reconstruct, solver) and the canonicaliser that produces it from a
// ParsedILP, the shape parser.Parse returns.
//
// A canonical Instance is always in maximisation form: Canonicalise
// negates C and records NegatedObjective=true when the caller's sense
// was "minimize", so every downstream package only ever needs to know
// how to maximise.
package ilp
