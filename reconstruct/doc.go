// Package reconstruct walks the parent pointers produced by
// longestpath from a chosen sink back to the source, turning the
// column-label trail into a primal integer vector x* (spec.md §4.5).
package reconstruct
