// Package solver provides the Driver: the single public entry point
// that orchestrates canonicalisation, proximity bounding, graph
// building, longest-path solving and reconstruction, and reports
// either an optimal solution or an error from the spec.md §7 taxonomy.
package solver
