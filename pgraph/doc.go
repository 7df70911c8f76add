// Package pgraph builds the proximity graph over ℤ^m (spec.md §4.3): a
// DAG, layered by BFS depth from the zero vector, whose nodes are
// reachable partial sums of A's columns and whose edges carry the
// corresponding objective coefficients and column labels.
//
// Coordinates are value-keyed: two nodes with equal coordinate vectors
// are the same node, and the node map hashes by value (Coord is a
// small, fixed-size comparable array), never by identity.
package pgraph
