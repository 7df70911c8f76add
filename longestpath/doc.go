// Package longestpath computes, for every node of a pgraph.Graph, the
// maximum cumulative edge weight over any path from the source
// (spec.md §4.4). The graph is acyclic by construction and edges run
// strictly from one BFS layer to the next, so a single pass over nodes
// in layer order already converges; Solve also offers the general
// iterated-relaxation loop (repeat until a full sweep makes no
// update) so the two can be cross-checked against each other.
package longestpath
