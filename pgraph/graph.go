package pgraph

import "github.com/ilpgraph/ilpgraph/ilp"

// Edge is a directed, weighted, column-labelled arc u -> u+A[:,j].
type Edge struct {
	To     Coord
	Weight int64
	Column int
}

// Stats summarises a completed build (spec.md §4.3 "the builder
// reports").
type Stats struct {
	Vertices     int
	Edges        int
	Depth        int
	MaxLayerSize int
	DepthCapped  bool // true if termination was forced by the depth cap, not by an empty layer
}

// Graph is the layered DAG produced by Build. Nodes are value-keyed by
// Coord; Layers holds every node's coordinate in BFS-depth order, each
// layer itself in canonical (lexicographic) order so parallel layer
// expansion stays deterministic.
type Graph struct {
	Source Coord
	Layers [][]Coord
	Stats  Stats

	adj     map[Coord][]Edge
	layerOf map[Coord]int
}

// Neighbors returns the outgoing edges of u, or nil if u has none.
func (g *Graph) Neighbors(u Coord) []Edge {
	return g.adj[u]
}

// LayerOf reports the BFS depth at which v was first assigned, and
// whether v is a node of the graph at all.
func (g *Graph) LayerOf(v Coord) (int, bool) {
	d, ok := g.layerOf[v]

	return d, ok
}

// Nodes returns every node in the graph, flattened in layer order.
func (g *Graph) Nodes() []Coord {
	out := make([]Coord, 0, g.Stats.Vertices)
	for _, layer := range g.Layers {
		out = append(out, layer...)
	}

	return out
}

// TargetSet scans every node in the graph and returns those that
// satisfy the per-row relation against b (spec.md §4.3): v_i <= b_i
// for a <= row, v_i == b_i for a = row, v_i >= b_i for a >= row. b
// itself always qualifies, by construction of the relation.
func (g *Graph) TargetSet(rel []ilp.Relation, b []int64) []Coord {
	var out []Coord
	for _, v := range g.Nodes() {
		if satisfiesTarget(v, rel, b) {
			out = append(out, v)
		}
	}

	return out
}

func satisfiesTarget(v Coord, rel []ilp.Relation, b []int64) bool {
	for i, r := range rel {
		switch r {
		case ilp.EQ:
			if v.V[i] != b[i] {
				return false
			}
		case ilp.GE:
			if v.V[i] < b[i] {
				return false
			}
		default: // ilp.LE
			if v.V[i] > b[i] {
				return false
			}
		}
	}

	return true
}
