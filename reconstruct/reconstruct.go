package reconstruct

import (
	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/longestpath"
	"github.com/ilpgraph/ilpgraph/pgraph"
)

// Walk follows parent links from sink back to source, incrementing
// x*[j] once for every column label j encountered, and returns the
// resulting non-negative integer vector.
//
// Per spec.md §4.5, it then re-checks sink against in.Rel/in.B
// row-by-row and returns ErrInfeasible if any row fails — a safety
// belt that should never fire when target-set selection (pgraph's
// TargetSet plus longestpath's best-distance scan) is correct.
func Walk(in *ilp.Instance, parent map[pgraph.Coord]longestpath.Link, source, sink pgraph.Coord) ([]int64, error) {
	x := make([]int64, in.N())

	for cur := sink; cur != source; {
		link, ok := parent[cur]
		if !ok {
			break // cur == source in all well-formed calls; defensive only
		}
		x[link.Column]++
		cur = link.Parent
	}

	if !satisfiesRelation(sink, in.Rel, in.B) {
		return nil, ErrInfeasible
	}

	return x, nil
}

func satisfiesRelation(sink pgraph.Coord, rel []ilp.Relation, b []int64) bool {
	for i, r := range rel {
		v := sink.V[i]
		switch r {
		case ilp.EQ:
			if v != b[i] {
				return false
			}
		case ilp.GE:
			if v < b[i] {
				return false
			}
		default:
			if v > b[i] {
				return false
			}
		}
	}

	return true
}
