package longestpath

import (
	"math"

	"github.com/ilpgraph/ilpgraph/pgraph"
)

// negInf stands in for "unreached" without risking overflow on
// dist[u]+weight additions (a true math.MinInt64 would wrap).
const negInf = math.MinInt64 / 4

// defaultOverflowCap bounds accumulated distances absent an explicit
// Options.OverflowCap.
const defaultOverflowCap = int64(1) << 48

// Link is a node's predecessor on its best known path: the parent
// node and the column label of the edge that reached it.
type Link struct {
	Parent pgraph.Coord
	Column int
}

// Result is the outcome of Solve: per-node best distance and parent
// link, plus the sweep count. For the general loop, Sweeps counts the
// sweeps that updated a distance or parent link (the final sweep that
// confirms convergence is not counted); the topological fast path
// always reports 1.
type Result struct {
	Dist   map[pgraph.Coord]int64
	Parent map[pgraph.Coord]Link
	Sweeps int
}

// DistOf returns v's best distance and true, or 0 and false if v was
// never reached (its stored distance is still the internal negInf
// sentinel) or is not a node of the graph.
func (r *Result) DistOf(v pgraph.Coord) (int64, bool) {
	d, ok := r.Dist[v]
	if !ok || d <= negInf {
		return 0, false
	}

	return d, true
}
