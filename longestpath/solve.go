package longestpath

import (
	"context"

	"github.com/ilpgraph/ilpgraph/pgraph"
)

// Options configures Solve.
type Options struct {
	// Ctx allows cancellation between sweeps.
	Ctx context.Context

	// OverflowCap bounds the magnitude any distance may reach before
	// Solve reports ErrOverflow. Zero means defaultOverflowCap.
	OverflowCap int64

	// Topological runs the single-pass fast path instead of the
	// general iterated-relaxation loop (spec.md §9 open question).
	// Both are grounded on the same edge-relaxation step and must
	// agree on every acyclic, layered graph pgraph.Build produces.
	Topological bool
}

// Solve computes the longest-path distance table for g, per spec.md
// §4.4: dist[source] = 0, dist[v] = -inf for every other node, and
// repeated relaxation sweeps in layer order until none updates.
func Solve(g *pgraph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	overflowCap := opts.OverflowCap
	if overflowCap == 0 {
		overflowCap = defaultOverflowCap
	}

	order := g.Nodes() // already layer-ordered, lexicographic within a layer
	dist := make(map[pgraph.Coord]int64, len(order))
	parent := make(map[pgraph.Coord]Link, len(order))
	for _, v := range order {
		dist[v] = negInf
	}
	dist[g.Source] = 0

	if opts.Topological {
		// The builder only ever emits edges from layer k to layer
		// k+1, so one pass over nodes in layer order already
		// finalises every node's distance before any edge leaving it
		// is relaxed: a direct application of the DAG
		// shortest/longest-path-via-topological-order algorithm.
		if _, err := relaxSweep(g, order, dist, parent, overflowCap); err != nil {
			return nil, err
		}

		return &Result{Dist: dist, Parent: parent, Sweeps: 1}, nil
	}

	maxSweeps := g.Stats.Depth + 1
	if maxSweeps < 1 {
		maxSweeps = 1
	}

	sweeps := 0
	for sweeps < maxSweeps {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		updated, err := relaxSweep(g, order, dist, parent, overflowCap)
		if err != nil {
			return nil, err
		}
		if !updated {
			break // the confirming no-update sweep is not counted
		}
		sweeps++
	}

	return &Result{Dist: dist, Parent: parent, Sweeps: sweeps}, nil
}

// relaxSweep performs one full pass over order, relaxing every
// outgoing edge of every node with a finite distance. Returns whether
// any distance or parent link was updated.
//
// On a strict improvement the new edge always wins. On a tie (nd equal
// to the best distance already recorded for e.To), the new edge wins
// only if its column-sequence reconstructed backward from e.To is
// lexicographically smaller than the one already recorded, per the
// second half of the deterministic tie-break rule: the first edge
// encountered does not automatically stand just because it arrived
// first in iteration order.
func relaxSweep(g *pgraph.Graph, order []pgraph.Coord, dist map[pgraph.Coord]int64, parent map[pgraph.Coord]Link, overflowCap int64) (bool, error) {
	updated := false
	for _, u := range order {
		du := dist[u]
		if du <= negInf {
			continue
		}
		for _, e := range g.Neighbors(u) {
			nd := du + e.Weight
			switch {
			case nd > dist[e.To]:
				if abs64(nd) > overflowCap {
					return false, ErrOverflow
				}
				dist[e.To] = nd
				parent[e.To] = Link{Parent: u, Column: e.Column}
				updated = true
			case nd == dist[e.To]:
				if existing, ok := parent[e.To]; ok && preferParent(parent, e.Column, u, existing) {
					parent[e.To] = Link{Parent: u, Column: e.Column}
					updated = true
				}
			}
		}
	}

	return updated, nil
}

// preferParent reports whether arriving via (newCol, newParent) yields
// a lexicographically smaller backward column sequence than the
// existing link, comparing the column closest to the sink first (the
// most recently applied one) and walking both chains back toward the
// source in lockstep. Both chains have equal length: pgraph.Build only
// ever emits edges from layer k to layer k+1, so any two paths tied on
// distance have used the same number of edges.
func preferParent(parent map[pgraph.Coord]Link, newCol int, newParent pgraph.Coord, existing Link) bool {
	curNewCol, curNew := newCol, newParent
	curOldCol, curOld := existing.Column, existing.Parent
	for {
		if curNewCol != curOldCol {
			return curNewCol < curOldCol
		}
		if curNew == curOld {
			return false // identical path; nothing to prefer
		}
		linkNew, okNew := parent[curNew]
		linkOld, okOld := parent[curOld]
		if !okNew || !okOld {
			return false // both reached the source without diverging
		}
		curNewCol, curNew = linkNew.Column, linkNew.Parent
		curOldCol, curOld = linkOld.Column, linkOld.Parent
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
