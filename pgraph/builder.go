package pgraph

import (
	"context"
	"sort"
	"sync"

	"github.com/ilpgraph/ilpgraph/ilp"
)

// BuildOptions configures Build. The zero value is usable: Radius
// defaults to the radius argument passed to Build, MaxDepth to the
// engine's minimum depth cap (spec.md §4.3), and Parallel to false.
type BuildOptions struct {
	// Ctx allows cancellation between layers.
	Ctx context.Context

	// Radius overrides the proximity radius (spec.md §9 "radius as a
	// knob"). Zero or negative means "use Build's radius argument",
	// never "unbounded"; a negative radius argument is treated as 0.
	Radius int64

	// MaxDepth overrides the engine's depth cap. Zero means "use the
	// engine minimum", n*max|b_i|, per spec.md §4.3.
	MaxDepth int

	// Parallel expands each layer's frontier concurrently, one
	// goroutine per candidate node in the previous layer, reconciling
	// deterministically (lexicographic sort) at the layer boundary
	// (spec.md §5 "layer parallelism").
	Parallel bool
}

// columnPlan is one usable column of A, pre-filtered for the zero
// column edge-case policy (spec.md §4.3 "Zero column").
type columnPlan struct {
	index  int
	col    []int64
	weight int64
}

// Build enumerates the proximity graph for in, per spec.md §4.3. The
// radius must already reflect whatever proximity.Bound (or override)
// the caller chose.
func Build(in *ilp.Instance, radius int64, opts BuildOptions) (*Graph, error) {
	if in == nil {
		return nil, ErrGraphNil
	}
	if in.M() > MaxDim {
		return nil, ErrDimensionOverflow
	}
	if opts.Radius > 0 {
		radius = opts.Radius
	}
	if radius < 0 {
		radius = 0
	}

	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	cols, err := planColumns(in)
	if err != nil {
		return nil, err
	}

	depthCap := opts.MaxDepth
	if depthCap <= 0 {
		depthCap = engineDepthCap(in)
	}

	source := NewCoord(in.M())
	g := &Graph{
		Source:  source,
		Layers:  [][]Coord{{source}},
		adj:     make(map[Coord][]Edge),
		layerOf: map[Coord]int{source: 0},
	}

	depth := 0
	maxLayerSize := 1
	depthCapped := false
	for {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		frontier := g.Layers[depth]
		if len(frontier) == 0 {
			break
		}
		if depth >= depthCap {
			depthCapped = true
			break
		}

		next := expandLayer(g, frontier, cols, radius, depth, opts.Parallel)
		depth++
		g.Layers = append(g.Layers, next)
		if len(next) > maxLayerSize {
			maxLayerSize = len(next)
		}
	}

	edgeCount := 0
	for _, es := range g.adj {
		edgeCount += len(es)
	}

	g.Stats = Stats{
		Vertices:     len(g.layerOf),
		Edges:        edgeCount,
		Depth:        depth,
		MaxLayerSize: maxLayerSize,
		DepthCapped:  depthCapped,
	}

	return g, nil
}

// planColumns filters zero columns per spec.md §4.3: a zero column
// with a strictly positive (already maximisation-form) objective
// coefficient makes the program unbounded; a zero column with
// non-positive coefficient is dropped (x_j contributes nothing and is
// left at its implicit value of zero).
func planColumns(in *ilp.Instance) ([]columnPlan, error) {
	plans := make([]columnPlan, 0, in.N())
	for j := 0; j < in.N(); j++ {
		col := in.A.Column(j)
		if isZeroColumn(col) {
			if in.C[j] > 0 {
				return nil, ErrUnbounded
			}

			continue
		}
		plans = append(plans, columnPlan{index: j, col: col, weight: in.C[j]})
	}

	return plans, nil
}

func isZeroColumn(col []int64) bool {
	for _, v := range col {
		if v != 0 {
			return false
		}
	}

	return true
}

// engineDepthCap is the minimum depth cap guaranteed to represent any
// feasible x with entries bounded by max|b_i| (spec.md §4.3).
func engineDepthCap(in *ilp.Instance) int {
	maxB := int64(0)
	for _, v := range in.B {
		a := v
		if a < 0 {
			a = -a
		}
		if a > maxB {
			maxB = a
		}
	}

	cap := int64(in.N()) * maxB
	if cap < 1 {
		cap = 1
	}

	return int(cap)
}

// expandLayer produces L_{depth+1} from L_depth, recording edges from
// every frontier node and admitting genuinely new nodes into the next
// layer. Per spec.md §4.3, an edge is emitted for every generated
// neighbour (new, or already assigned to this same next layer);
// neighbours already assigned a layer <= depth are discarded as
// back-edges and no edge is recorded for them at all.
func expandLayer(g *Graph, frontier []Coord, cols []columnPlan, radius int64, depth int, parallel bool) []Coord {
	type candidate struct {
		v    Coord
		edge Edge
	}

	generate := func(u Coord) []candidate {
		out := make([]candidate, 0, len(cols))
		for _, cp := range cols {
			v := u.Add(cp.col)
			if v.Linf() > radius {
				continue
			}
			out = append(out, candidate{
				v:    v,
				edge: Edge{To: v, Weight: cp.weight, Column: cp.index},
			})
		}

		return out
	}

	var perNode [][]candidate
	if parallel && len(frontier) > 1 {
		perNode = make([][]candidate, len(frontier))
		var wg sync.WaitGroup
		wg.Add(len(frontier))
		for i, u := range frontier {
			i, u := i, u
			go func() {
				defer wg.Done()
				perNode[i] = generate(u)
			}()
		}
		wg.Wait()
	} else {
		perNode = make([][]candidate, len(frontier))
		for i, u := range frontier {
			perNode[i] = generate(u)
		}
	}

	// Reconcile in the frontier's own (already canonical) order so
	// edge emission is deterministic regardless of whether generation
	// ran in parallel.
	var next []Coord
	for i, u := range frontier {
		for _, c := range perNode[i] {
			if layer, ok := g.layerOf[c.v]; ok && layer <= depth {
				continue // back-edge, discarded entirely
			}
			g.adj[u] = append(g.adj[u], c.edge)
			if _, ok := g.layerOf[c.v]; !ok {
				g.layerOf[c.v] = depth + 1
				next = append(next, c.v)
			}
		}
	}

	sort.Slice(next, func(i, j int) bool { return next[i].Less(next[j]) })

	return next
}
