package solver

import (
	"context"
	"errors"
	"time"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/longestpath"
	"github.com/ilpgraph/ilpgraph/metrics"
	"github.com/ilpgraph/ilpgraph/pgraph"
	"github.com/ilpgraph/ilpgraph/proximity"
	"github.com/ilpgraph/ilpgraph/reconstruct"
)

// Solve orchestrates spec.md §4.1 through §4.5 for one parsed ILP and
// reports either an optimal Result or an error from the §7 taxonomy.
func Solve(ctx context.Context, parsed ilp.ParsedILP, opts Options) (Result, error) {
	rec := opts.Recorder
	if rec == nil {
		rec = metrics.Noop{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := withCancel(ctx, opts.Cancel)
	defer stop()

	total := time.Now()
	defer func() { rec.ObserveTotal(time.Since(total)) }()

	instance, err := ilp.Canonicalise(parsed)
	if err != nil {
		rec.IncResult("parse_error")

		return Result{}, err
	}

	bound := proximity.Compute(instance)
	radius := bound.RStart
	if opts.MaxRadius > 0 {
		radius = opts.MaxRadius
	}

	buildStart := time.Now()
	g, err := pgraph.Build(instance, radius, pgraph.BuildOptions{Ctx: ctx, Parallel: opts.Parallel})
	buildNS := since(buildStart)
	rec.ObserveBuild(time.Duration(buildNS))
	if err != nil {
		return Result{}, mapBuildError(err, rec)
	}

	solveStart := time.Now()
	lp, err := longestpath.Solve(g, longestpath.Options{
		Ctx:         ctx,
		OverflowCap: opts.MagnitudeCap,
		Topological: opts.Topological,
	})
	solveNS := since(solveStart)
	rec.ObserveSolve(time.Duration(solveNS))
	if err != nil {
		return Result{}, mapSolveError(err, rec)
	}
	rec.IncSweeps(lp.Sweeps)

	sink, ok := bestTarget(g, instance, lp)
	if !ok {
		if g.Stats.DepthCapped {
			rec.IncResult("radius_exceeded")

			return Result{}, ErrRadiusExceeded
		}
		rec.IncResult("infeasible")

		return Result{}, ErrInfeasible
	}

	x, err := reconstruct.Walk(instance, lp.Parent, g.Source, sink)
	if err != nil {
		rec.IncResult("infeasible")

		return Result{}, ErrInfeasible
	}

	z, _ := lp.DistOf(sink)
	z = instance.RestoreObjective(z)

	rec.IncResult("ok")

	vars := make([]Variable, len(instance.VarNames))
	for i, name := range instance.VarNames {
		vars[i] = Variable{Name: name, Value: x[i]}
	}

	return Result{
		Variables: vars,
		Objective: z,
		Stats: Stats{
			Vertices:     g.Stats.Vertices,
			Edges:        g.Stats.Edges,
			Depth:        g.Stats.Depth,
			MaxLayerSize: g.Stats.MaxLayerSize,
			BuildNS:      buildNS,
			SolveNS:      solveNS,
			TotalNS:      since(total),
			Sweeps:       lp.Sweeps,
		},
	}, nil
}

// bestTarget scans the graph's target set for the node with the
// largest finite distance, breaking ties between distinct target
// coordinates by lexicographically smallest coordinate (spec.md
// §4.4's first tie-break clause). The second clause — lexicographically
// smallest parent-column sequence reconstructed backward, which
// matters when several paths reach the very same coordinate at equal
// distance — is resolved earlier, inside longestpath's relaxation
// sweep (preferParent), since it is a property of how a node's single
// parent link got chosen, not of which node is chosen here.
func bestTarget(g *pgraph.Graph, in *ilp.Instance, lp *longestpath.Result) (pgraph.Coord, bool) {
	var (
		best  pgraph.Coord
		bestD int64
		found bool
	)
	for _, v := range g.TargetSet(in.Rel, in.B) {
		d, ok := lp.DistOf(v)
		if !ok {
			continue
		}
		if !found || d > bestD || (d == bestD && v.Less(best)) {
			best, bestD, found = v, d, true
		}
	}

	return best, found
}

func mapBuildError(err error, rec metrics.Recorder) error {
	switch {
	case errors.Is(err, pgraph.ErrCancelled):
		rec.IncResult("cancelled")

		return ErrCancelled
	case errors.Is(err, pgraph.ErrUnbounded):
		rec.IncResult("unbounded")

		return ErrUnbounded
	default:
		rec.IncResult("error")

		return err
	}
}

func mapSolveError(err error, rec metrics.Recorder) error {
	switch {
	case errors.Is(err, longestpath.ErrCancelled):
		rec.IncResult("cancelled")

		return ErrCancelled
	case errors.Is(err, longestpath.ErrOverflow):
		rec.IncResult("overflow")

		return ErrOverflow
	default:
		rec.IncResult("error")

		return err
	}
}
