package longestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/longestpath"
	"github.com/ilpgraph/ilpgraph/pgraph"
)

func buildDiagGraph(t *testing.T) *pgraph.Graph {
	t.Helper()
	p := ilp.ParsedILP{
		Sense: ilp.Maximize,
		Objective: []ilp.Term{
			{Coefficient: 1, Variable: "x1"},
			{Coefficient: 2, Variable: "x2"},
			{Coefficient: 3, Variable: "x3"},
		},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{{Coefficient: 1, Variable: "x1"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 5}}},
			{LHS: []ilp.Term{{Coefficient: 2, Variable: "x2"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 6}}},
			{LHS: []ilp.Term{{Coefficient: 1, Variable: "x3"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 5}}},
		},
	}
	in, err := ilp.Canonicalise(p)
	require.NoError(t, err)

	g, err := pgraph.Build(in, 50, pgraph.BuildOptions{})
	require.NoError(t, err)

	return g
}

func TestSolveGeneralAndTopologicalAgree(t *testing.T) {
	g := buildDiagGraph(t)

	general, err := longestpath.Solve(g, longestpath.Options{})
	require.NoError(t, err)
	topo, err := longestpath.Solve(g, longestpath.Options{Topological: true})
	require.NoError(t, err)

	require.Equal(t, general.Dist, topo.Dist)
	require.Equal(t, general.Parent, topo.Parent)
	require.Equal(t, 1, topo.Sweeps)
}

func TestSolveSourceDistanceZero(t *testing.T) {
	g := buildDiagGraph(t)
	r, err := longestpath.Solve(g, longestpath.Options{})
	require.NoError(t, err)

	d, ok := r.DistOf(g.Source)
	require.True(t, ok)
	require.Equal(t, int64(0), d)
}

func TestSolveBestDistanceAtTarget(t *testing.T) {
	g := buildDiagGraph(t)
	r, err := longestpath.Solve(g, longestpath.Options{})
	require.NoError(t, err)

	target := pgraph.FromInts([]int64{5, 6, 5})
	d, ok := r.DistOf(target)
	require.True(t, ok)
	// x1=5,x2=3,x3=5 -> z = 1*5+2*3+3*5 = 26
	require.Equal(t, int64(26), d)
}

func TestSolveOverflowCap(t *testing.T) {
	g := buildDiagGraph(t)
	_, err := longestpath.Solve(g, longestpath.Options{OverflowCap: 1})
	require.ErrorIs(t, err, longestpath.ErrOverflow)
}
