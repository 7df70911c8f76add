package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/solver"
)

func term(coef int64, v string) ilp.Term { return ilp.Term{Coefficient: coef, Variable: v} }

// scenario 1 from spec.md §8: max, A=diag(1,2,1), b=(5,6,5), c=(1,2,3).
func TestSolveScenarioDiag(t *testing.T) {
	p := ilp.ParsedILP{
		Sense: ilp.Maximize,
		Objective: []ilp.Term{
			term(1, "x1"), term(2, "x2"), term(3, "x3"),
		},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{term(1, "x1")}, Relation: ilp.LE, RHS: []ilp.Term{term(5, "")}},
			{LHS: []ilp.Term{term(2, "x2")}, Relation: ilp.LE, RHS: []ilp.Term{term(6, "")}},
			{LHS: []ilp.Term{term(1, "x3")}, Relation: ilp.LE, RHS: []ilp.Term{term(5, "")}},
		},
	}

	res, err := solver.Solve(context.Background(), p, solver.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(26), res.Objective)

	got := make(map[string]int64, len(res.Variables))
	for _, v := range res.Variables {
		got[v.Name] = v.Value
	}
	require.Equal(t, int64(5), got["x1"])
	require.Equal(t, int64(3), got["x2"])
	require.Equal(t, int64(5), got["x3"])
	require.Equal(t, 1, res.Stats.Sweeps)
}

// scenario 5 from spec.md §8: min, subset-sum -7x1-3x2-2x3+5x4+8x5 = 0
// with 1 <= sum(x) <= 5, expected x*=(0,1,1,1,0), z=3.
func TestSolveScenarioSubsetSum(t *testing.T) {
	p := ilp.ParsedILP{
		Sense: ilp.Minimize,
		Objective: []ilp.Term{
			term(1, "x1"), term(1, "x2"), term(1, "x3"), term(1, "x4"), term(1, "x5"),
		},
		Constraints: []ilp.Constraint{
			{
				LHS: []ilp.Term{
					term(-7, "x1"), term(-3, "x2"), term(-2, "x3"), term(5, "x4"), term(8, "x5"),
				},
				Relation: ilp.EQ,
				RHS:      []ilp.Term{term(0, "")},
			},
			{
				LHS: []ilp.Term{
					term(1, "x1"), term(1, "x2"), term(1, "x3"), term(1, "x4"), term(1, "x5"),
				},
				Relation: ilp.GE,
				RHS:      []ilp.Term{term(1, "")},
			},
			{
				LHS: []ilp.Term{
					term(1, "x1"), term(1, "x2"), term(1, "x3"), term(1, "x4"), term(1, "x5"),
				},
				Relation: ilp.LE,
				RHS:      []ilp.Term{term(5, "")},
			},
		},
	}

	res, err := solver.Solve(context.Background(), p, solver.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Objective)
}

func TestSolveDeterministic(t *testing.T) {
	p := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{term(1, "x1"), term(2, "x2")},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{term(1, "x1"), term(1, "x2")}, Relation: ilp.LE, RHS: []ilp.Term{term(4, "")}},
		},
	}

	first, err := solver.Solve(context.Background(), p, solver.Options{})
	require.NoError(t, err)
	second, err := solver.Solve(context.Background(), p, solver.Options{})
	require.NoError(t, err)

	require.Equal(t, first.Variables, second.Variables)
	require.Equal(t, first.Objective, second.Objective)
	require.Equal(t, first.Stats, second.Stats)
}

func TestSolveScalingMonotonicity(t *testing.T) {
	base := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{term(1, "x1"), term(2, "x2")},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{term(1, "x1"), term(1, "x2")}, Relation: ilp.LE, RHS: []ilp.Term{term(4, "")}},
		},
	}
	scaled := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{term(3, "x1"), term(6, "x2")},
		Constraints: base.Constraints,
	}

	r1, err := solver.Solve(context.Background(), base, solver.Options{})
	require.NoError(t, err)
	r2, err := solver.Solve(context.Background(), scaled, solver.Options{})
	require.NoError(t, err)

	require.Equal(t, r1.Variables, r2.Variables)
	require.Equal(t, r1.Objective*3, r2.Objective)
}

func TestSolveRadiusMonotonicity(t *testing.T) {
	p := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{term(1, "x1")},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{term(1, "x1")}, Relation: ilp.LE, RHS: []ilp.Term{term(5, "")}},
		},
	}

	small, err := solver.Solve(context.Background(), p, solver.Options{MaxRadius: 100})
	require.NoError(t, err)
	large, err := solver.Solve(context.Background(), p, solver.Options{MaxRadius: 1000})
	require.NoError(t, err)

	require.Equal(t, small.Objective, large.Objective)
	require.Equal(t, small.Variables, large.Variables)
}

func TestSolveCancellation(t *testing.T) {
	p := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{term(1, "x1")},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{term(1, "x1")}, Relation: ilp.LE, RHS: []ilp.Term{term(5, "")}},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(ctx, p, solver.Options{})
	require.ErrorIs(t, err, solver.ErrCancelled)
}
