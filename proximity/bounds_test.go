package proximity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/proximity"
)

func mustInstance(t *testing.T, p ilp.ParsedILP) *ilp.Instance {
	t.Helper()
	in, err := ilp.Canonicalise(p)
	require.NoError(t, err)

	return in
}

func TestComputeMatchesPublishedFormula(t *testing.T) {
	// max x1, x1 + 2x2 <= 10, x2 <= 3
	p := ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{{Coefficient: 1, Variable: "x1"}},
		Constraints: []ilp.Constraint{
			{
				LHS:      []ilp.Term{{Coefficient: 1, Variable: "x1"}, {Coefficient: 2, Variable: "x2"}},
				Relation: ilp.LE,
				RHS:      []ilp.Term{{Coefficient: 10}},
			},
			{
				LHS:      []ilp.Term{{Coefficient: 1, Variable: "x2"}},
				Relation: ilp.LE,
				RHS:      []ilp.Term{{Coefficient: 3}},
			},
		},
	}
	in := mustInstance(t, p)

	b := proximity.Compute(in)
	require.Equal(t, int64(2), b.Delta)
	require.Equal(t, int64(10), b.BInf)

	m := int64(in.M())
	require.Equal(t, m*(2*m*b.Delta+b.BInf), b.RStart)
	require.Greater(t, b.REnd, 0.0)
}

func TestComputeRStartMonotoneInDelta(t *testing.T) {
	small := mustInstance(t, ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{{Coefficient: 1, Variable: "x"}},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{{Coefficient: 1, Variable: "x"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 5}}},
		},
	})
	large := mustInstance(t, ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{{Coefficient: 1, Variable: "x"}},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{{Coefficient: 100, Variable: "x"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 5}}},
		},
	})

	require.Greater(t, proximity.Compute(large).RStart, proximity.Compute(small).RStart)
}

func TestComputeZeroBInfStillRespectsDelta(t *testing.T) {
	// a degenerate single-variable row with coefficient 1 and b = 0 still
	// yields a positive RStart driven entirely by Delta.
	in := mustInstance(t, ilp.ParsedILP{
		Sense:     ilp.Maximize,
		Objective: []ilp.Term{{Coefficient: 1, Variable: "x"}},
		Constraints: []ilp.Constraint{
			{LHS: []ilp.Term{{Coefficient: 1, Variable: "x"}}, Relation: ilp.LE, RHS: []ilp.Term{{Coefficient: 0}}},
		},
	})

	b := proximity.Compute(in)
	require.Equal(t, int64(1), b.Delta)
	require.Equal(t, int64(0), b.BInf)
	require.Equal(t, int64(in.M())*(2*int64(in.M())*b.Delta), b.RStart)
}
