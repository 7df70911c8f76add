package ilp

import (
	"github.com/ilpgraph/ilpgraph/matrix"
)

// Canonicalise turns a parser-shaped ParsedILP into maximisation-form
// Instance, per spec.md §4.1:
//
//  1. build the ordered variable set by first appearance, scanning the
//     objective first and then constraints in order;
//  2. for each constraint, collect LHS and RHS terms into one dense
//     length-N row and move the constant to B;
//  3. emit A, B, Rel unchanged in relational sense (no ≥/= → ≤ folding —
//     the relation is consumed directly by the graph builder's
//     target-set definition, spec.md §4.3);
//  4. build C, negating it (and recording NegatedObjective) if Sense
//     is Minimize.
func Canonicalise(p ParsedILP) (*Instance, error) {
	if len(p.Objective) == 0 {
		return nil, ErrEmptyObjective
	}
	if len(p.Constraints) == 0 {
		return nil, ErrNoConstraints
	}

	order, index := collectVariables(p)
	n := len(order)
	m := len(p.Constraints)

	rows := make([][]int64, m)
	b := make([]int64, m)
	rel := make([]Relation, m)
	for i, c := range p.Constraints {
		row := make([]int64, n)
		var rhsConst int64
		// LHS terms add directly; RHS terms subtract (moved to the left),
		// except their constant part, which is instead accumulated on b.
		addTerms(row, &rhsConst, index, c.LHS, +1)
		addTerms(row, &rhsConst, index, c.RHS, -1)
		rowIsZero := true
		for _, v := range row {
			if v != 0 {
				rowIsZero = false
				break
			}
		}
		if rowIsZero && !relationHolds(c.Relation, 0, rhsConst) {
			return nil, ErrInfeasible
		}

		rows[i] = row
		b[i] = rhsConst
		rel[i] = c.Relation
	}

	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}

	// collectVariables already scanned the objective first, so every
	// objective variable has an index < n; no widening needed here.
	c := make([]int64, n)
	for _, t := range p.Objective {
		if t.Variable == "" {
			continue // bare constants in the objective do not affect argmax
		}
		c[index[t.Variable]] += t.Coefficient
	}

	negated := p.Sense == Minimize
	if negated {
		for i := range c {
			c[i] = -c[i]
		}
	}

	if err := checkRange(a, b, c); err != nil {
		return nil, err
	}

	return &Instance{
		A:                a,
		B:                b,
		C:                c,
		Rel:              rel,
		VarNames:         order,
		NegatedObjective: negated,
	}, nil
}

// collectVariables builds the ordered variable set by first appearance
// across the objective, then constraints, in their given order.
func collectVariables(p ParsedILP) ([]string, map[string]int) {
	order := make([]string, 0, len(p.Objective)+4)
	index := make(map[string]int, len(p.Objective)+4)
	see := func(name string) {
		if name == "" {
			return
		}
		if _, ok := index[name]; ok {
			return
		}
		index[name] = len(order)
		order = append(order, name)
	}
	for _, t := range p.Objective {
		see(t.Variable)
	}
	for _, c := range p.Constraints {
		for _, t := range c.LHS {
			see(t.Variable)
		}
		for _, t := range c.RHS {
			see(t.Variable)
		}
	}

	return order, index
}

// addTerms folds terms into row (scaled by sign) and accumulates bare
// constants (scaled by -sign, since they move to the opposite side)
// into *rhsConst. Every t.Variable is already present in index: index
// is built by collectVariables from these same objective and
// constraint terms before addTerms is ever called.
func addTerms(row []int64, rhsConst *int64, index map[string]int, terms []Term, sign int64) {
	for _, t := range terms {
		if t.Variable == "" {
			*rhsConst -= sign * t.Coefficient
			continue
		}
		row[index[t.Variable]] += sign * t.Coefficient
	}
}

// relationHolds reports whether the scalar relation lhs `rel` rhs is true.
func relationHolds(rel Relation, lhs, rhs int64) bool {
	switch rel {
	case EQ:
		return lhs == rhs
	case GE:
		return lhs >= rhs
	default:
		return lhs <= rhs
	}
}

// checkRange verifies every canonicalised entry fits the Instance's
// 32-bit invariant.
func checkRange(a *matrix.Dense, b, c []int64) error {
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if abs64(a.At(i, j)) > maxCoefficient {
				return ErrOverflow
			}
		}
	}
	for _, v := range b {
		if abs64(v) > maxCoefficient {
			return ErrOverflow
		}
	}
	for _, v := range c {
		if abs64(v) > maxCoefficient {
			return ErrOverflow
		}
	}

	return nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
