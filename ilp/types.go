package ilp

import (
	"errors"

	"github.com/ilpgraph/ilpgraph/matrix"
)

// Sentinel errors raised by Canonicalise. The core never raises a
// parse error itself (spec: that sentinel belongs to the parser
// package) — these cover only the shape/feasibility failures that are
// the canonicaliser's own responsibility.
var (
	// ErrNoConstraints is returned when the parsed ILP has zero constraints.
	ErrNoConstraints = errors.New("ilp: no constraints")

	// ErrInfeasible is returned when a constant-only constraint is
	// trivially false (e.g. "0 <= -1").
	ErrInfeasible = errors.New("ilp: trivially infeasible constraint")

	// ErrEmptyObjective is returned when the objective has no terms at all
	// (not even a bare constant).
	ErrEmptyObjective = errors.New("ilp: empty objective")

	// ErrOverflow is returned when a canonicalised A, B, or C entry has
	// a magnitude above 2^31-1, the 32-bit limit of the Instance invariant.
	ErrOverflow = errors.New("ilp: coefficient overflows 32-bit range")
)

// maxCoefficient is the largest magnitude a canonicalised A/B/C entry
// may take (fits in a signed 32-bit integer, per the Instance invariant;
// the check is symmetric, so -2^31 is rejected as well).
const maxCoefficient = int64(1)<<31 - 1

// Sense is the optimisation direction requested by the caller, before
// canonicalisation folds it into the sign of C.
type Sense int

const (
	// Maximize requests the largest cᵀx.
	Maximize Sense = iota
	// Minimize requests the smallest cᵀx.
	Minimize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	if s == Minimize {
		return "minimize"
	}

	return "maximize"
}

// Relation is the per-row relational operator between A's row and b.
type Relation int

const (
	// LE is "≤".
	LE Relation = iota
	// EQ is "=".
	EQ
	// GE is "≥".
	GE
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "<="
	}
}

// Term is one (coefficient, variable) pair from the parser. Variable
// is empty for a bare constant term.
type Term struct {
	Coefficient int64
	Variable    string // "" means a bare constant
}

// Constraint is one parsed row before canonicalisation: an additive
// sum on the left, a relation, and an additive sum on the right. The
// canonicaliser moves every constant to the right-hand side.
type Constraint struct {
	LHS      []Term
	Relation Relation
	RHS      []Term
}

// ParsedILP is the parser → core boundary (spec.md §6): an objective
// sense, an ordered objective sum, and an ordered constraint list.
type ParsedILP struct {
	Sense       Sense
	Objective   []Term
	Constraints []Constraint
}

// Instance is the canonical, immutable ILP consumed by proximity,
// pgraph and solver: always maximisation form, A/B/C already dense and
// sign-folded.
//
// Invariants (enforced by Canonicalise):
//   - M, N >= 1.
//   - len(Rel) == M, len(C) == len(VarNames) == N.
//   - every entry of A, B, C fits in a 32-bit signed integer.
//   - VarNames has no duplicates.
type Instance struct {
	A                *matrix.Dense
	B                []int64
	C                []int64
	Rel              []Relation
	VarNames         []string
	NegatedObjective bool // true if the caller's sense was Minimize
}

// M returns the number of constraint rows.
func (in *Instance) M() int { return len(in.B) }

// N returns the number of variables (columns of A).
func (in *Instance) N() int { return len(in.VarNames) }

// RestoreObjective negates z back to the caller's original sense if
// the instance was canonicalised from a "minimize" program.
func (in *Instance) RestoreObjective(z int64) int64 {
	if in.NegatedObjective {
		return -z
	}

	return z
}

// ToParsedILP reconstructs a ParsedILP whose Canonicalise result is
// bit-for-bit identical to in. It exists so Canonicalise's idempotence
// (spec.md §8 property 6) can be exercised as a round-trip test without
// a textual parser in the loop.
func (in *Instance) ToParsedILP() ParsedILP {
	sense := Maximize
	c := in.C
	if in.NegatedObjective {
		sense = Minimize
		c = make([]int64, len(in.C))
		for i, v := range in.C {
			c[i] = -v
		}
	}

	objective := make([]Term, 0, len(in.VarNames))
	for i, name := range in.VarNames {
		objective = append(objective, Term{Coefficient: c[i], Variable: name})
	}

	constraints := make([]Constraint, in.M())
	for i := 0; i < in.M(); i++ {
		lhs := make([]Term, 0, in.N())
		for j, name := range in.VarNames {
			if v := in.A.At(i, j); v != 0 {
				lhs = append(lhs, Term{Coefficient: v, Variable: name})
			}
		}
		constraints[i] = Constraint{
			LHS:      lhs,
			Relation: in.Rel[i],
			RHS:      []Term{{Coefficient: in.B[i]}},
		}
	}

	return ParsedILP{Sense: sense, Objective: objective, Constraints: constraints}
}
