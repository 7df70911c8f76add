package pgraph

import "errors"

var (
	// ErrGraphNil is returned when a nil *ilp.Instance is passed to Build.
	ErrGraphNil = errors.New("pgraph: instance is nil")

	// ErrDimensionOverflow is returned when m exceeds MaxDim.
	ErrDimensionOverflow = errors.New("pgraph: constraint count exceeds MaxDim")

	// ErrUnbounded is returned when a zero column carries a strictly
	// positive coefficient in the (already maximisation-form) objective:
	// x_j is then unconstrained and the objective is unbounded above.
	ErrUnbounded = errors.New("pgraph: unbounded (zero column with positive objective coefficient)")

	// ErrCancelled is returned when the caller-provided cancellation flag
	// fires between layers.
	ErrCancelled = errors.New("pgraph: build cancelled")
)
