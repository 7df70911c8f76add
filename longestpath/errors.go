package longestpath

import "errors"

var (
	// ErrGraphNil is returned when a nil *pgraph.Graph is passed to Solve.
	ErrGraphNil = errors.New("longestpath: graph is nil")

	// ErrOverflow is returned when a node's distance leaves the
	// configured magnitude cap.
	ErrOverflow = errors.New("longestpath: distance overflow")

	// ErrCancelled is returned when the caller-provided context is
	// done before relaxation converges.
	ErrCancelled = errors.New("longestpath: solve cancelled")
)
