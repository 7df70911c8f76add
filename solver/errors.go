package solver

import "errors"

// Error kinds from spec.md §7. ParseError is defined here for
// cmd/ilpgraph to wrap parser.ErrSyntax-family errors into at the CLI
// boundary; Solve itself never constructs it, since the core never
// raises a parse error (spec.md §7).
var (
	ErrParse          = errors.New("solver: parse error")
	ErrInfeasible     = errors.New("solver: infeasible")
	ErrUnbounded      = errors.New("solver: unbounded")
	ErrOverflow       = errors.New("solver: overflow")
	ErrRadiusExceeded = errors.New("solver: radius exceeded")
	ErrCancelled      = errors.New("solver: cancelled")
)
