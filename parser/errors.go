package parser

import "errors"

var (
	// ErrEmptyInput is returned when the reader produces no non-blank lines.
	ErrEmptyInput = errors.New("parser: empty input")

	// ErrMissingSense is returned when the first line is not
	// "maximize" or "minimize".
	ErrMissingSense = errors.New("parser: first line must be \"maximize\" or \"minimize\"")

	// ErrSyntax is the umbrella sentinel for a malformed constraint or
	// term line; wrapped with the offending line's position among the
	// input's non-blank lines (blank lines are not counted) and its text.
	ErrSyntax = errors.New("parser: syntax error")
)
