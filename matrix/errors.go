package matrix

import "errors"

// Sentinel errors for matrix construction and access.
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: rows and cols must be positive")

	// ErrOutOfRange is the panic value when At/Set is called with an out-of-bounds index.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRowLength is returned when a row literal's length does not match cols.
	ErrRowLength = errors.New("matrix: row length does not match cols")
)
