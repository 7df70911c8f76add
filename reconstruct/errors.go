package reconstruct

import "errors"

// ErrInfeasible is returned when the reconstructed sink coordinate
// fails the per-row relation safety check (spec.md §4.5: "should be
// unreachable if target-set selection is correct").
var ErrInfeasible = errors.New("reconstruct: sink coordinate fails relation check")
