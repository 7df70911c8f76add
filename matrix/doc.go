// Package matrix provides a dense, row-major int64 matrix used to hold
// the constraint matrix A (and small derived vectors) of an integer
// linear program, plus the handful of linear-algebra primitives the
// proximity bound needs: largest absolute entry (of the matrix or of a
// vector), column access, and a float64 bridge for diagnostic-only
// computations.
//
// The type intentionally does not support arbitrary linear algebra
// (no inverse, no eigendecomposition, no QR): every ILP coefficient is
// an exact integer, and the solver never needs anything beyond lookups,
// norms, and column access.
package matrix
