package proximity

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ilpgraph/ilpgraph/ilp"
	"github.com/ilpgraph/ilpgraph/matrix"
)

// Bound holds the proximity parameters derived from an Instance's A, b.
//
// RStart is the radius pgraph's builder actually enforces. REnd is a
// fractional, strictly informational value: it is reported alongside
// RStart but never used to prune the search (spec.md §9 "End-radius
// diagnostic").
type Bound struct {
	Delta  int64 // max |A_ij|
	BInf   int64 // ‖b‖∞
	RStart int64 // m*(2*m*Delta + BInf)
	REnd   float64
}

// Compute derives Delta, ‖b‖∞, RStart and the diagnostic REnd from an
// Instance, per spec.md §4.2.
func Compute(in *ilp.Instance) Bound {
	m := int64(in.M())
	delta := in.A.MaxAbs()
	bInf := matrix.AbsMaxInt64(in.B)

	return Bound{
		Delta:  delta,
		BInf:   bInf,
		RStart: m * (2*m*delta + bInf),
		REnd:   hadamardBound(in.A, m),
	}
}

// hadamardBound reports a diagnostic-only fractional bound on the
// largest subdeterminant of A, via Hadamard's inequality (|det| is at
// most the product of its row Euclidean norms) averaged down by the
// number of rows. It never feeds back into RStart or the graph
// builder; it exists purely to give an operator a feel for how loose
// RStart is on a given instance.
func hadamardBound(a *matrix.Dense, m int64) float64 {
	if m == 0 {
		return 0
	}

	rows := a.ToFloat64()
	dense := mat.NewDense(len(rows), a.Cols(), flatten(rows))

	product := 1.0
	r, _ := dense.Dims()
	for i := 0; i < r; i++ {
		var sumSquares float64
		for j := 0; j < a.Cols(); j++ {
			v := dense.At(i, j)
			sumSquares += v * v
		}
		product *= math.Sqrt(sumSquares)
	}

	return product / float64(m)
}

func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	out := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		out = append(out, row...)
	}

	return out
}
