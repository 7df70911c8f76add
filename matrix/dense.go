package matrix

import "fmt"

// Dense is a dense, row-major int64 matrix.
//
// Complexity: At/Set are O(1). Construction from rows is O(rows*cols).
type Dense struct {
	rows, cols int
	data       []int64 // data[i*cols+j] == entry (i,j)
}

// NewDense allocates a zero-filled rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from row-major literal data.
// Every row must have exactly the same length.
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix: row %d: %w", i, ErrRowLength)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// At returns the entry at (i, j).
func (m *Dense) At(i, j int) int64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrOutOfRange)
	}

	return m.data[i*m.cols+j]
}

// Set assigns the entry at (i, j).
func (m *Dense) Set(i, j int, v int64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrOutOfRange)
	}
	m.data[i*m.cols+j] = v
}

// Column returns a fresh copy of column j.
func (m *Dense) Column(j int) []int64 {
	col := make([]int64, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.At(i, j)
	}

	return col
}

// MaxAbs returns the largest absolute value among all entries.
// Returns 0 for an all-zero matrix.
func (m *Dense) MaxAbs() int64 {
	var best int64
	for _, v := range m.data {
		a := v
		if a < 0 {
			a = -a
		}
		if a > best {
			best = a
		}
	}

	return best
}

// ToFloat64 returns a row-major float64 copy, for diagnostic-only
// numerical code (see proximity.REnd) that must never feed back into
// the exact-integer solve path.
func (m *Dense) ToFloat64() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]float64, m.cols)
		for j := 0; j < m.cols; j++ {
			row[j] = float64(m.At(i, j))
		}
		out[i] = row
	}

	return out
}

// AbsMaxInt64 returns the largest absolute value among a slice of
// int64, e.g. for computing ‖b‖∞. Returns 0 for an empty slice.
func AbsMaxInt64(v []int64) int64 {
	var best int64
	for _, x := range v {
		a := x
		if a < 0 {
			a = -a
		}
		if a > best {
			best = a
		}
	}

	return best
}
