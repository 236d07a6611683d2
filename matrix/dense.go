// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions if rows or cols are not positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 literal into a new Dense.
//
// Errors: ErrInvalidDimensions for an empty literal or empty first row,
// ErrRaggedRows when any row length differs from the first.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrRaggedRows
		}
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows returns the matrix as a freshly allocated [][]float64.
// The result does not alias the backing storage.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// maxRoundPlaces caps Round precision; 10^places must stay finite.
const maxRoundPlaces = 15

// Round returns a copy of m with every element rounded half away from zero
// to the given number of decimal places. Negative places are treated as 0,
// places above 15 as 15.
// Used by tabular consumers; the input is left untouched.
// Complexity: O(r*c).
func Round(m *Dense, places int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if places < 0 {
		places = 0
	}
	if places > maxRoundPlaces {
		places = maxRoundPlaces
	}
	var (
		scale = math.Pow(10, float64(places))
		out   = &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
		k     int
	)
	for k = range m.data {
		out.data[k] = math.Round(m.data[k]*scale) / scale
	}

	return out, nil
}
