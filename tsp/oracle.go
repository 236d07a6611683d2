package tsp

import (
	"fmt"

	"github.com/katalvlaran/nntour/matrix"
)

// symTol is the structural tolerance for diagonal and symmetry checks.
const symTol = 1e-12

// MatrixOracle answers distance queries from a validated, precomputed table.
// It keeps its own flat copy, so later writes to the source matrix are not seen.
type MatrixOracle struct {
	n    int
	data []float64
}

var _ Oracle = (*MatrixOracle)(nil)

// NewMatrixOracle validates m and snapshots it as an Oracle.
//
// Validation order: square → n ≥ 2 → finite → non-negative → zero diagonal →
// symmetric (both within 1e-12).
//
// Errors: ErrTooFewPoints for n < 2; otherwise ErrBadMatrix joined with the
// matrix sentinel (matrix.ErrNonSquare, ErrNaNInf, ErrNegativeEntry,
// ErrNonZeroDiagonal, ErrAsymmetry, ErrNilMatrix).
//
// Complexity: O(n²).
func NewMatrixOracle(m matrix.Matrix) (*MatrixOracle, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMatrix, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	checks := []func(matrix.Matrix) error{
		matrix.ValidateFinite,
		matrix.ValidateNonNegative,
		func(m matrix.Matrix) error { return matrix.ValidateZeroDiagonal(m, symTol) },
		func(m matrix.Matrix) error { return matrix.ValidateSymmetric(m, symTol) },
	}
	for _, check := range checks {
		if err := check(m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadMatrix, err)
		}
	}

	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j], _ = m.At(i, j)
		}
	}

	return &MatrixOracle{n: n, data: data}, nil
}

// Len returns the number of indices.
func (o *MatrixOracle) Len() int { return o.n }

// Distance returns the table entry (i, j). Panics if either index is out of range.
func (o *MatrixOracle) Distance(i, j int) float64 {
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		panic(fmt.Sprintf("tsp: MatrixOracle.Distance(%d,%d) out of range [0,%d)", i, j, o.n))
	}

	return o.data[i*o.n+j]
}
