// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Validators wrap these with the
// validator name; callers match with errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRaggedRows is returned when a [][]float64 literal has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that |a_ij - a_ji| exceeded the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry exceeded the tolerance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative value where only non-negative values are allowed.
	ErrNegativeEntry = errors.New("matrix: negative entry")
)
