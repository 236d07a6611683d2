// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors wrapped with the validator name so call sites can
//     match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normTol rejects NaN/Inf tolerances and folds negative ones to their absolute value.
func normTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that every entry is finite (no NaN, no ±Inf).
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks that every entry is ≥ 0.
// Errors: ErrNilMatrix, ErrNegativeEntry.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return validatorErrorf("ValidateNonNegative", ErrNegativeEntry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	tol, err := normTol("ValidateZeroDiagonal", tol)
	if err != nil {
		return err
	}
	var (
		i int
		v float64
	)
	for i = 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²) on the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := normTol("ValidateSymmetric", tol)
	if err != nil {
		return err
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
