// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used to carry pairwise
// distance tables between the geometry, solver and reporting layers.
//
// The package offers:
//
//   - Dense: a row-major matrix stored in one flat slice.
//   - Validators: shape, finiteness, zero-diagonal and symmetry checks that
//     return plain sentinels for errors.Is matching.
//   - Display helpers: Round and Rows for tabular consumers.
//
// Indexers (At/Set) never panic; they return ErrIndexOutOfBounds.
package matrix
