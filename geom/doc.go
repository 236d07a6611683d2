// Package geom holds the planar point set that tours are built over.
//
// A Points value is immutable once constructed and answers Euclidean
// distance queries between any two of its indices (the distance oracle
// consumed by package tsp). Random point sets are drawn from an explicitly
// passed *rand.Rand; there is no package-level random state.
//
//   - Distance: O(1), symmetric, zero on the diagonal.
//   - DistanceMatrix: O(n²), exact symmetry (upper triangle mirrored).
//   - RandomPoints: O(n), uniform in the unit square [0,1)×[0,1).
package geom
