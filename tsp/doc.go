// Package tsp builds Travelling Salesman tours with the greedy
// nearest-neighbour heuristic.
//
// Inputs are expressed through the Oracle interface (a symmetric distance
// function over indices 0..n-1). *geom.Points satisfies it directly; a
// precomputed distance table can be wrapped with NewMatrixOracle.
//
//   - NearestNeighbor: greedy construction from a start index.
//     Complexity: O(n²) distance evaluations, O(n) memory.
//
//   - TourLength: length of the closed cycle, wrap-around edge included.
//     Complexity: O(n).
//
//   - Solve: validates options, builds the tour and measures it.
//
// A tour is a permutation of {0..n-1} of length n. The closing edge back to
// the first index is implicit; Result.Closed returns the n+1 form for
// plotting consumers.
//
// Ties are broken towards the lowest candidate index, so identical input
// always yields an identical tour.
//
// The heuristic targets interactive sizes (n ≲ 200). Optimal solving,
// 2-opt/3-opt improvement and spatial indexing are out of scope.
package tsp
