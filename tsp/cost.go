// Package tsp: length utilities for closed tours.
//
// This file measures the cycle described by a permutation tour: n
// consecutive-pair distances, the wrap-around edge tour[n-1]→tour[0] included.
//
// Design:
//   - The permutation is validated first; ErrInvalidTour on any defect.
//   - Summation runs in tour order; the total is then rounded to 1e-9 so
//     the value is stable across platforms and optimisation levels.
//   - EdgeLengths exposes the unrounded per-edge terms of the same sum.
//
// Complexity:
//   - O(n) time, O(n) space for the permutation marker.
package tsp

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the length of the closed cycle described by tour:
// the n consecutive-pair distances, including tour[n-1]→tour[0].
//
// The result equals the literal in-order sum of those distances to within
// 5e-10 (the 1e-9 rounding grid).
//
// Contract:
//   - tour is a permutation of {0..d.Len()-1}.
//
// Errors: ErrNilOracle, ErrInvalidTour.
// Complexity: O(n) time, O(n) space for the permutation check.
func TourLength(d Oracle, tour []int) (float64, error) {
	if d == nil {
		return 0, ErrNilOracle
	}
	n := d.Len()
	if err := ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += d.Distance(tour[i], tour[(i+1)%n])
	}

	return round1e9(sum), nil
}

// EdgeLengths returns the n edge lengths of the closed cycle in tour order;
// element i is the distance tour[i]→tour[(i+1)%n].
//
// Errors: ErrNilOracle, ErrInvalidTour.
// Complexity: O(n).
func EdgeLengths(d Oracle, tour []int) ([]float64, error) {
	if d == nil {
		return nil, ErrNilOracle
	}
	n := d.Len()
	if err := ValidatePermutation(tour, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = d.Distance(tour[i], tour[(i+1)%n])
	}

	return out, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
