// Package tsp: tour structure checks.
//
// Tours are permutations of {0..n-1} of length n; the closing edge is
// implicit. Helpers here look only at the index sequence and never at
// distances.
//
// Design:
//   - No logging, no panics on user input; ErrInvalidTour on any defect.
//   - Deterministic, single pass over the tour.
//
// Complexity:
//   - O(n) time, O(n) space.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Errors: ErrInvalidTour on wrong length, n ≤ 0, out-of-range or duplicate entries.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
