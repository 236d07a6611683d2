// Package tsp: greedy nearest-neighbour tour construction.
//
// This file holds the tour builder. It asks the Oracle for distances only,
// so it runs unchanged over live coordinates or a precomputed table.
//
// Design:
//   - No logging, no panics on user input; sentinels from types.go.
//   - One fixed-size visited slice and one result slice of capacity n.
//   - Candidates are scanned in index order and the first strict minimum
//     wins, which makes ties resolve to the lowest index.
//
// Complexity:
//   - O(n²) time (n(n-1)/2 distance queries), O(n) extra space.
package tsp

// NearestNeighbor builds a tour greedily: starting at start, it repeatedly
// travels to the closest not-yet-visited index until every index is used.
//
// Algorithm:
//  1. tour = [start]; visited[start] = true.
//  2. While len(tour) < n: scan j = 0..n-1 in order, skipping visited ones,
//     and keep the first j with strictly minimal Distance(last, j).
//  3. Append it and mark it visited.
//
// The "first strict minimum" rule breaks ties towards the lowest index, so
// the output is a deterministic function of the oracle and start.
//
// Contract:
//   - d != nil, d.Len() ≥ 2, start ∈ [0..n-1].
//   - Returns a permutation of {0..n-1} with tour[0] == start.
//
// Errors: ErrNilOracle, ErrTooFewPoints, ErrStartOutOfRange.
//
// Complexity: O(n²) time (n(n-1)/2 distance queries), O(n) space.
func NearestNeighbor(d Oracle, start int) ([]int, error) {
	if d == nil {
		return nil, ErrNilOracle
	}
	n := d.Len()
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		last    = start
		best    int
		bestD   float64
		dj      float64
		j       int
	)
	tour = append(tour, start)
	visited[start] = true

	for len(tour) < n {
		best = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			dj = d.Distance(last, j)
			// best == -1 admits the first candidate even if its distance is NaN,
			// so every step appends exactly one unvisited index.
			if best == -1 || dj < bestD {
				best, bestD = j, dj
			}
		}
		visited[best] = true
		tour = append(tour, best)
		last = best
	}

	return tour, nil
}
