// Package tsp_test shares small fixtures across the test files of this package.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/geom"
)

// mustPoints builds an immutable point set or fails the test.
func mustPoints(t testing.TB, pts ...geom.Point) *geom.Points {
	t.Helper()
	p, err := geom.NewPoints(pts)
	require.NoError(t, err)

	return p
}

// unitSquare returns the corners (0,0) (1,0) (1,1) (0,1) in that order.
func unitSquare(t testing.TB) *geom.Points {
	return mustPoints(t,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 1, Y: 0},
		geom.Point{X: 1, Y: 1},
		geom.Point{X: 0, Y: 1},
	)
}

// triangle345 returns a 3-4-5 right triangle.
func triangle345(t testing.TB) *geom.Points {
	return mustPoints(t,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 3, Y: 0},
		geom.Point{X: 3, Y: 4},
	)
}

// randomPoints returns n seeded points in the unit square.
func randomPoints(t testing.TB, n int, seed int64) *geom.Points {
	t.Helper()
	p, err := geom.RandomPoints(n, geom.NewRand(seed))
	require.NoError(t, err)

	return p
}

// requirePermutation asserts tour is a permutation of {0..n-1}.
func requirePermutation(t testing.TB, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n)
	seen := make(map[int]bool, n)
	for _, v := range tour {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "duplicate index %d in %v", v, tour)
		seen[v] = true
	}
}
