package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/matrix"
	"github.com/katalvlaran/nntour/tsp"
)

func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestMatrixOracle_MatchesPoints(t *testing.T) {
	p := randomPoints(t, 90, 17)
	m, err := p.DistanceMatrix()
	require.NoError(t, err)

	o, err := tsp.NewMatrixOracle(m)
	require.NoError(t, err)
	require.Equal(t, p.Len(), o.Len())

	fromPoints, err := tsp.Solve(p, tsp.DefaultOptions())
	require.NoError(t, err)
	fromMatrix, err := tsp.Solve(o, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, fromPoints, fromMatrix)
}

func TestMatrixOracle_Snapshot(t *testing.T) {
	m := denseOf(t, [][]float64{{0, 3}, {3, 0}})
	o, err := tsp.NewMatrixOracle(m)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 100))
	require.Equal(t, 3.0, o.Distance(0, 1))
	require.Zero(t, o.Distance(1, 1))
	require.Panics(t, func() { o.Distance(2, 0) })
}

func TestMatrixOracle_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]float64
		target error
	}{
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 2}}, matrix.ErrNonSquare},
		{"NaN", [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, matrix.ErrNaNInf},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, matrix.ErrNegativeEntry},
		{"diagonal", [][]float64{{1, 2}, {2, 0}}, matrix.ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 2}, {3, 0}}, matrix.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewMatrixOracle(denseOf(t, tc.rows))
			require.ErrorIs(t, err, tsp.ErrBadMatrix)
			require.ErrorIs(t, err, tc.target)
		})
	}

	_, err := tsp.NewMatrixOracle(denseOf(t, [][]float64{{0}}))
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)

	_, err = tsp.NewMatrixOracle(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
