package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/geom"
)

func triangle345(t *testing.T) *geom.Points {
	t.Helper()
	p, err := geom.NewPoints([]geom.Point{{0, 0}, {3, 0}, {3, 4}})
	require.NoError(t, err)

	return p
}

func TestNilPoints_IsEmpty(t *testing.T) {
	var p *geom.Points
	require.Equal(t, 0, p.Len())
	_, err := p.DistanceMatrix()
	require.ErrorIs(t, err, geom.ErrEmptyPoints)
}

func TestDistance_Triangle345(t *testing.T) {
	p := triangle345(t)
	require.Equal(t, 3.0, p.Distance(0, 1))
	require.Equal(t, 4.0, p.Distance(1, 2))
	require.Equal(t, 5.0, p.Distance(0, 2))
}

func TestDistance_SymmetricAndZeroSelf(t *testing.T) {
	p, err := geom.RandomPoints(40, geom.NewRand(7))
	require.NoError(t, err)

	var i, j int
	for i = 0; i < p.Len(); i++ {
		require.Zero(t, p.Distance(i, i))
		for j = 0; j < p.Len(); j++ {
			require.InDelta(t, p.Distance(i, j), p.Distance(j, i), 1e-15)
			require.GreaterOrEqual(t, p.Distance(i, j), 0.0)
		}
	}
}

func TestDistance_OutOfRangePanics(t *testing.T) {
	p := triangle345(t)
	require.Panics(t, func() { p.Distance(0, 3) })
	require.Panics(t, func() { p.Distance(-1, 0) })
}

func TestNewPoints_CopiesInputAndRejectsNonFinite(t *testing.T) {
	src := []geom.Point{{0, 0}, {1, 1}}
	p, err := geom.NewPoints(src)
	require.NoError(t, err)
	src[1] = geom.Point{X: 9, Y: 9}
	require.Equal(t, geom.Point{X: 1, Y: 1}, p.At(1))

	out := p.Slice()
	out[0] = geom.Point{X: 5, Y: 5}
	require.Equal(t, geom.Point{}, p.At(0))

	_, err = geom.NewPoints([]geom.Point{{math.NaN(), 0}})
	require.ErrorIs(t, err, geom.ErrNonFinite)
	_, err = geom.NewPoints([]geom.Point{{0, math.Inf(-1)}})
	require.ErrorIs(t, err, geom.ErrNonFinite)
}

func TestDistanceMatrix(t *testing.T) {
	p := triangle345(t)
	m, err := p.DistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 3, 5},
		{3, 0, 4},
		{5, 4, 0},
	}, m.ToRows())

	empty, err := geom.NewPoints(nil)
	require.NoError(t, err)
	require.Zero(t, empty.Len())
	_, err = empty.DistanceMatrix()
	require.ErrorIs(t, err, geom.ErrEmptyPoints)
}

func TestDistanceMatrix_ExactlySymmetric(t *testing.T) {
	p, err := geom.RandomPoints(25, geom.NewRand(42))
	require.NoError(t, err)
	m, err := p.DistanceMatrix()
	require.NoError(t, err)

	rows := m.ToRows()
	var i, j int
	for i = range rows {
		require.Zero(t, rows[i][i])
		for j = range rows {
			require.Equal(t, rows[i][j], rows[j][i])
			require.Equal(t, p.Distance(min(i, j), max(i, j)), rows[i][j])
		}
	}
}
