// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nntour/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	v, _ := m.At(2, 1)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestDense_CloneAndToRowsAreIndependent(t *testing.T) {
	src := [][]float64{{0, 1}, {1, 0}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)

	src[0][1] = 99 // literal is copied on construction
	v, _ := m.At(0, 1)
	require.Equal(t, 1.0, v)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 7))
	v, _ = m.At(0, 1)
	require.Equal(t, 1.0, v)

	rows := m.ToRows()
	rows[1][0] = 42
	v, _ = m.At(1, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{0, 1}, {42, 0}}, rows)
}

func TestRound(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.23456}, {1.23456, 0.0006}})
	require.NoError(t, err)

	r, err := matrix.Round(m, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1.235}, {1.235, 0.001}}, r.ToRows())

	// Input untouched.
	v, _ := m.At(0, 1)
	require.Equal(t, 1.23456, v)

	r0, err := matrix.Round(m, -2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {1, 0}}, r0.ToRows())

	wide, err := matrix.Round(m, 400)
	require.NoError(t, err)
	v, _ = wide.At(0, 1)
	require.False(t, math.IsNaN(v))
	require.InDelta(t, 1.23456, v, 1e-12)

	_, err = matrix.Round(nil, 3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {1.5, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}
