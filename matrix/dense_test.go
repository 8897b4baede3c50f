// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 2+3i))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2+3i, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDenseFrom_LengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []complex128{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_StringRealAndComplex(t *testing.T) {
	h := mustRows(t, []complex128{1, 1}, []complex128{1, -1})
	require.Equal(t, "[1, 1]\n[1, -1]\n", h.String())
	require.True(t, h.IsReal())
	require.False(t, pauliY(t).IsReal())
}

func TestDense_CloneIsDeep(t *testing.T) {
	a := pauliX(t)
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, 5))
	v, _ := a.At(0, 0)
	require.Equal(t, complex128(0), v)
}
