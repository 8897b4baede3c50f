// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/stretchr/testify/require"
)

func TestBasisStatePreparation_Errors(t *testing.T) {
	tests := []struct {
		name string
		bits []int
		w    []any
	}{
		{"empty state", nil, []any{0}},
		{"length mismatch", []int{0, 1}, []any{0, 1, 2}},
		{"values outside 0/1", []int{0, 2}, []any{0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := operator.BasisStatePreparation(tc.bits, tc.w...)
			require.ErrorIs(t, err, operator.ErrInvalidBasisState)
		})
	}
}

func TestBasisStatePreparation_Decomposition(t *testing.T) {
	prep, err := operator.BasisStatePreparation([]int{1, 0, 1, 1}, "a", "b", "c", "d")
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1, 1}, prep.Bits())

	ops, err := prep.Decomposition()
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for i, w := range []string{"a", "c", "d"} {
		require.Equal(t, operator.KindPauliX, ops[i].Kind())
		require.Equal(t, "["+w+"]", ops[i].Wires().String())
	}

	_, err = prep.Matrix(prep.Wires())
	require.ErrorIs(t, err, operator.ErrMatrixUndefined)
	_, err = operator.PauliX(0).Decomposition()
	require.ErrorIs(t, err, operator.ErrUnsupported)
}
