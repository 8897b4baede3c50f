// SPDX-License-Identifier: MIT
package operator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

// TestGateMatrices_ClosedForms builds every closed form without a panic and
// spot-checks the helpers that assemble them.
func TestGateMatrices_ClosedForms(t *testing.T) {
	for _, op := range unitaryZoo(t) {
		require.NotPanics(t, func() {
			_, err := op.Matrix(wires.Wires{})
			require.NoError(t, err)
		}, op.String())
	}

	// IsingXX(π) = -i·X⊗X
	m, err := operator.IsingXX(math.Pi, 0, 1).Matrix(wires.Wires{})
	require.NoError(t, err)
	xx, err := matrix.Kron(operator.PauliMatrix('X'), operator.PauliMatrix('X'))
	require.NoError(t, err)
	want, err := matrix.Scale(xx, -1i)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(m, want, 0, 1e-12))

	// four controls: identity everywhere except the X block in the corner
	m, err = operator.MultiControlledX(0, 1, 2, 3, 4).Matrix(wires.Wires{})
	require.NoError(t, err)
	require.Equal(t, 32, m.Rows())
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			want := complex128(0)
			switch {
			case i < 30 && i == j:
				want = 1
			case i == 30 && j == 31, i == 31 && j == 30:
				want = 1
			}
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "(%d, %d)", i, j)
		}
	}

	id := operator.PauliMatrix('I')
	require.True(t, matrix.IsIdentity(id, 1e-12))
}
