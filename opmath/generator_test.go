// SPDX-License-Identifier: MIT
package opmath_test

import (
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

// TestGeneratorOf_ReproducesGate checks U(θ) = exp(iθG) up to a global phase.
func TestGeneratorOf_ReproducesGate(t *testing.T) {
	const theta = 0.37
	pauliRot, err := operator.PauliRot(theta, "XYZ", 0, 1, 2)
	require.NoError(t, err)

	gates := []operator.Operator{
		operator.RX(theta, 0),
		operator.RY(theta, 0),
		operator.RZ(theta, 0),
		operator.PhaseShift(theta, 0),
		operator.U1(theta, 0),
		operator.MultiRZ(theta, 0, 1, 2),
		operator.IsingXX(theta, 0, 1),
		operator.IsingYY(theta, 0, 1),
		operator.IsingZZ(theta, 0, 1),
		pauliRot,
		operator.ControlledPhaseShift(theta, 0, 1),
		operator.CRX(theta, 0, 1),
		operator.CRY(theta, 0, 1),
		operator.CRZ(theta, 0, 1),
		operator.SingleExcitation(theta, 0, 1),
		operator.DoubleExcitation(theta, 0, 1, 2, 3),
	}
	for _, gate := range gates {
		t.Run(gate.Name(), func(t *testing.T) {
			g, err := opmath.GeneratorOf(gate)
			require.NoError(t, err)
			require.True(t, g.IsHermitian())

			u := mustMatrix(t, gate, wires.Wires{})
			e := mustMatrix(t, opmath.NewExp(complex(0, theta), g), gate.Wires())
			requireSameUpToPhase(t, e, u)
		})
	}
}

func TestGeneratorOf_Undefined(t *testing.T) {
	for _, op := range []operator.Operator{
		operator.Hadamard(0),
		operator.CNOT(0, 1),
		opmath.MustSum(operator.PauliX(0)),
	} {
		_, err := opmath.GeneratorOf(op)
		require.ErrorIs(t, err, opmath.ErrGeneratorUndefined, op.Name())
	}
}

func TestPauliWord(t *testing.T) {
	w := wires.New("a", "b", "c")
	require.Equal(t, operator.KindIdentity, opmath.PauliWord("III", w).Kind())
	require.Equal(t, "[a]", opmath.PauliWord("III", w).Wires().String())
	require.Equal(t, operator.KindPauliY, opmath.PauliWord("IYI", w).Kind())

	p := opmath.PauliWord("XIZ", w)
	require.Equal(t, operator.KindProd, p.Kind())
	require.Equal(t, "[a, c]", p.Wires().String())
}
