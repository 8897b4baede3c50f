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

// unitaryZoo lists one instance of every kind with a matrix.
func unitaryZoo(t *testing.T) []*operator.Elementary {
	t.Helper()
	rot, err := operator.PauliRot(0.7, "XZY", 0, 1, 2)
	require.NoError(t, err)

	return []*operator.Elementary{
		operator.Identity(0, 1),
		operator.PauliX(0), operator.PauliY(0), operator.PauliZ(0),
		operator.Hadamard(0), operator.S(0), operator.T(0), operator.SX(0),
		operator.RX(0.3, 0), operator.RY(-1.1, 0), operator.RZ(2.2, 0),
		operator.PhaseShift(0.4, 0), operator.U1(0.9, 0),
		operator.U2(0.3, 1.1, 0), operator.U3(0.5, 0.2, -0.7, 0),
		operator.Rot(0.1, 0.2, 0.3, 0),
		operator.CNOT(0, 1), operator.CZ(0, 1), operator.CY(0, 1),
		operator.SWAP(0, 1), operator.ISWAP(0, 1), operator.SISWAP(0, 1),
		operator.CSWAP(0, 1, 2), operator.Toffoli(0, 1, 2),
		operator.ControlledPhaseShift(0.6, 0, 1),
		operator.CRX(0.2, 0, 1), operator.CRY(0.3, 0, 1), operator.CRZ(0.4, 0, 1),
		operator.CRot(0.1, 0.5, 0.9, 0, 1),
		operator.MultiRZ(0.8, 0, 1, 2),
		operator.IsingXX(0.3, 0, 1), operator.IsingYY(0.4, 0, 1), operator.IsingZZ(0.5, 0, 1),
		operator.MultiControlledX(0, 1, 2, 3),
		operator.SingleExcitation(0.7, 0, 1),
		operator.DoubleExcitation(0.9, 0, 1, 2, 3),
		rot,
	}
}

func TestElementary_UnitaryAndAdjoint(t *testing.T) {
	for _, op := range unitaryZoo(t) {
		t.Run(op.String(), func(t *testing.T) {
			m, err := op.Matrix(wires.Wires{})
			require.NoError(t, err)
			require.Equal(t, 1<<op.Wires().Len(), m.Rows())

			adj, err := op.Adjoint().Matrix(wires.Wires{})
			require.NoError(t, err)
			prod, err := matrix.Mul(m, adj)
			require.NoError(t, err)
			require.True(t, matrix.IsIdentity(prod, 1e-10), "U·U† != I")

			if op.IsHermitian() {
				require.True(t, matrix.IsHermitian(m, 1e-12))
			}
		})
	}
}

func TestNew_ArityErrors(t *testing.T) {
	_, err := operator.New(operator.KindCNOT, wires.New(0))
	require.ErrorIs(t, err, operator.ErrWireCount)
	_, err = operator.New(operator.KindRX, wires.New(0))
	require.ErrorIs(t, err, operator.ErrParamCount)
	_, err = operator.New(operator.KindSum, wires.New(0))
	require.ErrorIs(t, err, operator.ErrUnsupported)
	_, err = operator.New(operator.KindMultiControlledX, wires.New(0))
	require.ErrorIs(t, err, operator.ErrWireCount)

	_, err = operator.PauliRot(0.1, "XX", 0)
	require.ErrorIs(t, err, operator.ErrWireCount)
	_, err = operator.PauliRot(0.1, "XA", 0, 1)
	require.ErrorIs(t, err, operator.ErrPauliWord)

	require.Panics(t, func() { operator.CNOT(0, 0) })
}

func TestElementary_NamesAndAdjointFlag(t *testing.T) {
	s := operator.S(0)
	require.Equal(t, "S", s.Name())
	require.Equal(t, "Adjoint(S)", s.Adjoint().Name())
	require.Equal(t, "S", s.Adjoint().Adjoint().Name())
	require.Equal(t, "PauliX", operator.PauliX(0).Adjoint().Name())

	rx := operator.RX(0.5, "a").Adjoint().(*operator.Elementary)
	require.Equal(t, []float64{-0.5}, rx.Params())
	require.Equal(t, "RX(-0.5, wires=[a])", rx.String())
}

func TestElementary_MatrixWireOrder(t *testing.T) {
	// CNOT with control 1 and target 0, seen in order [0, 1].
	got, err := operator.CNOT(1, 0).Matrix(wires.New(0, 1))
	require.NoError(t, err)
	want, _ := matrix.NewDenseRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})
	require.True(t, matrix.AllClose(got, want, 0, 1e-12))

	sp, err := operator.CNOT(1, 0).SparseMatrix(wires.New(0, 1))
	require.NoError(t, err)
	require.True(t, matrix.AllClose(sp.ToDense(), want, 0, 1e-12))

	_, err = operator.PauliX(5).Matrix(wires.New(0, 1))
	require.ErrorIs(t, err, matrix.ErrWireOrder)
}

func TestElementary_Eigvals(t *testing.T) {
	vals, err := operator.PauliZ(0).Eigvals()
	require.NoError(t, err)
	require.Equal(t, []complex128{1, -1}, vals)

	vals, err = operator.Identity(0, 1).Eigvals()
	require.NoError(t, err)
	require.Len(t, vals, 4)

	vals, err = operator.RZ(math.Pi, 0).Eigvals()
	require.NoError(t, err)
	require.InDelta(t, -1, imag(vals[0]), 1e-12)
	require.InDelta(t, 1, imag(vals[1]), 1e-12)

	_, err = operator.RX(0.3, 0).Eigvals()
	require.ErrorIs(t, err, operator.ErrEigvalsUndefined)
	_, err = operator.NewTemplate("QFT", 0, 1).Eigvals()
	require.ErrorIs(t, err, operator.ErrEigvalsUndefined)
}

func TestElementary_UndefinedCapabilities(t *testing.T) {
	_, err := operator.NewTemplate("QFT", 0, 1).Matrix(wires.Wires{})
	require.ErrorIs(t, err, operator.ErrMatrixUndefined)
	_, err = operator.NewChannel("AmplitudeDamping", []float64{0.1}, 0).SparseMatrix(wires.Wires{})
	require.ErrorIs(t, err, operator.ErrMatrixUndefined)
	_, _, err = operator.PauliX(0).Terms()
	require.ErrorIs(t, err, operator.ErrTermsUndefined)
}

func TestElementary_DataAndHash(t *testing.T) {
	a := operator.RY(0.25, 0)
	b := operator.RY(0.25, 0)
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), operator.RY(0.25, 1).Hash())
	require.NotEqual(t, operator.PauliX(0).Hash(), operator.PauliZ(0).Hash())

	require.NoError(t, a.SetData([]complex128{0.5}))
	require.Equal(t, []complex128{0.5}, a.Data())
	require.NotEqual(t, a.Hash(), b.Hash())
	require.ErrorIs(t, a.SetData([]complex128{1, 2}), operator.ErrParamCount)
	require.Equal(t, []int{0}, a.NdimParams())
	require.Equal(t, 1, a.NumParams())
}

func TestElementary_ControlWires(t *testing.T) {
	tof := operator.Toffoli(0, 1, 2)
	require.Equal(t, "[0, 1]", tof.ControlWires().String())
	require.Equal(t, "[2]", tof.TargetWires().String())

	mcx := operator.MultiControlledX("a", "b", "c", "d")
	require.Equal(t, "[d]", mcx.TargetWires().String())
	require.True(t, operator.PauliX(0).ControlWires().IsEmpty())
}
