// SPDX-License-Identifier: MIT
package pauli_test

import (
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

func mustWord(t *testing.T, letters string, w wires.Wires) pauli.Word {
	t.Helper()
	word, err := pauli.NewWord(letters, w)
	require.NoError(t, err)

	return word
}

func TestWord_Mul(t *testing.T) {
	w := wires.Range(2)
	tests := []struct {
		a, b, want string
		phase      complex128
	}{
		{"XI", "YI", "ZI", 1i},
		{"YI", "XI", "ZI", -1i},
		{"ZI", "XI", "YI", 1i},
		{"XZ", "XZ", "II", 1},
		{"XY", "ZZ", "YX", (-1i) * (1i)},
		{"IX", "ZI", "ZX", 1},
	}
	for _, tc := range tests {
		t.Run(tc.a+"*"+tc.b, func(t *testing.T) {
			phase, got := mustWord(t, tc.a, w).Mul(mustWord(t, tc.b, w))
			require.Equal(t, tc.phase, phase)
			require.Equal(t, tc.want, got.Letters(w))
		})
	}
}

func TestWord_Commutes(t *testing.T) {
	w := wires.Range(3)
	require.True(t, mustWord(t, "XXI", w).Commutes(mustWord(t, "ZZI", w)))
	require.False(t, mustWord(t, "XII", w).Commutes(mustWord(t, "ZZI", w)))
	require.True(t, mustWord(t, "III", w).Commutes(mustWord(t, "YYY", w)))
	require.True(t, mustWord(t, "XYZ", w).Commutes(mustWord(t, "XYZ", w)))
}

func TestWord_KeyAndOperator(t *testing.T) {
	w := wires.New(3, 0, 1)
	word := mustWord(t, "ZIX", w)
	require.Equal(t, "Z(3)", pauli.Word{"3": 'Z'}.Key())
	require.Equal(t, "X(1) Z(3)", word.Key())
	require.Equal(t, "I", pauli.Word{}.Key())

	op := word.Operator(wires.Range(4))
	require.Equal(t, operator.KindProd, op.Kind())
	require.Equal(t, "[1, 3]", op.Wires().String())

	id := pauli.Word{}.Operator(wires.New(5))
	require.Equal(t, operator.KindIdentity, id.Kind())
	require.Equal(t, "[5]", id.Wires().String())

	_, err := pauli.NewWord("XQ", wires.Range(2))
	require.ErrorIs(t, err, pauli.ErrBadLetter)
}

func TestFromOperator(t *testing.T) {
	t.Run("same wire product carries phase", func(t *testing.T) {
		s, err := pauli.FromOperator(opmath.MustProd(operator.PauliX(0), operator.PauliY(0)))
		require.NoError(t, err)
		require.Equal(t, 1, s.Len())
		require.Equal(t, complex128(1i), s.Coeff(pauli.Word{"0": 'Z'}))
	})

	t.Run("hamiltonian of products", func(t *testing.T) {
		h, _ := opmath.NewRealHamiltonian(
			[]float64{0.5, -2, 0.25},
			[]operator.Operator{
				operator.Identity(0),
				opmath.MustProd(operator.PauliZ(0), operator.PauliZ(1)),
				opmath.NewSProd(4, operator.PauliX(2)),
			},
		)
		s, err := pauli.FromOperator(h)
		require.NoError(t, err)
		coeffs, words := s.Terms()
		require.Equal(t, []complex128{0.5, -2, 1}, coeffs)
		require.Equal(t, "I", words[0].Key())
		require.Equal(t, "Z(0) Z(1)", words[1].Key())
		require.Equal(t, "[0, 1, 2]", s.Wires().String())
	})

	t.Run("sums accumulate", func(t *testing.T) {
		s, err := pauli.FromOperator(opmath.MustSum(operator.PauliX(0), operator.PauliX(0), operator.PauliZ(1)))
		require.NoError(t, err)
		require.Equal(t, complex128(2), s.Coeff(pauli.Word{"0": 'X'}))
	})

	t.Run("non pauli", func(t *testing.T) {
		_, err := pauli.FromOperator(opmath.MustSum(operator.PauliX(0), operator.Hadamard(1)))
		require.ErrorIs(t, err, pauli.ErrNotPauli)
		_, _, err = pauli.WordOf(opmath.MustSum(operator.PauliX(0), operator.PauliZ(1)))
		require.ErrorIs(t, err, pauli.ErrNotWord)
	})
}

func TestSentence_MulAndHamiltonian(t *testing.T) {
	a, _ := opmath.NewRealHamiltonian([]float64{0.5, 0.5}, []operator.Operator{
		opmath.MustProd(operator.PauliX(0), operator.PauliY(1)),
		opmath.MustProd(operator.PauliX(0), operator.PauliZ(1)),
	})
	b, _ := opmath.NewRealHamiltonian([]float64{0.5, 0.5}, []operator.Operator{
		opmath.MustProd(operator.PauliX(0), operator.PauliX(1)),
		opmath.MustProd(operator.PauliZ(0), operator.PauliZ(1)),
	})
	sa, err := pauli.FromOperator(a)
	require.NoError(t, err)
	sb, err := pauli.FromOperator(b)
	require.NoError(t, err)

	got := sa.Mul(sb).Prune(1e-12)
	require.Equal(t, 4, got.Len())
	require.Equal(t, complex128(-0.25i), got.Coeff(pauli.Word{"0": 'Y'}))
	require.Equal(t, complex128(0.25i), got.Coeff(pauli.Word{"1": 'Y'}))
	require.Equal(t, complex128(-0.25i), got.Coeff(pauli.Word{"1": 'Z'}))
	require.Equal(t, complex128(0.25), got.Coeff(pauli.Word{"0": 'Y', "1": 'X'}))
	require.False(t, sa.Commutes(sb))

	h := got.Hamiltonian(wires.Wires{}, 1e-12)
	require.Equal(t, 4, h.Len())
	require.Equal(t, "[0, 1]", h.Wires().String())

	// an explicit order is kept, extended by wires it misses
	require.Equal(t, "[1, 0]", got.Hamiltonian(wires.Of("1", "0"), 1e-12).Wires().String())
	require.Equal(t, "[7, 0, 1]", got.Hamiltonian(wires.Of("7"), 1e-12).Wires().String())
}

func TestSentence_PruneCancels(t *testing.T) {
	s := pauli.NewSentence()
	s.Add(pauli.Word{"0": 'X'}, 1)
	s.Add(pauli.Word{"0": 'X'}, -1)
	s.Add(pauli.Word{"1": 'Z'}, complex(2, 1e-15))
	p := s.Prune(1e-12)
	require.Equal(t, 1, p.Len())
	require.Equal(t, complex128(2), p.Coeff(pauli.Word{"1": 'Z'}))
	require.Equal(t, 2, s.Scale(3).Len())
}
