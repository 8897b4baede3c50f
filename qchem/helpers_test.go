// SPDX-License-Identifier: MIT
package qchem_test

import (
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

// h2Words and h2Coeffs are the 15-term qubit Hamiltonian of H2 in a minimal
// basis (bond length 1.401 Bohr), four spin orbitals on wires 0..3.
var (
	h2Words = []string{
		"IIII", "ZIII", "IZII", "IIZI", "IIIZ", "ZZII",
		"YXXY", "YYXX", "XXYY", "XYYX",
		"ZIZI", "ZIIZ", "IZZI", "IZIZ", "IIZZ",
	}
	h2Coeffs = []float64{
		-0.04207897647782276, 0.17771287465139946, 0.1777128746513994,
		-0.24274280513140462, -0.24274280513140462, 0.17059738328801052,
		0.04475014401535161, -0.04475014401535161, -0.04475014401535161, 0.04475014401535161,
		0.12293305056183798, 0.1676831945771896, 0.1676831945771896,
		0.12293305056183798, 0.17627640804319591,
	}
)

const (
	h2HFEnergy     = -1.1173490349902797
	h2GroundEnergy = -1.136189454065922
)

func h2Fixture() (*opmath.Hamiltonian, error) {
	order := wires.Range(4)
	ops := make([]operator.Operator, len(h2Words))
	for i, w := range h2Words {
		ops[i] = opmath.PauliWord(w, order)
	}

	return opmath.NewRealHamiltonian(h2Coeffs, ops)
}

func h2Hamiltonian(t testing.TB) *opmath.Hamiltonian {
	t.Helper()
	h, err := h2Fixture()
	require.NoError(t, err)

	return h
}

// zGenerator returns the one-term Hamiltonian Z⊗...⊗Z on labels.
func zGenerator(t testing.TB, labels ...any) *opmath.Hamiltonian {
	t.Helper()
	w := wires.New(labels...)
	letters := make([]byte, w.Len())
	for i := range letters {
		letters[i] = 'Z'
	}
	g, err := opmath.NewRealHamiltonian([]float64{1}, []operator.Operator{opmath.PauliWord(string(letters), w)})
	require.NoError(t, err)

	return g
}

func h2Generators(t testing.TB) []*opmath.Hamiltonian {
	return []*opmath.Hamiltonian{zGenerator(t, 0, 1), zGenerator(t, 0, 2), zGenerator(t, 0, 3)}
}

func h2PauliX() []operator.Operator {
	return []operator.Operator{operator.PauliX(1), operator.PauliX(2), operator.PauliX(3)}
}

// requireTerms compares the Pauli expansion of got with want, keyed by
// pauli.Word.Key.
func requireTerms(t testing.TB, want map[string]complex128, got operator.Operator) {
	t.Helper()
	s, err := pauli.FromOperator(got)
	require.NoError(t, err)
	s = s.Prune(1e-10)
	coeffs, words := s.Terms()
	require.Lenf(t, words, len(want), "terms %v", words)
	for i, w := range words {
		c, ok := want[w.Key()]
		require.Truef(t, ok, "unexpected term %s", w.Key())
		require.InDelta(t, real(c), real(coeffs[i]), 1e-9, w.Key())
		require.InDelta(t, imag(c), imag(coeffs[i]), 1e-9, w.Key())
	}
}

// diagonal returns <k|op|k> on order.
func diagonal(t testing.TB, op operator.Operator, order wires.Wires, k int) complex128 {
	t.Helper()
	m, err := op.Matrix(order)
	require.NoError(t, err)
	v, err := m.At(k, k)
	require.NoError(t, err)

	return v
}
