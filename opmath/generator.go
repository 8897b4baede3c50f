// SPDX-License-Identifier: MIT
// Package opmath - generators of parametrised gates.
//
// A gate U(θ) = exp(iθG) (up to global phase) has generator G. Generators feed
// analytic differentiation rules and tapering of excitation operators.

package opmath

import (
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

// Generated is implemented by operators that know their own generator.
type Generated interface {
	Generator() (operator.Operator, error)
}

var _ Generated = (*Exp)(nil)

// PauliWord returns the tensor product of the letters of word on w, skipping 'I'.
// An all-identity word yields Identity on the first wire.
func PauliWord(word string, w wires.Wires) operator.Operator {
	factors := make([]operator.Operator, 0, len(word))
	for i := 0; i < len(word) && i < w.Len(); i++ {
		label := w.At(i)
		switch word[i] {
		case 'X':
			factors = append(factors, operator.PauliX(label))
		case 'Y':
			factors = append(factors, operator.PauliY(label))
		case 'Z':
			factors = append(factors, operator.PauliZ(label))
		}
	}
	switch len(factors) {
	case 0:
		return operator.Identity(w.At(0))
	case 1:
		return factors[0]
	default:
		return &Prod{factors: factors, wires: unionWires(factors)}
	}
}

// wordHamiltonian builds Σ c_i · word_i over w.
func wordHamiltonian(coeffs []float64, words []string, w wires.Wires) *Hamiltonian {
	ops := make([]operator.Operator, len(words))
	for i, word := range words {
		ops[i] = PauliWord(word, w)
	}
	h, err := NewRealHamiltonian(coeffs, ops)
	if err != nil {
		panic(err)
	}

	return h
}

// doubleExcitationWords and coefficients (×1/16) of the DoubleExcitation generator.
var (
	doubleExcitationWords  = []string{"XXXY", "XXYX", "XYXX", "XYYY", "YXXX", "YXYY", "YYXY", "YYYX"}
	doubleExcitationCoeffs = []float64{1, 1, -1, 1, -1, 1, -1, -1}
)

// GeneratorOf returns the Hermitian generator of a parametrised gate.
//
// Coverage:
//   - rotations: RX, RY, RZ, MultiRZ, IsingXX/YY/ZZ, PauliRot -> -½ · Pauli word;
//   - phase gates: PhaseShift/U1 -> |1><1| = ½(I - Z); ControlledPhaseShift -> |11><11|;
//   - controlled rotations: CRX/CRY/CRZ -> -½ · |1><1|_c ⊗ P_t;
//   - SingleExcitation -> ¼(X⊗Y - Y⊗X); DoubleExcitation -> 1/16 Σ of 8 words;
//   - any Generated operator (Exp) -> its own generator.
//
// Errors: ErrGeneratorUndefined for everything else.
func GeneratorOf(op operator.Operator) (operator.Operator, error) {
	if g, ok := op.(Generated); ok {
		return g.Generator()
	}
	e, ok := op.(*operator.Elementary)
	if !ok {
		return nil, opmathErrorf("GeneratorOf "+op.Name(), ErrGeneratorUndefined)
	}
	w := e.Wires()
	switch e.Kind() {
	case operator.KindRX:
		return wordHamiltonian([]float64{-0.5}, []string{"X"}, w), nil
	case operator.KindRY:
		return wordHamiltonian([]float64{-0.5}, []string{"Y"}, w), nil
	case operator.KindRZ:
		return wordHamiltonian([]float64{-0.5}, []string{"Z"}, w), nil
	case operator.KindMultiRZ:
		return wordHamiltonian([]float64{-0.5}, []string{repeat('Z', w.Len())}, w), nil
	case operator.KindIsingXX:
		return wordHamiltonian([]float64{-0.5}, []string{"XX"}, w), nil
	case operator.KindIsingYY:
		return wordHamiltonian([]float64{-0.5}, []string{"YY"}, w), nil
	case operator.KindIsingZZ:
		return wordHamiltonian([]float64{-0.5}, []string{"ZZ"}, w), nil
	case operator.KindPauliRot:
		return wordHamiltonian([]float64{-0.5}, []string{e.Word()}, w), nil
	case operator.KindPhaseShift, operator.KindU1:
		return wordHamiltonian([]float64{0.5, -0.5}, []string{"I", "Z"}, w), nil
	case operator.KindControlledPhaseShift:
		return wordHamiltonian([]float64{0.25, -0.25, -0.25, 0.25}, []string{"II", "ZI", "IZ", "ZZ"}, w), nil
	case operator.KindCRX:
		return wordHamiltonian([]float64{-0.25, 0.25}, []string{"IX", "ZX"}, w), nil
	case operator.KindCRY:
		return wordHamiltonian([]float64{-0.25, 0.25}, []string{"IY", "ZY"}, w), nil
	case operator.KindCRZ:
		return wordHamiltonian([]float64{-0.25, 0.25}, []string{"IZ", "ZZ"}, w), nil
	case operator.KindSingleExcitation:
		return wordHamiltonian([]float64{0.25, -0.25}, []string{"XY", "YX"}, w), nil
	case operator.KindDoubleExcitation:
		coeffs := make([]float64, len(doubleExcitationCoeffs))
		for i, c := range doubleExcitationCoeffs {
			coeffs[i] = c / 16
		}

		return wordHamiltonian(coeffs, doubleExcitationWords, w), nil
	default:
		return nil, opmathErrorf("GeneratorOf "+e.Name(), ErrGeneratorUndefined)
	}
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return string(out)
}
