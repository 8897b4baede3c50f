// SPDX-License-Identifier: MIT
// Package pauli - conversion from operator trees.

package pauli

import (
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/operator"
)

// FromOperator expands op into a Pauli sentence.
//
// Accepted shapes:
//   - Identity, PauliX/Y/Z leaves;
//   - Prod (ordered, same-wire factors multiply with phases), SProd, Sum, Hamiltonian
//     whose leaves are the above.
//
// Errors: ErrNotPauli for any other node.
func FromOperator(op operator.Operator) (*Sentence, error) {
	switch v := op.(type) {
	case *opmath.SProd:
		base, err := FromOperator(v.Base())
		if err != nil {
			return nil, err
		}

		return base.Scale(v.Scalar()), nil
	case *opmath.Prod:
		var acc *Sentence
		for _, f := range v.Factors() {
			fs, err := FromOperator(f)
			if err != nil {
				return nil, err
			}
			if acc == nil {
				acc = fs
				continue
			}
			acc = acc.Mul(fs)
		}

		return acc, nil
	case *opmath.Sum:
		out := NewSentence()
		for _, s := range v.Summands() {
			ss, err := FromOperator(s)
			if err != nil {
				return nil, err
			}
			out.AddSentence(ss, 1)
		}

		return out, nil
	case *opmath.Hamiltonian:
		out := NewSentence()
		out.wires = v.Wires()
		coeffs, ops, _ := v.Terms()
		for i, o := range ops {
			ss, err := FromOperator(o)
			if err != nil {
				return nil, err
			}
			out.AddSentence(ss, coeffs[i])
		}

		return out, nil
	}

	var letter byte
	switch op.Kind() {
	case operator.KindIdentity:
		return Single(Word{}, 1, op.Wires()), nil
	case operator.KindPauliX:
		letter = 'X'
	case operator.KindPauliY:
		letter = 'Y'
	case operator.KindPauliZ:
		letter = 'Z'
	default:
		return nil, pauliErrorf("FromOperator "+op.Name(), ErrNotPauli)
	}

	return Single(Word{op.Wires().At(0): letter}, 1, op.Wires()), nil
}

// WordOf returns the single word and coefficient of op.
// Errors: ErrNotPauli, ErrNotWord.
func WordOf(op operator.Operator) (Word, complex128, error) {
	s, err := FromOperator(op)
	if err != nil {
		return nil, 0, err
	}
	if s.Len() != 1 {
		return nil, 0, pauliErrorf("WordOf", ErrNotWord)
	}

	return s.terms[0].word, s.terms[0].coeff, nil
}
