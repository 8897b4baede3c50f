// SPDX-License-Identifier: MIT
// Package pauli - Pauli sentences: linear combinations of Pauli words.
//
// Layout:
//   - Terms live in an arena ordered by first insertion and are indexed by the
//     canonical Word key, so iteration order is deterministic.
//   - A Sentence also remembers the wires of the operators it was built from,
//     so identity terms keep a wire to live on when converted back.

package pauli

import (
	"math/cmplx"

	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

type sentenceTerm struct {
	word  Word
	coeff complex128
}

// Sentence is Σ c_k · W_k over distinct Pauli words.
type Sentence struct {
	terms []sentenceTerm
	index map[string]int
	wires wires.Wires
}

// NewSentence returns the empty (zero) sentence.
func NewSentence() *Sentence {
	return &Sentence{index: make(map[string]int)}
}

// Single returns the one-term sentence c·w, remembering the wires on.
func Single(w Word, c complex128, on wires.Wires) *Sentence {
	s := NewSentence()
	s.Add(w, c)
	s.wires = wires.Union(on, w.Wires(on))

	return s
}

// Add accumulates c·w.
func (s *Sentence) Add(w Word, c complex128) {
	key := w.Key()
	if i, ok := s.index[key]; ok {
		s.terms[i].coeff += c
		return
	}
	s.index[key] = len(s.terms)
	s.terms = append(s.terms, sentenceTerm{word: w, coeff: c})
	s.wires = wires.Union(s.wires, w.Wires(s.wires))
}

// AddSentence accumulates scale·o.
func (s *Sentence) AddSentence(o *Sentence, scale complex128) {
	s.wires = wires.Union(s.wires, o.wires)
	for _, t := range o.terms {
		s.Add(t.word, scale*t.coeff)
	}
}

// Scale returns c·s as a new sentence.
func (s *Sentence) Scale(c complex128) *Sentence {
	out := NewSentence()
	out.AddSentence(s, c)

	return out
}

// Mul returns the ordered product s·o, term by term with Pauli phases.
//
// Complexity: O(len(s)·len(o)·word size).
func (s *Sentence) Mul(o *Sentence) *Sentence {
	out := NewSentence()
	out.wires = wires.Union(s.wires, o.wires)
	for _, a := range s.terms {
		for _, b := range o.terms {
			phase, w := a.word.Mul(b.word)
			out.Add(w, phase*a.coeff*b.coeff)
		}
	}

	return out
}

// Len returns the number of distinct words, including zero-coefficient ones.
func (s *Sentence) Len() int { return len(s.terms) }

// Wires returns every wire the sentence was built on.
func (s *Sentence) Wires() wires.Wires { return s.wires }

// Terms returns coefficients and words in insertion order.
func (s *Sentence) Terms() ([]complex128, []Word) {
	coeffs := make([]complex128, len(s.terms))
	words := make([]Word, len(s.terms))
	for i, t := range s.terms {
		coeffs[i] = t.coeff
		words[i] = t.word
	}

	return coeffs, words
}

// Coeff returns the coefficient of w (0 when absent).
func (s *Sentence) Coeff(w Word) complex128 {
	if i, ok := s.index[w.Key()]; ok {
		return s.terms[i].coeff
	}

	return 0
}

// Prune returns a copy without terms of magnitude <= cutoff. Real and imaginary
// parts at or below cutoff are zeroed.
func (s *Sentence) Prune(cutoff float64) *Sentence {
	out := NewSentence()
	out.wires = s.wires
	for _, t := range s.terms {
		c := clean(t.coeff, cutoff)
		if cmplx.Abs(c) > cutoff {
			out.Add(t.word, c)
		}
	}

	return out
}

func clean(c complex128, cutoff float64) complex128 {
	re, im := real(c), imag(c)
	if re <= cutoff && re >= -cutoff {
		re = 0
	}
	if im <= cutoff && im >= -cutoff {
		im = 0
	}

	return complex(re, im)
}

// Commutes reports whether every word of s commutes with every word of o.
// This pairwise test is sufficient for [s, o] = 0, not necessary.
func (s *Sentence) Commutes(o *Sentence) bool {
	for _, a := range s.terms {
		for _, b := range o.terms {
			if !a.word.Commutes(b.word) {
				return false
			}
		}
	}

	return true
}

// Hamiltonian converts s into Σ c_k · W_k over order (the sentence's own wires
// when order is empty), dropping terms of magnitude <= cutoff. The result's
// Wires() is order, extended by any term wire order misses.
func (s *Sentence) Hamiltonian(order wires.Wires, cutoff float64) *opmath.Hamiltonian {
	pruned := s.Prune(cutoff)
	order = wires.Union(order, s.wires)
	coeffs := make([]complex128, 0, pruned.Len())
	ops := make([]operator.Operator, 0, pruned.Len())
	for _, t := range pruned.terms {
		coeffs = append(coeffs, t.coeff)
		ops = append(ops, t.word.Operator(order))
	}
	h, err := opmath.NewHamiltonianOn(coeffs, ops, order)
	if err != nil {
		// order covers every term wire by construction
		panic(err)
	}

	return h
}
