// SPDX-License-Identifier: MIT
// Package pauli - Pauli words.
//
// A Word maps wire labels to one of the letters 'X', 'Y', 'Z'. Identity
// factors are never stored, so the empty Word is the identity.
//
// Multiplication on one wire follows the Pauli group:
//
//	XY = iZ, YZ = iX, ZX = iY, and the reversed products carry -i.
//
// Complexity: Mul and Commutes are O(|a| + |b|).

package pauli

import (
	"sort"
	"strings"

	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

// Word is a tensor product of non-identity Pauli letters keyed by wire label.
type Word map[string]byte

// NewWord reads letters[i] as the Pauli on w.At(i); 'I' entries are skipped.
// Errors: ErrBadLetter.
func NewWord(letters string, w wires.Wires) (Word, error) {
	out := make(Word, len(letters))
	for i := 0; i < len(letters) && i < w.Len(); i++ {
		switch c := letters[i]; c {
		case 'I':
		case 'X', 'Y', 'Z':
			out[w.At(i)] = c
		default:
			return nil, pauliErrorf("NewWord "+string(c), ErrBadLetter)
		}
	}

	return out, nil
}

// IsIdentity reports whether w has no non-identity factor.
func (w Word) IsIdentity() bool { return len(w) == 0 }

// Letter returns the letter on label, 'I' when absent.
func (w Word) Letter(label string) byte {
	if c, ok := w[label]; ok {
		return c
	}

	return 'I'
}

// labels returns the word's labels sorted lexicographically.
func (w Word) labels() []string {
	out := make([]string, 0, len(w))
	for l := range w {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Key is the canonical text of w, e.g. "X(0) Z(3)"; the identity is "I".
func (w Word) Key() string {
	if len(w) == 0 {
		return "I"
	}
	var sb strings.Builder
	for i, l := range w.labels() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(w[l])
		sb.WriteByte('(')
		sb.WriteString(l)
		sb.WriteByte(')')
	}

	return sb.String()
}

// String is Key.
func (w Word) String() string { return w.Key() }

// Wires returns the word's labels in the order they appear in order; labels
// missing from order follow in lexicographic order.
func (w Word) Wires(order wires.Wires) wires.Wires {
	var in []any
	for i := 0; i < order.Len(); i++ {
		if _, ok := w[order.At(i)]; ok {
			in = append(in, order.At(i))
		}
	}
	for _, l := range w.labels() {
		if !order.Contains(l) {
			in = append(in, l)
		}
	}

	return wires.New(in...)
}

// Letters renders w over order as a string of I/X/Y/Z, one letter per wire.
func (w Word) Letters(order wires.Wires) string {
	out := make([]byte, order.Len())
	for i := range out {
		out[i] = w.Letter(order.At(i))
	}

	return string(out)
}

// Mul returns the phase and word of w·o.
func (w Word) Mul(o Word) (complex128, Word) {
	phase := complex128(1)
	out := make(Word, len(w)+len(o))
	for l, a := range w {
		out[l] = a
	}
	for l, b := range o {
		a, ok := out[l]
		if !ok {
			out[l] = b
			continue
		}
		if a == b {
			delete(out, l)
			continue
		}
		c, p := letterProduct(a, b)
		out[l] = c
		phase *= p
	}

	return phase, out
}

// letterProduct multiplies two distinct non-identity letters.
func letterProduct(a, b byte) (byte, complex128) {
	switch string([]byte{a, b}) {
	case "XY":
		return 'Z', 1i
	case "YX":
		return 'Z', -1i
	case "YZ":
		return 'X', 1i
	case "ZY":
		return 'X', -1i
	case "ZX":
		return 'Y', 1i
	default: // "XZ"
		return 'Y', -1i
	}
}

// Commutes reports whether w and o commute: the number of wires where both act
// with different letters is even (symplectic inner product zero).
func (w Word) Commutes(o Word) bool {
	odd := false
	for l, a := range w {
		if b, ok := o[l]; ok && a != b {
			odd = !odd
		}
	}

	return !odd
}

// Operator builds the tensor product of w over order. The identity word becomes
// Identity on the first wire of order.
func (w Word) Operator(order wires.Wires) operator.Operator {
	full := wires.Union(order, w.Wires(order))
	if full.IsEmpty() {
		return operator.Identity(0)
	}

	return opmath.PauliWord(w.Letters(full), full)
}
