// SPDX-License-Identifier: MIT
// Package qchem - Z2 symmetry generators and the Clifford that diagonalises them.
//
// Purpose:
//   - SymmetryGenerators finds independent Pauli words commuting with every
//     term of a Hamiltonian (the kernel of its binary matrix).
//   - PauliXOps pairs each generator with a single-qubit PauliX anticommuting
//     with it and commuting with every other generator.
//   - Clifford builds U = ∏ (1/√2)(g_i + x_i), which maps g_i to x_i.

package qchem

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opSymmetry = "SymmetryGenerators"
	opPauliX   = "PauliXOps"
	opClifford = "Clifford"
)

// SymmetryGenerators returns the Z2 symmetry generators of h over h's wires,
// each as a one-term Hamiltonian with coefficient 1.
//
// Implementation:
//   - Stage 1: encode the terms with BinaryMatrixOf.
//   - Stage 2: reduce, drop zero rows, take the kernel.
//   - Stage 3: decode kernel rows with z = v[:Q], x = v[Q:].
//
// An h without symmetries yields an empty slice.
//
// Errors: the BinaryMatrixOf errors for non-Pauli terms.
func SymmetryGenerators(h *opmath.Hamiltonian) ([]*opmath.Hamiltonian, error) {
	return symmetryGenerators(h, h.Wires())
}

func symmetryGenerators(h *opmath.Hamiltonian, order wires.Wires) ([]*opmath.Hamiltonian, error) {
	bm, err := BinaryMatrixOf(h.Ops(), order)
	if err != nil {
		return nil, qchemErrorf(opSymmetry, err)
	}
	kernel := Kernel(ReducedRowEchelon(bm).DropZeroRows())
	words, err := kernel.Words(order)
	if err != nil {
		return nil, qchemErrorf(opSymmetry, err)
	}
	out := make([]*opmath.Hamiltonian, len(words))
	for i, w := range words {
		g, err := opmath.NewHamiltonian([]complex128{1}, []operator.Operator{w.Operator(order)})
		if err != nil {
			return nil, qchemErrorf(opSymmetry, err)
		}
		out[i] = g
	}

	return out, nil
}

// generatorWords returns the single word of every generator.
func generatorWords(generators []*opmath.Hamiltonian) ([]pauli.Word, error) {
	out := make([]pauli.Word, len(generators))
	for i, g := range generators {
		s, err := pauli.FromOperator(g)
		if err != nil {
			return nil, err
		}
		s = s.Prune(DefaultCutoff)
		if s.Len() != 1 {
			return nil, ErrNotGenerator
		}
		_, ws := s.Terms()
		out[i] = ws[0]
	}

	return out, nil
}

// PauliXOps returns one PauliX per generator: on the highest-index wire of
// order where the generator acts with Z and no other generator acts with Z.
// An empty order means the union of the generator wires in canonical order.
//
// Errors: ErrNoPauliX, ErrNotGenerator.
func PauliXOps(generators []*opmath.Hamiltonian, order wires.Wires) ([]operator.Operator, error) {
	words, err := generatorWords(generators)
	if err != nil {
		return nil, qchemErrorf(opPauliX, err)
	}
	if order.IsEmpty() {
		order = canonicalOrder(generatorWires(generators))
	}
	out := make([]operator.Operator, len(words))
	for i, w := range words {
		found := false
		for col := order.Len() - 1; col >= 0 && !found; col-- {
			label := order.At(col)
			if w.Letter(label) != 'Z' || zElsewhere(words, i, label) {
				continue
			}
			out[i] = operator.PauliX(label)
			found = true
		}
		if !found {
			return nil, qchemErrorf(opPauliX+" "+w.Key(), ErrNoPauliX)
		}
	}

	return out, nil
}

// zElsewhere reports whether a generator other than skip has Z on label.
func zElsewhere(words []pauli.Word, skip int, label string) bool {
	for j, o := range words {
		if j != skip && o.Letter(label) == 'Z' {
			return true
		}
	}

	return false
}

// Clifford returns U = ∏_i (1/√2)(g_i + x_i), multiplied left to right.
// Errors: ErrSectorShape on a length mismatch, the pauli conversion errors.
func Clifford(generators []*opmath.Hamiltonian, paulixOps []operator.Operator) (*opmath.Hamiltonian, error) {
	u, err := cliffordSentence(generators, paulixOps)
	if err != nil {
		return nil, qchemErrorf(opClifford, err)
	}
	order := wires.Union(generatorWires(generators), unionOf(paulixOps))

	return u.Hamiltonian(order, DefaultCutoff), nil
}

func cliffordSentence(generators []*opmath.Hamiltonian, paulixOps []operator.Operator) (*pauli.Sentence, error) {
	if len(generators) != len(paulixOps) {
		return nil, ErrSectorShape
	}
	norm := complex(1/math.Sqrt2, 0)
	var u *pauli.Sentence
	for i, g := range generators {
		gs, err := pauli.FromOperator(g)
		if err != nil {
			return nil, err
		}
		xs, err := pauli.FromOperator(paulixOps[i])
		if err != nil {
			return nil, err
		}
		f := gs.Scale(norm)
		f.AddSentence(xs, norm)
		if u == nil {
			u = f
			continue
		}
		u = u.Mul(f)
	}
	if u == nil {
		u = pauli.Single(pauli.Word{}, 1, wires.Wires{})
	}

	return u, nil
}

func generatorWires(generators []*opmath.Hamiltonian) wires.Wires {
	sets := make([]wires.Wires, len(generators))
	for i, g := range generators {
		sets[i] = g.Wires()
	}

	return wires.Union(sets...)
}

func unionOf(ops []operator.Operator) wires.Wires {
	sets := make([]wires.Wires, len(ops))
	for i, o := range ops {
		sets[i] = o.Wires()
	}

	return wires.Union(sets...)
}

// canonicalOrder sorts w numerically when every label is an integer and
// leaves it untouched otherwise.
func canonicalOrder(w wires.Wires) wires.Wires {
	labels := w.Labels()
	nums := make([]int, len(labels))
	for i, l := range labels {
		n, err := strconv.Atoi(l)
		if err != nil || strconv.Itoa(n) != l {
			return w
		}
		nums[i] = n
	}
	sort.Ints(nums)
	out := make([]any, len(nums))
	for i, n := range nums {
		out[i] = n
	}

	return wires.New(out...)
}
