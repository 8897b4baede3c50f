// SPDX-License-Identifier: MIT
// Package opmath - Hamiltonian: a weighted sum Σ c_i · O_i.
//
// Purpose:
//   - The coefficient/operator pair representation consumed by tapering and
//     produced by the generator helpers. Symmetry generators are one-term
//     Hamiltonians with coefficient 1 and a Z/I Pauli string.
//
// Contract:
//   - Data() are the coefficients; Terms() returns (coeffs, ops) as stored.
//   - Simplify groups like terms and keeps the Hamiltonian type.

package opmath

import (
	"math/cmplx"
	"sort"
	"strings"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const opHamiltonian = "Hamiltonian"

// Hamiltonian is a linear combination of operators with explicit coefficients.
type Hamiltonian struct {
	coeffs []complex128
	ops    []operator.Operator
	wires  wires.Wires
	pinned bool // wires fixed by NewHamiltonianOn, kept through Simplified
}

var _ operator.Operator = (*Hamiltonian)(nil)

// NewHamiltonian pairs coeffs[i] with ops[i].
// Errors: ErrLengthMismatch.
func NewHamiltonian(coeffs []complex128, ops []operator.Operator) (*Hamiltonian, error) {
	if len(coeffs) != len(ops) {
		return nil, opmathErrorf("NewHamiltonian", ErrLengthMismatch)
	}

	return &Hamiltonian{
		coeffs: append([]complex128(nil), coeffs...),
		ops:    append([]operator.Operator(nil), ops...),
		wires:  unionWires(ops),
	}, nil
}

// NewHamiltonianOn is NewHamiltonian with an explicit wire order. The order
// must cover every term's wires and becomes Wires(), so the default Matrix
// basis follows it even when the first term lives on a later wire.
// Errors: ErrLengthMismatch, ErrWireOrder.
func NewHamiltonianOn(coeffs []complex128, ops []operator.Operator, order wires.Wires) (*Hamiltonian, error) {
	h, err := NewHamiltonian(coeffs, ops)
	if err != nil {
		return nil, err
	}
	if !order.ContainsAll(h.wires) {
		return nil, opmathErrorf("NewHamiltonianOn", ErrWireOrder)
	}
	h.wires, h.pinned = order, true

	return h, nil
}

// NewRealHamiltonian is NewHamiltonian with real coefficients.
func NewRealHamiltonian(coeffs []float64, ops []operator.Operator) (*Hamiltonian, error) {
	c := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		c[i] = complex(v, 0)
	}

	return NewHamiltonian(c, ops)
}

// Coeffs returns a copy of the coefficients.
func (h *Hamiltonian) Coeffs() []complex128 { return append([]complex128(nil), h.coeffs...) }

// Ops returns a copy of the operators.
func (h *Hamiltonian) Ops() []operator.Operator { return append([]operator.Operator(nil), h.ops...) }

// Len returns the number of terms.
func (h *Hamiltonian) Len() int { return len(h.ops) }

// Name returns "Hamiltonian".
func (h *Hamiltonian) Name() string { return opHamiltonian }

// Kind returns operator.KindHamiltonian.
func (h *Hamiltonian) Kind() operator.Kind { return operator.KindHamiltonian }

// Wires returns the ordered union of the terms' wires, or the order given to
// NewHamiltonianOn.
func (h *Hamiltonian) Wires() wires.Wires { return h.wires }

// Data returns the coefficients.
func (h *Hamiltonian) Data() []complex128 { return h.Coeffs() }

// SetData replaces the coefficients.
func (h *Hamiltonian) SetData(data []complex128) error {
	if len(data) != len(h.coeffs) {
		return opmathErrorf(opHamiltonian+".SetData", operator.ErrParamCount)
	}
	copy(h.coeffs, data)

	return nil
}

// NumParams returns the number of coefficients.
func (h *Hamiltonian) NumParams() int { return len(h.coeffs) }

// NdimParams returns one 0 per coefficient.
func (h *Hamiltonian) NdimParams() []int { return make([]int, len(h.coeffs)) }

// Matrix returns Σ c_i · O_i.Matrix(order).
// Errors: ErrNoWires when neither the Hamiltonian nor wireOrder has wires.
func (h *Hamiltonian) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	order := orderOr(wireOrder, h.wires)
	if order.IsEmpty() {
		return nil, opmathErrorf(opHamiltonian+".Matrix", ErrNoWires)
	}
	dim := 1 << order.Len()
	acc, err := matrix.NewZeros(dim, dim)
	if err != nil {
		return nil, err
	}
	for i, op := range h.ops {
		m, err := op.Matrix(order)
		if err != nil {
			return nil, opmathErrorf(opHamiltonian+".Matrix", err)
		}
		if m, err = matrix.Scale(m, h.coeffs[i]); err != nil {
			return nil, err
		}
		if acc, err = matrix.Add(acc, m); err != nil {
			return nil, opmathErrorf(opHamiltonian+".Matrix", err)
		}
	}

	return acc, nil
}

// SparseMatrix returns Σ c_i · O_i.SparseMatrix(order).
func (h *Hamiltonian) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	order := orderOr(wireOrder, h.wires)
	if order.IsEmpty() {
		return nil, opmathErrorf(opHamiltonian+".SparseMatrix", ErrNoWires)
	}
	dim := 1 << order.Len()
	acc, err := matrix.NewSparse(dim, dim)
	if err != nil {
		return nil, err
	}
	for i, op := range h.ops {
		m, err := op.SparseMatrix(order)
		if err != nil {
			return nil, opmathErrorf(opHamiltonian+".SparseMatrix", err)
		}
		if acc, err = matrix.SparseAdd(acc, matrix.SparseScale(m, h.coeffs[i])); err != nil {
			return nil, opmathErrorf(opHamiltonian+".SparseMatrix", err)
		}
	}

	return acc, nil
}

// Eigvals derives eigenvalues from the matrix.
func (h *Hamiltonian) Eigvals() ([]complex128, error) {
	m, err := h.Matrix(wires.Wires{})
	if err != nil {
		return nil, err
	}

	return operator.EigvalsFromMatrix(m)
}

// Adjoint conjugates the coefficients and takes every term's adjoint.
func (h *Hamiltonian) Adjoint() operator.Operator {
	out := &Hamiltonian{
		coeffs: make([]complex128, len(h.coeffs)),
		ops:    make([]operator.Operator, len(h.ops)),
		wires:  h.wires,
		pinned: h.pinned,
	}
	for i := range h.ops {
		out.coeffs[i] = cmplx.Conj(h.coeffs[i])
		out.ops[i] = h.ops[i].Adjoint()
	}

	return out
}

// IsHermitian holds for real coefficients and Hermitian terms.
func (h *Hamiltonian) IsHermitian() bool {
	for i, op := range h.ops {
		if imag(h.coeffs[i]) != 0 || !op.IsHermitian() {
			return false
		}
	}

	return true
}

// Terms returns copies of (coeffs, ops).
func (h *Hamiltonian) Terms() ([]complex128, []operator.Operator, error) {
	return h.Coeffs(), h.Ops(), nil
}

// Simplify is Simplified(DefaultCutoff).
func (h *Hamiltonian) Simplify() operator.Operator { return h.Simplified(DefaultCutoff) }

// Simplified groups like terms (nested sums and scalar products folded) and
// drops coefficients with magnitude <= cutoff. When every term cancels the
// result is an empty Hamiltonian that keeps the original wires. A wire order
// given to NewHamiltonianOn survives unchanged.
func (h *Hamiltonian) Simplified(cutoff float64) *Hamiltonian {
	items := make([]weightedTerm, len(h.ops))
	for i, op := range h.ops {
		items[i] = weightedTerm{coeff: h.coeffs[i], op: op}
	}
	coeffs, ops := collect(items).weighted(cutoff)
	out := &Hamiltonian{coeffs: coeffs, ops: ops, wires: unionWires(ops), pinned: h.pinned}
	if h.pinned || len(ops) == 0 {
		out.wires = h.wires
	}

	return out
}

// scaled returns alpha · h.
func (h *Hamiltonian) scaled(alpha complex128) *Hamiltonian {
	out := &Hamiltonian{coeffs: make([]complex128, len(h.coeffs)), ops: h.Ops(), wires: h.wires, pinned: h.pinned}
	for i, c := range h.coeffs {
		out.coeffs[i] = alpha * c
	}

	return out
}

// Group partitions the terms into qubit-wise commuting groups (greedy, first fit,
// in term order). Two Pauli words commute qubit-wise when on every shared wire
// they carry the same letter or one of them is the identity. Terms that are not
// Pauli words get a group of their own. The result holds term indices.
func (h *Hamiltonian) Group() [][]int {
	letters := make([]map[string]byte, len(h.ops))
	for i, op := range h.ops {
		letters[i], _ = pauliLetters(op)
	}
	var groups [][]int
	for i := range h.ops {
		placed := false
		if letters[i] != nil {
			for g, members := range groups {
				if qubitWiseCommuting(letters, members, i) {
					groups[g] = append(groups[g], i)
					placed = true
					break
				}
			}
		}
		if !placed {
			groups = append(groups, []int{i})
		}
	}

	return groups
}

func qubitWiseCommuting(letters []map[string]byte, members []int, i int) bool {
	for _, m := range members {
		if letters[m] == nil {
			return false
		}
		for w, a := range letters[i] {
			if b, ok := letters[m][w]; ok && a != b {
				return false
			}
		}
	}

	return true
}

// pauliLetters decodes a Pauli word (single Pauli, Identity, product of those,
// optionally scaled) into wire -> letter, omitting identities.
func pauliLetters(op operator.Operator) (map[string]byte, bool) {
	out := make(map[string]byte)
	stack := []operator.Operator{op}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := cur.(type) {
		case *SProd:
			stack = append(stack, v.base)
		case *Prod:
			stack = append(stack, v.factors...)
		default:
			var l byte
			switch cur.Kind() {
			case operator.KindIdentity:
				continue
			case operator.KindPauliX:
				l = 'X'
			case operator.KindPauliY:
				l = 'Y'
			case operator.KindPauliZ:
				l = 'Z'
			default:
				return nil, false
			}
			w := cur.Wires().At(0)
			if _, dup := out[w]; dup {
				return nil, false
			}
			out[w] = l
		}
	}

	return out, true
}

// Hash is independent of term order.
func (h *Hamiltonian) Hash() string {
	keys := make([]string, len(h.ops))
	for i, op := range h.ops {
		keys[i] = hashScalar(h.coeffs[i]) + "*" + op.Hash()
	}
	sort.Strings(keys)

	return opHamiltonian + "{" + strings.Join(keys, ";") + "}"
}

// String renders one "(c) [op]" line per term.
func (h *Hamiltonian) String() string {
	lines := make([]string, len(h.ops))
	for i, op := range h.ops {
		lines[i] = "(" + FormatScalar(h.coeffs[i]) + ") [" + op.String() + "]"
	}

	return "  " + strings.Join(lines, "\n+ ")
}
