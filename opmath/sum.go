// SPDX-License-Identifier: MIT
// Package opmath - Sum: an ordered linear combination with unit weights.
//
// Contract:
//   - Matrix(order) = Σ summand.Matrix(order); default order = the union of the
//     summands' wires in first-appearance order.
//   - Terms() returns unit coefficients and the summands as given. Scalar products
//     are not folded; call Simplify first for coefficient-grouped terms.
//   - A Sum is an observable, not a gate: Queueable reports false.

package opmath

import (
	"sort"
	"strings"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const opSum = "Sum"

// Sum is a symbolic sum of operators.
type Sum struct {
	summands []operator.Operator
	wires    wires.Wires
}

var _ operator.Operator = (*Sum)(nil)

// NewSum builds a Sum over at least one operand.
// Errors: ErrEmptySum.
func NewSum(ops ...operator.Operator) (*Sum, error) {
	if len(ops) == 0 {
		return nil, opmathErrorf("NewSum", ErrEmptySum)
	}
	summands := make([]operator.Operator, len(ops))
	copy(summands, ops)

	return &Sum{summands: summands, wires: unionWires(summands)}, nil
}

// MustSum is NewSum for operand lists known to be non-empty; it panics otherwise.
func MustSum(ops ...operator.Operator) *Sum {
	s, err := NewSum(ops...)
	if err != nil {
		panic(err)
	}

	return s
}

// Summands returns a copy of the operand list.
func (s *Sum) Summands() []operator.Operator {
	return append([]operator.Operator(nil), s.summands...)
}

// Len returns the number of summands.
func (s *Sum) Len() int { return len(s.summands) }

// Name returns "Sum".
func (s *Sum) Name() string { return opSum }

// Kind returns operator.KindSum.
func (s *Sum) Kind() operator.Kind { return operator.KindSum }

// Wires returns the ordered union of the summands' wires.
func (s *Sum) Wires() wires.Wires { return s.wires }

// Queueable reports false: a Sum may be measured but not applied as a gate.
func (s *Sum) Queueable() bool { return false }

// Data concatenates the summands' parameters.
func (s *Sum) Data() []complex128 { return concatData(s.summands) }

// SetData distributes data over the summands in order.
func (s *Sum) SetData(data []complex128) error { return splitData(s.summands, data, opSum+".SetData") }

// NumParams returns the total parameter count.
func (s *Sum) NumParams() int { return len(s.Data()) }

// NdimParams concatenates the summands' parameter shapes.
func (s *Sum) NdimParams() []int {
	var out []int
	for _, op := range s.summands {
		out = append(out, op.NdimParams()...)
	}

	return out
}

// Matrix accumulates every summand expanded to wireOrder.
//
// Implementation:
//   - Stage 1: resolve the order (own wires when empty).
//   - Stage 2: each summand lowers itself on that order (Hamiltonians through
//     their own synthesis) and the results are added in complex128.
func (s *Sum) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	order := orderOr(wireOrder, s.wires)
	var acc *matrix.Dense
	for _, op := range s.summands {
		m, err := op.Matrix(order)
		if err != nil {
			return nil, opmathErrorf(opSum+".Matrix", err)
		}
		if acc == nil {
			acc = m
			continue
		}
		if acc, err = matrix.Add(acc, m); err != nil {
			return nil, opmathErrorf(opSum+".Matrix", err)
		}
	}

	return acc, nil
}

// SparseMatrix is the CSR counterpart of Matrix.
func (s *Sum) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	order := orderOr(wireOrder, s.wires)
	var acc *matrix.Sparse
	for _, op := range s.summands {
		m, err := op.SparseMatrix(order)
		if err != nil {
			return nil, opmathErrorf(opSum+".SparseMatrix", err)
		}
		if acc == nil {
			acc = m
			continue
		}
		if acc, err = matrix.SparseAdd(acc, m); err != nil {
			return nil, opmathErrorf(opSum+".SparseMatrix", err)
		}
	}

	return acc, nil
}

// Eigvals derives eigenvalues from the matrix.
func (s *Sum) Eigvals() ([]complex128, error) {
	m, err := s.Matrix(wires.Wires{})
	if err != nil {
		return nil, err
	}

	return operator.EigvalsFromMatrix(m)
}

// Adjoint distributes over the summands.
func (s *Sum) Adjoint() operator.Operator {
	out := make([]operator.Operator, len(s.summands))
	for i, op := range s.summands {
		out[i] = op.Adjoint()
	}

	return &Sum{summands: out, wires: s.wires}
}

// IsHermitian is true when every summand is Hermitian. This is sufficient, not
// necessary: cancelling anti-Hermitian parts are not detected.
func (s *Sum) IsHermitian() bool {
	for _, op := range s.summands {
		if !op.IsHermitian() {
			return false
		}
	}

	return true
}

// Terms returns ([1, ..., 1], summands).
func (s *Sum) Terms() ([]complex128, []operator.Operator, error) {
	coeffs := make([]complex128, len(s.summands))
	for i := range coeffs {
		coeffs[i] = 1
	}

	return coeffs, s.Summands(), nil
}

// Simplify is SimplifyCutoff(DefaultCutoff).
func (s *Sum) Simplify() operator.Operator { return s.SimplifyCutoff(DefaultCutoff) }

// SimplifyCutoff flattens nested sums, simplifies every leaf once, groups like
// terms and drops those with |coefficient| <= cutoff.
//
// Result shape:
//   - no surviving term: 0·Identity over the Sum's wires (see ZeroOn);
//   - one term: that term, unwrapped;
//   - otherwise a new Sum in first-appearance order.
//
// One pass only: the result is idempotent under Simplify when the children's
// Simplify is.
func (s *Sum) SimplifyCutoff(cutoff float64) operator.Operator {
	items := make([]weightedTerm, len(s.summands))
	for i, op := range s.summands {
		items[i] = weightedTerm{coeff: 1, op: op}
	}
	terms := collect(items).summands(cutoff)
	switch len(terms) {
	case 0:
		return ZeroOn(s.wires)
	case 1:
		return terms[0]
	default:
		return &Sum{summands: terms, wires: unionWires(terms)}
	}
}

// Hash is independent of summand order: addition commutes.
func (s *Sum) Hash() string {
	keys := make([]string, len(s.summands))
	for i, op := range s.summands {
		keys[i] = op.Hash()
	}
	sort.Strings(keys)

	return opSum + "{" + strings.Join(keys, ";") + "}"
}

// String renders "(a + b + c)".
func (s *Sum) String() string { return "(" + joinStrings(s.summands, " + ") + ")" }
