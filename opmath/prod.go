// SPDX-License-Identifier: MIT
// Package opmath - Prod: an ordered operator product.
//
// Matrix(order) = F0(order) · F1(order) · ... ; tensor products of operators on
// disjoint wires are the common case (Pauli strings).

package opmath

import (
	"sort"
	"strings"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const opProd = "Prod"

// Prod is the ordered product of its factors.
type Prod struct {
	factors []operator.Operator
	wires   wires.Wires
}

var _ operator.Operator = (*Prod)(nil)

// NewProd builds a product of at least one factor.
// Errors: ErrEmptyProd.
func NewProd(factors ...operator.Operator) (*Prod, error) {
	if len(factors) == 0 {
		return nil, opmathErrorf("NewProd", ErrEmptyProd)
	}
	fs := make([]operator.Operator, len(factors))
	copy(fs, factors)

	return &Prod{factors: fs, wires: unionWires(fs)}, nil
}

// MustProd is NewProd for factor lists known to be non-empty; it panics otherwise.
func MustProd(factors ...operator.Operator) *Prod {
	p, err := NewProd(factors...)
	if err != nil {
		panic(err)
	}

	return p
}

// Factors returns a copy of the factor list.
func (p *Prod) Factors() []operator.Operator {
	return append([]operator.Operator(nil), p.factors...)
}

// Name returns "Prod".
func (p *Prod) Name() string { return opProd }

// Kind returns operator.KindProd.
func (p *Prod) Kind() operator.Kind { return operator.KindProd }

// Wires returns the ordered union of the factors' wires.
func (p *Prod) Wires() wires.Wires { return p.wires }

// Data concatenates the factors' parameters.
func (p *Prod) Data() []complex128 { return concatData(p.factors) }

// SetData distributes data over the factors in order.
func (p *Prod) SetData(data []complex128) error {
	return splitData(p.factors, data, opProd+".SetData")
}

// NumParams returns the total parameter count.
func (p *Prod) NumParams() int { return len(p.Data()) }

// NdimParams concatenates the factors' parameter shapes.
func (p *Prod) NdimParams() []int {
	var out []int
	for _, f := range p.factors {
		out = append(out, f.NdimParams()...)
	}

	return out
}

// Matrix multiplies the factor matrices, all expanded to the same order.
func (p *Prod) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	order := orderOr(wireOrder, p.wires)
	var acc *matrix.Dense
	for _, f := range p.factors {
		m, err := f.Matrix(order)
		if err != nil {
			return nil, opmathErrorf(opProd+".Matrix", err)
		}
		if acc == nil {
			acc = m
			continue
		}
		if acc, err = matrix.Mul(acc, m); err != nil {
			return nil, opmathErrorf(opProd+".Matrix", err)
		}
	}

	return acc, nil
}

// SparseMatrix is the CSR counterpart of Matrix.
func (p *Prod) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	order := orderOr(wireOrder, p.wires)
	var acc *matrix.Sparse
	for _, f := range p.factors {
		m, err := f.SparseMatrix(order)
		if err != nil {
			return nil, opmathErrorf(opProd+".SparseMatrix", err)
		}
		if acc == nil {
			acc = m
			continue
		}
		if acc, err = matrix.SparseMul(acc, m); err != nil {
			return nil, opmathErrorf(opProd+".SparseMatrix", err)
		}
	}

	return acc, nil
}

// Eigvals derives eigenvalues from the matrix.
func (p *Prod) Eigvals() ([]complex128, error) {
	m, err := p.Matrix(wires.Wires{})
	if err != nil {
		return nil, err
	}

	return operator.EigvalsFromMatrix(m)
}

// Adjoint reverses the factors and takes each adjoint.
func (p *Prod) Adjoint() operator.Operator {
	n := len(p.factors)
	out := make([]operator.Operator, n)
	for i, f := range p.factors {
		out[n-1-i] = f.Adjoint()
	}

	return &Prod{factors: out, wires: p.wires}
}

// disjoint reports whether no two factors share a wire.
func (p *Prod) disjoint() bool {
	seen := wires.Wires{}
	for _, f := range p.factors {
		if wires.Intersects(seen, f.Wires()) {
			return false
		}
		seen = wires.Union(seen, f.Wires())
	}

	return true
}

// IsHermitian holds for Hermitian factors on pairwise disjoint wires.
func (p *Prod) IsHermitian() bool {
	for _, f := range p.factors {
		if !f.IsHermitian() {
			return false
		}
	}

	return p.disjoint()
}

// Terms pulls scalar factors out: ([c], [product of the remaining factors]).
func (p *Prod) Terms() ([]complex128, []operator.Operator, error) {
	coeff := complex128(1)
	rest := make([]operator.Operator, 0, len(p.factors))
	for _, f := range p.factors {
		if sp, ok := f.(*SProd); ok {
			coeff *= sp.scalar
			rest = append(rest, sp.base)
			continue
		}
		rest = append(rest, f)
	}
	var op operator.Operator = &Prod{factors: rest, wires: p.wires}
	if len(rest) == 1 {
		op = rest[0]
	}

	return []complex128{coeff}, []operator.Operator{op}, nil
}

// Simplify flattens nested products, simplifies every factor, pulls scalars to
// the front and drops Identity factors. Factor order is preserved.
func (p *Prod) Simplify() operator.Operator {
	scalar := complex128(1)
	flat := make([]operator.Operator, 0, len(p.factors))
	stack := make([]operator.Operator, 0, len(p.factors))
	for i := len(p.factors) - 1; i >= 0; i-- {
		stack = append(stack, p.factors[i])
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if inner, ok := f.(*Prod); ok {
			for i := len(inner.factors) - 1; i >= 0; i-- {
				stack = append(stack, inner.factors[i])
			}
			continue
		}
		s := f.Simplify()
		if sp, ok := s.(*SProd); ok {
			scalar *= sp.scalar
			s = sp.base
		}
		if inner, ok := s.(*Prod); ok {
			flat = append(flat, inner.factors...)
			continue
		}
		if s.Kind() == operator.KindIdentity {
			continue
		}
		flat = append(flat, s)
	}

	var out operator.Operator
	switch len(flat) {
	case 0:
		out = operator.Identity(anyLabels(p.wires)...)
	case 1:
		out = flat[0]
	default:
		out = &Prod{factors: flat, wires: unionWires(flat)}
	}
	if scalar != 1 {
		return &SProd{scalar: scalar, base: out}
	}

	return out
}

// anyLabels converts wire labels to the variadic form wires.New expects.
func anyLabels(w wires.Wires) []any {
	out := make([]any, w.Len())
	for i := range out {
		out[i] = w.At(i)
	}

	return out
}

// Hash is order-independent when the factors act on disjoint wires (they commute).
func (p *Prod) Hash() string {
	keys := make([]string, len(p.factors))
	for i, f := range p.factors {
		keys[i] = f.Hash()
	}
	if p.disjoint() {
		sort.Strings(keys)
		return opProd + "{" + strings.Join(keys, ";") + "}"
	}

	return opProd + "[" + strings.Join(keys, "@") + "]"
}

// String renders "a @ b @ c".
func (p *Prod) String() string { return joinStrings(p.factors, " @ ") }
