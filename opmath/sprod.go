// SPDX-License-Identifier: MIT
// Package opmath - SProd: a scalar multiple of an operator.
//
// Invariant: Matrix() == scalar · base.Matrix().

package opmath

import (
	"errors"
	"math/cmplx"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const opSProd = "SProd"

// SProd is scalar · base.
type SProd struct {
	scalar complex128
	base   operator.Operator
}

var _ operator.Operator = (*SProd)(nil)

// NewSProd returns scalar · base.
func NewSProd(scalar complex128, base operator.Operator) *SProd {
	return &SProd{scalar: scalar, base: base}
}

// Scalar returns the coefficient.
func (p *SProd) Scalar() complex128 { return p.scalar }

// Base returns the scaled operator.
func (p *SProd) Base() operator.Operator { return p.base }

// Name returns "SProd".
func (p *SProd) Name() string { return opSProd }

// Kind returns operator.KindSProd.
func (p *SProd) Kind() operator.Kind { return operator.KindSProd }

// Wires returns the base wires.
func (p *SProd) Wires() wires.Wires { return p.base.Wires() }

// Data is [scalar] followed by the base parameters.
func (p *SProd) Data() []complex128 { return append([]complex128{p.scalar}, p.base.Data()...) }

// SetData replaces the scalar and the base parameters.
func (p *SProd) SetData(data []complex128) error {
	if len(data) != 1+p.base.NumParams() {
		return opmathErrorf(opSProd+".SetData", operator.ErrParamCount)
	}
	if err := p.base.SetData(data[1:]); err != nil {
		return err
	}
	p.scalar = data[0]

	return nil
}

// NumParams counts the scalar plus the base parameters.
func (p *SProd) NumParams() int { return 1 + p.base.NumParams() }

// NdimParams prepends the scalar's shape (0).
func (p *SProd) NdimParams() []int { return append([]int{0}, p.base.NdimParams()...) }

// Matrix returns scalar · base.Matrix(wireOrder).
func (p *SProd) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	m, err := p.base.Matrix(wireOrder)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(m, p.scalar)
}

// SparseMatrix returns scalar · base.SparseMatrix(wireOrder).
func (p *SProd) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	m, err := p.base.SparseMatrix(wireOrder)
	if err != nil {
		return nil, err
	}

	return matrix.SparseScale(m, p.scalar), nil
}

// Eigvals scales the base eigenvalues.
func (p *SProd) Eigvals() ([]complex128, error) {
	vals, err := p.base.Eigvals()
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = p.scalar * v
	}

	return out, nil
}

// Adjoint returns conj(scalar) · base†.
func (p *SProd) Adjoint() operator.Operator {
	return &SProd{scalar: cmplx.Conj(p.scalar), base: p.base.Adjoint()}
}

// IsHermitian holds for a real scalar times a Hermitian base.
func (p *SProd) IsHermitian() bool { return imag(p.scalar) == 0 && p.base.IsHermitian() }

// Terms scales the base terms, or returns ([scalar], [base]) for leaf bases.
func (p *SProd) Terms() ([]complex128, []operator.Operator, error) {
	coeffs, ops, err := p.base.Terms()
	if errors.Is(err, operator.ErrTermsUndefined) {
		return []complex128{p.scalar}, []operator.Operator{p.base}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	for i := range coeffs {
		coeffs[i] *= p.scalar
	}

	return coeffs, ops, nil
}

// Simplify folds the structure around the scalar.
//
// Rules:
//   - scalar 1 returns the simplified base;
//   - nested scalar products multiply out;
//   - a Sum base distributes the scalar over its summands and is re-simplified;
//   - a Hamiltonian base scales its coefficients.
func (p *SProd) Simplify() operator.Operator {
	if p.scalar == 1 {
		return p.base.Simplify()
	}
	scalar := p.scalar
	base := p.base
	for {
		inner, ok := base.(*SProd)
		if !ok {
			break
		}
		scalar *= inner.scalar
		base = inner.base
	}
	base = base.Simplify()
	switch b := base.(type) {
	case *SProd:
		return &SProd{scalar: scalar * b.scalar, base: b.base}
	case *Sum:
		scaled := make([]operator.Operator, len(b.summands))
		for i, s := range b.summands {
			scaled[i] = &SProd{scalar: scalar, base: s}
		}

		return (&Sum{summands: scaled, wires: b.wires}).Simplify()
	case *Hamiltonian:
		return b.scaled(scalar)
	}
	if scalar == 1 {
		return base
	}

	return &SProd{scalar: scalar, base: base}
}

// Hash combines the scalar with the base hash.
func (p *SProd) Hash() string { return opSProd + "{" + hashScalar(p.scalar) + "|" + p.base.Hash() + "}" }

// String renders "c*base".
func (p *SProd) String() string { return FormatScalar(p.scalar) + "*" + p.base.String() }
