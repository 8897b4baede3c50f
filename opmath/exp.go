// SPDX-License-Identifier: MIT
// Package opmath - Exp: the exponential exp(coeff · base).
//
// Contract:
//   - Matrix = expm(coeff · base.Matrix()) computed on the base wires, then
//     identity-padded to the requested order (exp(A ⊕ 0) = exp(A) ⊕ I).
//   - SparseMatrix supports no wire-order remap (operator.ErrUnsupported).
//   - Eigvals = exp(coeff · base.Eigvals()).
//   - Data = [coeff] ++ base.Data(); NdimParams = [0] ++ base.NdimParams().
//   - Generator() returns base.

package opmath

import (
	"math/cmplx"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const opExp = "Exp"

// Exp is exp(coeff · base).
type Exp struct {
	coeff complex128
	base  operator.Operator
}

var _ operator.Operator = (*Exp)(nil)

// NewExp returns exp(coeff · base).
func NewExp(coeff complex128, base operator.Operator) *Exp {
	return &Exp{coeff: coeff, base: base}
}

// Coeff returns the exponent's scalar.
func (e *Exp) Coeff() complex128 { return e.coeff }

// Base returns the exponent's operator.
func (e *Exp) Base() operator.Operator { return e.base }

// Generator returns the base, the generator of the one-parameter group.
func (e *Exp) Generator() (operator.Operator, error) { return e.base, nil }

// Name returns "Exp".
func (e *Exp) Name() string { return opExp }

// Kind returns operator.KindExp.
func (e *Exp) Kind() operator.Kind { return operator.KindExp }

// Wires returns the base wires.
func (e *Exp) Wires() wires.Wires { return e.base.Wires() }

// Data is [coeff] followed by the base parameters.
func (e *Exp) Data() []complex128 { return append([]complex128{e.coeff}, e.base.Data()...) }

// SetData splits data into the coefficient (index 0) and the base parameters.
func (e *Exp) SetData(data []complex128) error {
	if len(data) != 1+e.base.NumParams() {
		return opmathErrorf(opExp+".SetData", operator.ErrParamCount)
	}
	if err := e.base.SetData(data[1:]); err != nil {
		return err
	}
	e.coeff = data[0]

	return nil
}

// NumParams counts the coefficient plus the base parameters.
func (e *Exp) NumParams() int { return 1 + e.base.NumParams() }

// NdimParams prepends the coefficient's shape (0).
func (e *Exp) NdimParams() []int { return append([]int{0}, e.base.NdimParams()...) }

// Matrix exponentiates on the base wires and only then embeds into wireOrder.
func (e *Exp) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	bm, err := e.base.Matrix(wires.Wires{})
	if err != nil {
		return nil, opmathErrorf(opExp+".Matrix", err)
	}
	scaled, err := matrix.Scale(bm, e.coeff)
	if err != nil {
		return nil, err
	}
	em, err := matrix.Expm(scaled)
	if err != nil {
		return nil, opmathErrorf(opExp+".Matrix", err)
	}
	if wireOrder.IsEmpty() {
		return em, nil
	}

	return matrix.ExpandMatrix(em, e.base.Wires(), wireOrder)
}

// SparseMatrix uses the sparse exponential. Any wire order is ErrUnsupported.
func (e *Exp) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	if !wireOrder.IsEmpty() {
		return nil, opmathErrorf(opExp+".SparseMatrix", operator.ErrUnsupported)
	}
	bm, err := e.base.SparseMatrix(wires.Wires{})
	if err != nil {
		return nil, opmathErrorf(opExp+".SparseMatrix", err)
	}

	return matrix.SparseExpm(matrix.SparseScale(bm, e.coeff))
}

// Eigvals exponentiates the base eigenvalues; no matrix exponential is formed.
func (e *Exp) Eigvals() ([]complex128, error) {
	vals, err := e.base.Eigvals()
	if err != nil {
		return nil, err
	}

	return expAll(e.coeff, vals), nil
}

// Adjoint returns exp(conj(coeff) · base†).
func (e *Exp) Adjoint() operator.Operator {
	return &Exp{coeff: cmplx.Conj(e.coeff), base: e.base.Adjoint()}
}

// IsHermitian holds for a real coefficient and a Hermitian base.
func (e *Exp) IsHermitian() bool { return imag(e.coeff) == 0 && e.base.IsHermitian() }

// Terms is undefined for exponentials.
func (e *Exp) Terms() ([]complex128, []operator.Operator, error) {
	return nil, nil, opmathErrorf(opExp+".Terms", operator.ErrTermsUndefined)
}

// Simplify simplifies the base and folds a scalar base into the coefficient.
func (e *Exp) Simplify() operator.Operator {
	base := e.base.Simplify()
	coeff := e.coeff
	if sp, ok := base.(*SProd); ok {
		coeff *= sp.scalar
		base = sp.base
	}

	return &Exp{coeff: coeff, base: base}
}

// Hash combines coefficient and base.
func (e *Exp) Hash() string { return opExp + "{" + hashScalar(e.coeff) + "|" + e.base.Hash() + "}" }

// String renders "Exp(c base)".
func (e *Exp) String() string { return "Exp(" + FormatScalar(e.coeff) + " " + e.base.String() + ")" }
