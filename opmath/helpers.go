// SPDX-License-Identifier: MIT
// Package opmath - shared helpers for composite nodes.

package opmath

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

// unionWires returns the ordered union of the operands' wires.
func unionWires(ops []operator.Operator) wires.Wires {
	sets := make([]wires.Wires, len(ops))
	for i, op := range ops {
		sets[i] = op.Wires()
	}

	return wires.Union(sets...)
}

// orderOr returns order, or fallback when order is empty.
func orderOr(order, fallback wires.Wires) wires.Wires {
	if order.IsEmpty() {
		return fallback
	}

	return order
}

// IdentityOn returns the identity over w: a single Identity for one wire, a Prod
// of single-wire Identities for several.
func IdentityOn(w wires.Wires) operator.Operator {
	if w.Len() <= 1 {
		return operator.Identity(w.At(0))
	}
	factors := make([]operator.Operator, w.Len())
	for i := 0; i < w.Len(); i++ {
		factors[i] = operator.Identity(w.At(i))
	}

	return &Prod{factors: factors, wires: w}
}

// ZeroOn returns 0·Identity over w, the additive identity emitted by Simplify.
func ZeroOn(w wires.Wires) operator.Operator {
	return NewSProd(0, IdentityOn(w))
}

// concatData flattens the parameters of ops.
func concatData(ops []operator.Operator) []complex128 {
	var out []complex128
	for _, op := range ops {
		out = append(out, op.Data()...)
	}

	return out
}

// splitData hands each operand its slice of data.
func splitData(ops []operator.Operator, data []complex128, tag string) error {
	total := 0
	for _, op := range ops {
		total += op.NumParams()
	}
	if total != len(data) {
		return opmathErrorf(tag, operator.ErrParamCount)
	}
	off := 0
	for _, op := range ops {
		n := op.NumParams()
		if err := op.SetData(data[off : off+n]); err != nil {
			return err
		}
		off += n
	}

	return nil
}

// FormatScalar prints a real scalar as a plain number and a complex one as (a+bi).
func FormatScalar(c complex128) string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', -1, 64)
	}

	return fmt.Sprintf("%g", c)
}

// hashScalar renders a scalar for structural hashes.
func hashScalar(c complex128) string {
	return operator.FormatParam(real(c)) + "," + operator.FormatParam(imag(c))
}

// joinStrings maps ops through String and joins them with sep.
func joinStrings(ops []operator.Operator, sep string) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}

	return strings.Join(parts, sep)
}

// ToMatrix returns the matrix of op on wireOrder (own wires when empty).
func ToMatrix(op operator.Operator, wireOrder wires.Wires) (*matrix.Dense, error) {
	return op.Matrix(wireOrder)
}

// IsUnitary reports whether op·op† equals the identity within DefaultEpsilon.
func IsUnitary(op operator.Operator) (bool, error) {
	m, err := op.Matrix(wires.Wires{})
	if err != nil {
		return false, err
	}
	adj, err := matrix.Adjoint(m)
	if err != nil {
		return false, err
	}
	prod, err := matrix.Mul(m, adj)
	if err != nil {
		return false, err
	}

	return matrix.IsIdentity(prod, matrix.DefaultEpsilon), nil
}

// expAll returns exp(coeff·v) elementwise.
func expAll(coeff complex128, vals []complex128) []complex128 {
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = cmplx.Exp(coeff * v)
	}

	return out
}
