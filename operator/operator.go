// SPDX-License-Identifier: MIT
// Package operator - the capability contract shared by every node of an operator tree.

package operator

import (
	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/wires"
)

// Operator is the polymorphic capability set of a quantum operator.
//
// Contract:
//   - Matrix/SparseMatrix lower the operator to numbers. An empty wireOrder means
//     the operator's own wires; a larger order embeds with identity padding.
//   - Data is the flat parameter vector; SetData is the only in-place mutation.
//   - Simplify and Adjoint return new trees; the receiver is never modified.
//   - Terms returns a linear-combination form or ErrTermsUndefined.
//   - Hash is a canonical structural key: equal hashes mean equal operators.
type Operator interface {
	Name() string
	Kind() Kind
	Wires() wires.Wires
	Data() []complex128
	SetData(data []complex128) error
	NumParams() int
	NdimParams() []int
	Matrix(wireOrder wires.Wires) (*matrix.Dense, error)
	SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error)
	Eigvals() ([]complex128, error)
	Adjoint() Operator
	Simplify() Operator
	IsHermitian() bool
	Terms() ([]complex128, []Operator, error)
	Hash() string
	String() string
}

// Controlled is implemented by operators with a control/target wire split.
type Controlled interface {
	ControlWires() wires.Wires
	TargetWires() wires.Wires
}

// Decomposable is implemented by operators that can be rewritten as a gate sequence.
type Decomposable interface {
	Decomposition() ([]Operator, error)
}

// DiagonalEigvals returns the diagonal of m when m is diagonal within eps.
// The second result is false for non-diagonal matrices.
func DiagonalEigvals(m *matrix.Dense, eps float64) ([]complex128, bool) {
	n := m.Rows()
	out := make([]complex128, n)
	raw := m.RawData()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := raw[i*n+j]
			if i == j {
				out[i] = v
				continue
			}
			if real(v)*real(v)+imag(v)*imag(v) > eps*eps {
				return nil, false
			}
		}
	}

	return out, true
}

// EigvalsFromMatrix derives eigenvalues from a matrix: the diagonal for diagonal
// matrices, the Hermitian spectrum otherwise, ErrEigvalsUndefined for the rest.
func EigvalsFromMatrix(m *matrix.Dense) ([]complex128, error) {
	if vals, ok := DiagonalEigvals(m, matrix.DefaultEpsilon); ok {
		return vals, nil
	}
	if !matrix.IsHermitian(m, matrix.DefaultEpsilon) {
		return nil, ErrEigvalsUndefined
	}
	re, err := matrix.EigvalsHermitian(m)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(re))
	for i, v := range re {
		out[i] = complex(v, 0)
	}

	return out, nil
}
