// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// AI-Hints:
//   - KronAll is the building block of tensor-product (Pauli string) matrices.
//   - ToDense accepts either storage so callers can compare Dense and Sparse results.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// KronAll folds Kron left to right: ms[0] ⊗ ms[1] ⊗ ... .
// An empty argument list yields the 1×1 identity.
func KronAll(ms ...*Dense) (*Dense, error) {
	out, _ := NewIdentity(1)
	for _, m := range ms {
		next, err := Kron(out, m)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// MulAll folds Mul left to right. At least one matrix is required.
func MulAll(first *Dense, rest ...*Dense) (*Dense, error) {
	if first == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	out := first.Clone()
	for _, m := range rest {
		next, err := Mul(out, m)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// ToDense returns a dense copy of any Matrix implementation.
func ToDense(m Matrix) (*Dense, error) {
	switch v := m.(type) {
	case nil:
		return nil, ErrNilMatrix
	case *Dense:
		if v == nil {
			return nil, ErrNilMatrix
		}

		return v.Clone(), nil
	case *Sparse:
		if v == nil {
			return nil, ErrNilMatrix
		}

		return v.ToDense(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
