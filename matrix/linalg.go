// SPDX-License-Identifier: MIT
// Package matrix - dense complex linear-algebra kernels.
//
// Purpose:
//   - Provide the elementwise and product kernels used to lower operator trees:
//     Add, Sub, Scale, Mul, Kron, Adjoint, Transpose, Trace, MatVec.
//   - Provide the comparison helpers used by tests and the commutation fallback:
//     AllClose, IsHermitian, Commutator.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels validate through validators.go and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opKron       = "Kron"
	opAdjoint    = "Adjoint"
	opTranspose  = "Transpose"
	opTrace      = "Trace"
	opMatVec     = "MatVec"
	opCommutator = "Commutator"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical op* constants.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b elementwise. Shared body of Add and Sub.
//
// Implementation:
//   - Stage 1: nil and shape validation.
//   - Stage 2: single flat loop over the row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out, nil
}

// Mul returns the matrix product a×b.
// MAIN DESCRIPTION:
//   - Classic triple loop in i→k→j order so the inner loop walks both b and
//     the output row contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue // Pauli-heavy inputs are mostly zeros
			}
			bk := b.data[k*b.c : (k+1)*b.c]
			for j := range row {
				row[j] += aik * bk[j]
			}
		}
	}

	return out, nil
}

// Kron returns the Kronecker (tensor) product a ⊗ b.
// Row index of the result is ia*b.r + ib, so a acts on the most significant bits.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space the same.
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opKron, ErrNilMatrix)
	}
	r, c := a.r*b.r, a.c*b.c
	out := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	for ia := 0; ia < a.r; ia++ {
		for ja := 0; ja < a.c; ja++ {
			av := a.data[ia*a.c+ja]
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.r; ib++ {
				base := (ia*b.r+ib)*c + ja*b.c
				for jb := 0; jb < b.c; jb++ {
					out.data[base+jb] = av * b.data[ib*b.c+jb]
				}
			}
		}
	}

	return out, nil
}

// Adjoint returns the conjugate transpose m†.
func Adjoint(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAdjoint, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Transpose returns mᵀ (no conjugation).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m *Dense) (complex128, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// MatVec returns y = m·x.
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		var acc complex128
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Commutator returns [a, b] = a·b - b·a.
func Commutator(a, b *Dense) (*Dense, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, matrixErrorf(opCommutator, err)
	}

	return Sub(ab, ba)
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for every entry.
// Shapes must match; mismatched or nil inputs compare unequal.
// Complexity: O(r*c) with At on generic inputs, flat loop on *Dense pairs.
func AllClose(a, b Matrix, rtol, atol float64) bool {
	if a == nil || b == nil || ValidateSameShape(a, b) != nil {
		return false
	}
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := range da.data {
			if cmplx.Abs(da.data[i]-db.data[i]) > atol+rtol*cmplx.Abs(db.data[i]) {
				return false
			}
		}

		return true
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			if cmplx.Abs(x-y) > atol+rtol*cmplx.Abs(y) {
				return false
			}
		}
	}

	return true
}

// IsHermitian reports whether m equals its conjugate transpose within tol.
func IsHermitian(m *Dense, tol float64) bool {
	return m != nil && ValidateHermitian(m, tol) == nil
}

// IsIdentity reports whether m is the identity within tol.
func IsIdentity(m *Dense, tol float64) bool {
	if m == nil || ValidateSquare(m) != nil {
		return false
	}
	I, _ := NewIdentity(m.r)

	return AllClose(m, I, 0, tol)
}
