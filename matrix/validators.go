// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/hermiticity checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Hermiticity check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for a×b.
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks |m[i,j] - conj(m[j,i])| <= tol on the upper triangle.
// Errors: ErrNonSquare, ErrNotHermitian.
func ValidateHermitian(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		// diagonal entries of a Hermitian matrix are real
		if !scalar.EqualWithinAbs(imag(m.at(i, i)), 0, tol) {
			return validatorErrorf("ValidateHermitian", ErrNotHermitian)
		}
		for j := i + 1; j < n; j++ {
			if cmplx.Abs(m.at(i, j)-cmplx.Conj(m.at(j, i))) > tol {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}
