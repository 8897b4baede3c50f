// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. DO NOT %w wrap
// these sentinels when returning directly from a validator; kernels wrap them
// with matrixErrorf(tag, err) so callers still match through errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric policy (NaN/Inf, hermiticity) -> convergence.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotHermitian signals that a Hermitian input was required (spectral kernels).
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within eps")

	// ErrEigenFailed indicates that the symmetric eigen solver did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrWireOrder indicates that a wire order does not contain every wire of
	// the matrix being embedded, or that the wire counts disagree with the shape.
	ErrWireOrder = errors.New("matrix: wire order does not cover operator wires")
)
