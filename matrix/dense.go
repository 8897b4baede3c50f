// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, complex128) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels in linalg.go operate on the flat data slice directly; prefer them over At/Set loops.
//   - Dense values are never shared between results: every kernel allocates its output.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the read surface shared by Dense and Sparse.
// Complexity notes: Rows/Cols O(1); At O(1) for Dense, O(log nnz(row)) for Sparse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j) or ErrOutOfRange.
	At(i, j int) (complex128, error)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int          // row and column counts (>0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewDenseFrom builds an r×c matrix from row-major values (the slice is copied).
// Returns ErrDimensionMismatch when len(values) != r*c.
func NewDenseFrom(rows, cols int, values []complex128) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	copy(d.data, values)

	return d, nil
}

// NewDenseRows builds a matrix from a slice of equally long rows.
func NewDenseRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	d, _ := NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != d.c {
			return nil, matrixErrorf("NewDenseRows", ErrDimensionMismatch)
		}
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return d, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col). NaN/Inf components are rejected with ErrNaNInf.
func (m *Dense) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *Dense) at(i, j int) complex128 { return m.data[i*m.c+j] }

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []complex128 {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return buf
}

// IsReal reports whether every imaginary component is exactly zero.
func (m *Dense) IsReal() bool {
	for _, v := range m.data {
		if imag(v) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer. Purely real matrices print real numbers.
func (m *Dense) String() string {
	var sb strings.Builder
	realOnly := m.IsReal()
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if realOnly {
				sb.WriteString(formatReal(real(v)))
			} else {
				sb.WriteString(fmt.Sprintf("%g", v))
			}
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// formatReal prints -0 as 0 so that String is stable under sign noise.
func formatReal(x float64) string {
	if x == 0 {
		return "0"
	}

	return fmt.Sprintf("%g", x)
}
