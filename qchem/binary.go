// SPDX-License-Identifier: MIT
// Package qchem - binary (symplectic) matrices over GF(2).
//
// Purpose:
//   - BinaryMatrixOf encodes Pauli words as rows [x | z] over a wire order.
//   - ReducedRowEchelon and Kernel give the nullspace the symmetry search needs.
//
// Layout:
//   - An N×2Q matrix: column q holds 1 when the word has X or Y on wire q,
//     column Q+q holds 1 when it has Z or Y on wire q.
//
// Complexity:
//   - ReducedRowEchelon: O(N·(2Q)²) bit operations. Kernel: O(N·2Q).

package qchem

import (
	"strings"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opNewBinary   = "NewBinaryMatrix"
	opBinaryFrom  = "BinaryMatrixFrom"
	opBinaryOf    = "BinaryMatrixOf"
	opBinaryWords = "BinaryMatrix.Words"
)

// BinaryMatrix is a dense row-major matrix of bits.
type BinaryMatrix struct {
	r, c int
	bits []uint8
}

// NewBinaryMatrix returns a zero rows×cols matrix. cols must be even.
// Errors: ErrBinaryShape.
func NewBinaryMatrix(rows, cols int) (*BinaryMatrix, error) {
	if rows < 0 || cols < 0 || cols%2 != 0 {
		return nil, qchemErrorf(opNewBinary, ErrBinaryShape)
	}

	return &BinaryMatrix{r: rows, c: cols, bits: make([]uint8, rows*cols)}, nil
}

// BinaryMatrixFrom copies a rectangular [][]int whose entries are 0 or 1.
// Errors: ErrBinaryShape, ErrBinaryValue.
func BinaryMatrixFrom(data [][]int) (*BinaryMatrix, error) {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	m, err := NewBinaryMatrix(len(data), cols)
	if err != nil {
		return nil, qchemErrorf(opBinaryFrom, err)
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, qchemErrorf(opBinaryFrom, ErrBinaryShape)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, qchemErrorf(opBinaryFrom, ErrBinaryValue)
			}
			m.bits[i*cols+j] = uint8(v)
		}
	}

	return m, nil
}

// BinaryMatrixOf encodes every term as one row over order. Coefficients are
// ignored; each term must be a single Pauli word whose wires lie in order.
//
// Errors: pauli.ErrNotPauli / pauli.ErrNotWord from the term, ErrWireOrder.
func BinaryMatrixOf(terms []operator.Operator, order wires.Wires) (*BinaryMatrix, error) {
	q := order.Len()
	m := &BinaryMatrix{r: len(terms), c: 2 * q, bits: make([]uint8, len(terms)*2*q)}
	for i, t := range terms {
		w, _, err := pauli.WordOf(t)
		if err != nil {
			return nil, qchemErrorf(opBinaryOf, err)
		}
		for label, letter := range w {
			col := order.Index(label)
			if col < 0 {
				return nil, qchemErrorf(opBinaryOf+" "+label, ErrWireOrder)
			}
			if letter == 'X' || letter == 'Y' {
				m.bits[i*m.c+col] = 1
			}
			if letter == 'Z' || letter == 'Y' {
				m.bits[i*m.c+q+col] = 1
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *BinaryMatrix) Rows() int { return m.r }

// Cols returns the number of columns (2Q).
func (m *BinaryMatrix) Cols() int { return m.c }

// Qubits returns Q, half the column count.
func (m *BinaryMatrix) Qubits() int { return m.c / 2 }

// At returns the bit at (i, j). It panics when out of range, like slice indexing.
func (m *BinaryMatrix) At(i, j int) int { return int(m.bits[i*m.c+j]) }

// Row returns a copy of row i as ints.
func (m *BinaryMatrix) Row(i int) []int {
	out := make([]int, m.c)
	for j := range out {
		out[j] = int(m.bits[i*m.c+j])
	}

	return out
}

// Ints returns the whole matrix as [][]int.
func (m *BinaryMatrix) Ints() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns a deep copy.
func (m *BinaryMatrix) Clone() *BinaryMatrix {
	return &BinaryMatrix{r: m.r, c: m.c, bits: append([]uint8(nil), m.bits...)}
}

func (m *BinaryMatrix) rowIsZero(i int) bool {
	for _, b := range m.bits[i*m.c : (i+1)*m.c] {
		if b != 0 {
			return false
		}
	}

	return true
}

// DropZeroRows returns a copy without all-zero rows.
func (m *BinaryMatrix) DropZeroRows() *BinaryMatrix {
	out := &BinaryMatrix{c: m.c}
	for i := 0; i < m.r; i++ {
		if m.rowIsZero(i) {
			continue
		}
		out.bits = append(out.bits, m.bits[i*m.c:(i+1)*m.c]...)
		out.r++
	}

	return out
}

// Rank returns the number of nonzero rows of the reduced row echelon form.
func (m *BinaryMatrix) Rank() int {
	return ReducedRowEchelon(m).DropZeroRows().Rows()
}

// Words decodes every row as a Pauli word over order, reading z = row[:Q] and
// x = row[Q:]. This is the reading that turns a kernel vector of the [x | z]
// encoding into a word commuting with every encoded term.
//
// Errors: ErrWireOrder when order.Len() != Q.
func (m *BinaryMatrix) Words(order wires.Wires) ([]pauli.Word, error) {
	q := m.Qubits()
	if order.Len() != q {
		return nil, qchemErrorf(opBinaryWords, ErrWireOrder)
	}
	out := make([]pauli.Word, m.r)
	for i := 0; i < m.r; i++ {
		w := make(pauli.Word)
		for k := 0; k < q; k++ {
			z, x := m.bits[i*m.c+k], m.bits[i*m.c+q+k]
			switch {
			case x == 1 && z == 1:
				w[order.At(k)] = 'Y'
			case x == 1:
				w[order.At(k)] = 'X'
			case z == 1:
				w[order.At(k)] = 'Z'
			}
		}
		out[i] = w
	}

	return out, nil
}

// String renders one row per line, e.g. "1100\n0011\n".
func (m *BinaryMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			sb.WriteByte('0' + m.bits[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ReducedRowEchelon returns the reduced row echelon form of m over GF(2).
//
// Implementation:
//   - Stage 1: walk columns left to right; the first row at or below the
//     current pivot row with a 1 becomes the pivot and is swapped up.
//   - Stage 2: XOR the pivot row into every other row holding a 1 in that
//     column, above and below (Gauss-Jordan).
//   - The result keeps m's shape; zero rows end up at the bottom.
//
// The form is canonical: equal row spaces give equal outputs.
func ReducedRowEchelon(m *BinaryMatrix) *BinaryMatrix {
	out := m.Clone()
	pivotRow := 0
	for col := 0; col < out.c && pivotRow < out.r; col++ {
		pr := -1
		for i := pivotRow; i < out.r; i++ {
			if out.bits[i*out.c+col] == 1 {
				pr = i
				break
			}
		}
		if pr < 0 {
			continue
		}
		out.swapRows(pr, pivotRow)
		for i := 0; i < out.r; i++ {
			if i != pivotRow && out.bits[i*out.c+col] == 1 {
				out.xorRow(i, pivotRow)
			}
		}
		pivotRow++
	}

	return out
}

func (m *BinaryMatrix) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.bits[a*m.c : (a+1)*m.c]
	rb := m.bits[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// xorRow sets row dst ^= row src.
func (m *BinaryMatrix) xorRow(dst, src int) {
	d := m.bits[dst*m.c : (dst+1)*m.c]
	s := m.bits[src*m.c : (src+1)*m.c]
	for j := range d {
		d[j] ^= s[j]
	}
}

// Kernel returns a basis of the nullspace of a matrix already in reduced row
// echelon form, one row per free column in increasing column order.
//
// For free column f the basis vector has a 1 at f and, for every pivot row i
// with pivot column p_i, the bit rref[i][f] at p_i.
func Kernel(rref *BinaryMatrix) *BinaryMatrix {
	pivotOf := make(map[int]int) // pivot column -> row
	pivots := make([]int, 0, rref.r)
	for i := 0; i < rref.r; i++ {
		for j := 0; j < rref.c; j++ {
			if rref.bits[i*rref.c+j] == 1 {
				pivotOf[j] = i
				pivots = append(pivots, j)
				break
			}
		}
	}
	out := &BinaryMatrix{c: rref.c}
	for f := 0; f < rref.c; f++ {
		if _, ok := pivotOf[f]; ok {
			continue
		}
		v := make([]uint8, rref.c)
		v[f] = 1
		for _, p := range pivots {
			v[p] = rref.bits[pivotOf[p]*rref.c+f]
		}
		out.bits = append(out.bits, v...)
		out.r++
	}

	return out
}
