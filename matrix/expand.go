// SPDX-License-Identifier: MIT
// Package matrix - embedding of local operator matrices into a larger wire order.
//
// Purpose:
//   - ExpandMatrix / ExpandSparse lift a 2^k×2^k matrix acting on k wires to the
//     2^n×2^n matrix acting on an ordered superset of n wires, padding with identity
//     and permuting the tensor factors to match the requested order.
//
// Conventions:
//   - Big-endian wire order: the first wire of an order is the most significant bit
//     of the basis-state index, the same convention Kron uses.
//
// Implementation:
//   - Each basis index of the big space splits into "local" bits (the operator's
//     wires) and "rest" bits (every other wire). For every nonzero local entry
//     (i, j, v) and every rest configuration ρ, the big matrix gets v at
//     (spread(i) | spread(ρ), spread(j) | spread(ρ)).
//
// Complexity:
//   - O(nnz(m) * 2^(n-k)) writes; O(4^n) memory for the dense result.

package matrix

import (
	"github.com/katalvlaran/qlath/wires"
)

const (
	opExpand       = "ExpandMatrix"
	opExpandSparse = "ExpandSparse"
)

// bitLayout stores, for the local and the rest wires, the bit shift of every
// wire inside the big index (MSB-first order).
type bitLayout struct {
	n     int
	local []uint // shift of local wire t (t=0 is the local MSB)
	rest  []uint // shift of rest wire u in order
}

// newBitLayout validates that order covers opWires and that dim == 2^len(opWires).
func newBitLayout(dim int, opWires, order wires.Wires) (*bitLayout, error) {
	k := opWires.Len()
	if dim != 1<<k {
		return nil, ErrWireOrder
	}
	if !order.ContainsAll(opWires) {
		return nil, ErrWireOrder
	}
	n := order.Len()
	lay := &bitLayout{n: n, local: make([]uint, k), rest: make([]uint, 0, n-k)}
	for t := 0; t < k; t++ {
		lay.local[t] = uint(n - 1 - order.Index(opWires.At(t)))
	}
	for p := 0; p < n; p++ {
		if !opWires.Contains(order.At(p)) {
			lay.rest = append(lay.rest, uint(n-1-p))
		}
	}

	return lay, nil
}

// spread scatters the bits of x (MSB-first over len(shifts) bits) to the given shifts.
func spread(x int, shifts []uint) int {
	k := len(shifts)
	out := 0
	for t, sh := range shifts {
		if (x>>(k-1-t))&1 == 1 {
			out |= 1 << sh
		}
	}

	return out
}

// ExpandMatrix embeds m, acting on opWires, into the space of order.
// An empty order means opWires itself, in which case a copy of m is returned.
//
// Errors:
//   - ErrNilMatrix; ErrWireOrder when order misses a wire of opWires or the
//     matrix dimension is not 2^len(opWires).
func ExpandMatrix(m *Dense, opWires, order wires.Wires) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opExpand, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExpand, err)
	}
	if order.IsEmpty() || order.Equal(opWires) {
		if m.r != 1<<opWires.Len() {
			return nil, matrixErrorf(opExpand, ErrWireOrder)
		}

		return m.Clone(), nil
	}
	lay, err := newBitLayout(m.r, opWires, order)
	if err != nil {
		return nil, matrixErrorf(opExpand, err)
	}

	dim := 1 << lay.n
	out := &Dense{r: dim, c: dim, data: make([]complex128, dim*dim)}
	restCount := 1 << len(lay.rest)
	for i := 0; i < m.r; i++ {
		bi := spread(i, lay.local)
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if v == 0 {
				continue
			}
			bj := spread(j, lay.local)
			for rho := 0; rho < restCount; rho++ {
				br := spread(rho, lay.rest)
				out.data[(bi|br)*dim+(bj|br)] = v
			}
		}
	}

	return out, nil
}

// ExpandSparse is the CSR counterpart of ExpandMatrix.
func ExpandSparse(s *Sparse, opWires, order wires.Wires) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opExpandSparse, ErrNilMatrix)
	}
	if err := ValidateSquare(s); err != nil {
		return nil, matrixErrorf(opExpandSparse, err)
	}
	if order.IsEmpty() || order.Equal(opWires) {
		if s.r != 1<<opWires.Len() {
			return nil, matrixErrorf(opExpandSparse, ErrWireOrder)
		}

		return s.Clone(), nil
	}
	lay, err := newBitLayout(s.r, opWires, order)
	if err != nil {
		return nil, matrixErrorf(opExpandSparse, err)
	}

	dim := 1 << lay.n
	restCount := 1 << len(lay.rest)
	nnz := s.NNZ() * restCount
	rows := make([]int, 0, nnz)
	cols := make([]int, 0, nnz)
	vals := make([]complex128, 0, nnz)
	for i := 0; i < s.r; i++ {
		bi := spread(i, lay.local)
		for p := s.indptr[i]; p < s.indptr[i+1]; p++ {
			bj := spread(s.indices[p], lay.local)
			for rho := 0; rho < restCount; rho++ {
				br := spread(rho, lay.rest)
				rows = append(rows, bi|br)
				cols = append(cols, bj|br)
				vals = append(vals, s.data[p])
			}
		}
	}

	return NewSparseFromTriplets(dim, dim, rows, cols, vals)
}
