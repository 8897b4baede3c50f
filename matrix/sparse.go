// SPDX-License-Identifier: MIT
// Package matrix - compressed sparse row (CSR) storage and kernels.
//
// Purpose:
//   - Hold large, mostly-zero operator matrices (Pauli strings, Hamiltonians)
//     without the O(4^n) cost of Dense.
//   - Provide the sparse kernels the operator algebra needs: Add, Scale, Mul,
//     Kron, Adjoint, and a scaling-and-squaring Taylor exponential.
//
// Invariants:
//   - indptr has r+1 entries; row i occupies [indptr[i], indptr[i+1]).
//   - Column indices inside a row are strictly increasing; no explicit zeros are stored.
//
// Complexity quicksheet:
//   - At: O(log nnz(row)); Add/Scale: O(nnz); Mul: O(Σ_i Σ_{k∈row i} nnz(row k of b)).

package matrix

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	opSparse     = "Sparse"
	opSparseAdd  = "SparseAdd"
	opSparseMul  = "SparseMul"
	opSparseKron = "SparseKron"
	opSparseExpm = "SparseExpm"
)

// Sparse is an r×c complex matrix in CSR form.
type Sparse struct {
	r, c    int
	indptr  []int        // row pointers, len r+1
	indices []int        // column index per stored value
	data    []complex128 // stored nonzero values
}

var _ Matrix = (*Sparse)(nil)

// NewSparse returns an empty (all-zero) r×c sparse matrix.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Sparse{r: rows, c: cols, indptr: make([]int, rows+1)}, nil
}

// NewSparseFromTriplets builds a CSR matrix from coordinate triplets.
// Duplicate coordinates are summed; resulting exact zeros are not stored.
//
// Implementation:
//   - Stage 1: validate shape, equal lengths and bounds.
//   - Stage 2: stable sort of the triplet order by (row, col).
//   - Stage 3: merge runs of equal coordinates into the CSR arrays.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (length mismatch), ErrOutOfRange.
func NewSparseFromTriplets(rows, cols int, ri, ci []int, vals []complex128) (*Sparse, error) {
	s, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(ri) != len(ci) || len(ri) != len(vals) {
		return nil, matrixErrorf(opSparse, ErrDimensionMismatch)
	}
	order := make([]int, len(ri))
	for p := range ri {
		if ri[p] < 0 || ri[p] >= rows || ci[p] < 0 || ci[p] >= cols {
			return nil, matrixErrorf(opSparse, ErrOutOfRange)
		}
		order[p] = p
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := order[a], order[b]
		if ri[pa] != ri[pb] {
			return ri[pa] < ri[pb]
		}

		return ci[pa] < ci[pb]
	})

	s.indices = make([]int, 0, len(order))
	s.data = make([]complex128, 0, len(order))
	for q := 0; q < len(order); {
		p := order[q]
		row, col := ri[p], ci[p]
		var acc complex128
		for q < len(order) && ri[order[q]] == row && ci[order[q]] == col {
			acc += vals[order[q]]
			q++
		}
		if acc == 0 {
			continue
		}
		s.indices = append(s.indices, col)
		s.data = append(s.data, acc)
		s.indptr[row+1]++
	}
	for i := 0; i < rows; i++ {
		s.indptr[i+1] += s.indptr[i]
	}

	return s, nil
}

// SparseIdentity returns the n×n identity in CSR form.
func SparseIdentity(n int) (*Sparse, error) {
	s, err := NewSparse(n, n)
	if err != nil {
		return nil, err
	}
	s.indices = make([]int, n)
	s.data = make([]complex128, n)
	for i := 0; i < n; i++ {
		s.indices[i] = i
		s.data[i] = 1
		s.indptr[i+1] = i + 1
	}

	return s, nil
}

// SparseFromDense converts d, skipping entries with magnitude <= DefaultDropTol.
func SparseFromDense(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, matrixErrorf(opSparse, ErrNilMatrix)
	}
	s, _ := NewSparse(d.r, d.c)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v := d.data[i*d.c+j]
			if cmplx.Abs(v) <= DefaultDropTol {
				continue
			}
			s.indices = append(s.indices, j)
			s.data = append(s.data, v)
		}
		s.indptr[i+1] = len(s.indices)
	}

	return s, nil
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored values.
func (s *Sparse) NNZ() int { return len(s.data) }

// At returns the entry at (i, j) or ErrOutOfRange.
func (s *Sparse) At(i, j int) (complex128, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, matrixErrorf(opSparse, ErrOutOfRange)
	}
	lo, hi := s.indptr[i], s.indptr[i+1]
	k := lo + sort.SearchInts(s.indices[lo:hi], j)
	if k < hi && s.indices[k] == j {
		return s.data[k], nil
	}

	return 0, nil
}

// Clone returns a deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		r:       s.r,
		c:       s.c,
		indptr:  append([]int(nil), s.indptr...),
		indices: append([]int(nil), s.indices...),
		data:    append([]complex128(nil), s.data...),
	}
}

// ToDense materialises the matrix.
func (s *Sparse) ToDense() *Dense {
	d := &Dense{r: s.r, c: s.c, data: make([]complex128, s.r*s.c)}
	for i := 0; i < s.r; i++ {
		for p := s.indptr[i]; p < s.indptr[i+1]; p++ {
			d.data[i*s.c+s.indices[p]] = s.data[p]
		}
	}

	return d
}

// rowAccumulator gathers one output row at a time for the product kernels.
type rowAccumulator struct {
	vals  []complex128
	mark  []bool
	touch []int
}

func newRowAccumulator(cols int) *rowAccumulator {
	return &rowAccumulator{vals: make([]complex128, cols), mark: make([]bool, cols)}
}

func (acc *rowAccumulator) add(j int, v complex128) {
	if !acc.mark[j] {
		acc.mark[j] = true
		acc.touch = append(acc.touch, j)
	}
	acc.vals[j] += v
}

// flush appends the accumulated row (sorted, zeros dropped) to s and resets.
func (acc *rowAccumulator) flush(s *Sparse, row int, dropTol float64) {
	sort.Ints(acc.touch)
	for _, j := range acc.touch {
		if cmplx.Abs(acc.vals[j]) > dropTol {
			s.indices = append(s.indices, j)
			s.data = append(s.data, acc.vals[j])
		}
		acc.vals[j] = 0
		acc.mark[j] = false
	}
	acc.touch = acc.touch[:0]
	s.indptr[row+1] = len(s.indices)
}

// SparseAdd returns a + b.
func SparseAdd(a, b *Sparse) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSparseAdd, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSparseAdd, err)
	}
	out, _ := NewSparse(a.r, a.c)
	acc := newRowAccumulator(a.c)
	for i := 0; i < a.r; i++ {
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			acc.add(a.indices[p], a.data[p])
		}
		for p := b.indptr[i]; p < b.indptr[i+1]; p++ {
			acc.add(b.indices[p], b.data[p])
		}
		acc.flush(out, i, 0)
	}

	return out, nil
}

// SparseScale returns alpha * s. Scaling by zero yields an empty matrix.
func SparseScale(s *Sparse, alpha complex128) *Sparse {
	if alpha == 0 {
		out, _ := NewSparse(s.r, s.c)

		return out
	}
	out := s.Clone()
	for p := range out.data {
		out.data[p] *= alpha
	}

	return out
}

// SparseMul returns the product a×b (row-by-row Gustavson scheme).
func SparseMul(a, b *Sparse) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSparseMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSparseMul, err)
	}

	return sparseMulDrop(a, b, 0), nil
}

func sparseMulDrop(a, b *Sparse, dropTol float64) *Sparse {
	out, _ := NewSparse(a.r, b.c)
	acc := newRowAccumulator(b.c)
	for i := 0; i < a.r; i++ {
		for p := a.indptr[i]; p < a.indptr[i+1]; p++ {
			k, av := a.indices[p], a.data[p]
			for q := b.indptr[k]; q < b.indptr[k+1]; q++ {
				acc.add(b.indices[q], av*b.data[q])
			}
		}
		acc.flush(out, i, dropTol)
	}

	return out
}

// SparseKron returns a ⊗ b with the same index convention as Kron.
func SparseKron(a, b *Sparse) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opSparseKron, ErrNilMatrix)
	}
	out, _ := NewSparse(a.r*b.r, a.c*b.c)
	out.indices = make([]int, 0, a.NNZ()*b.NNZ())
	out.data = make([]complex128, 0, a.NNZ()*b.NNZ())
	for ia := 0; ia < a.r; ia++ {
		for ib := 0; ib < b.r; ib++ {
			row := ia*b.r + ib
			// columns stay sorted: outer loop over a's columns, inner over b's
			for p := a.indptr[ia]; p < a.indptr[ia+1]; p++ {
				for q := b.indptr[ib]; q < b.indptr[ib+1]; q++ {
					out.indices = append(out.indices, a.indices[p]*b.c+b.indices[q])
					out.data = append(out.data, a.data[p]*b.data[q])
				}
			}
			out.indptr[row+1] = len(out.indices)
		}
	}

	return out, nil
}

// SparseAdjoint returns the conjugate transpose.
func SparseAdjoint(s *Sparse) *Sparse {
	ri := make([]int, 0, s.NNZ())
	ci := make([]int, 0, s.NNZ())
	vals := make([]complex128, 0, s.NNZ())
	for i := 0; i < s.r; i++ {
		for p := s.indptr[i]; p < s.indptr[i+1]; p++ {
			ri = append(ri, s.indices[p])
			ci = append(ci, i)
			vals = append(vals, cmplx.Conj(s.data[p]))
		}
	}
	out, _ := NewSparseFromTriplets(s.c, s.r, ri, ci, vals)

	return out
}

// normOne returns the maximum absolute column sum.
func (s *Sparse) normOne() float64 {
	cols := make([]float64, s.c)
	for p, j := range s.indices {
		cols[j] += cmplx.Abs(s.data[p])
	}
	best := 0.0
	for _, v := range cols {
		best = math.Max(best, v)
	}

	return best
}

// SparseExpm returns exp(s) for a square sparse matrix.
// MAIN DESCRIPTION:
//   - Scaling and squaring with a truncated Taylor series, kept sparse throughout.
//
// Implementation:
//   - Stage 1: choose σ so that ||s||₁ / 2^σ <= 1/2.
//   - Stage 2: T = Σ_{k=0..K} (s/2^σ)^k / k!, stopping when the next term's
//     norm drops below machine epsilon relative to T (K <= sparseExpmMaxTerms).
//   - Stage 3: square T σ times.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func SparseExpm(s *Sparse) (*Sparse, error) {
	if s == nil {
		return nil, matrixErrorf(opSparseExpm, ErrNilMatrix)
	}
	if err := ValidateSquare(s); err != nil {
		return nil, matrixErrorf(opSparseExpm, err)
	}
	norm := s.normOne()
	sigma := 0
	for norm/math.Ldexp(1, sigma) > 0.5 {
		sigma++
	}
	a := SparseScale(s, complex(math.Ldexp(1, -sigma), 0))

	result, _ := SparseIdentity(s.r)
	term, _ := SparseIdentity(s.r)
	for k := 1; k <= sparseExpmMaxTerms; k++ {
		term = SparseScale(sparseMulDrop(term, a, DefaultDropTol), complex(1/float64(k), 0))
		result, _ = SparseAdd(result, term)
		if term.normOne() <= 1e-17*result.normOne() {
			break
		}
	}
	for ; sigma > 0; sigma-- {
		result = sparseMulDrop(result, result, DefaultDropTol)
	}

	return result, nil
}
