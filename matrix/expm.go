// SPDX-License-Identifier: MIT
// Package matrix - matrix exponential and Hermitian spectrum.
//
// Purpose:
//   - Expm: dense exp(M) for square complex M.
//   - EigvalsHermitian: ascending real eigenvalues of a Hermitian matrix.
//
// Implementation (both kernels):
//   - A complex n×n matrix Z = A + iB is embedded into the real 2n×2n matrix
//     R(Z) = [[A, -B], [B, A]]. The embedding is an algebra homomorphism, so
//     exp(R(Z)) = R(exp(Z)), and for Hermitian Z the embedding is real symmetric
//     with every eigenvalue of Z appearing exactly twice.
//   - The real work is delegated to gonum: mat.Dense.Exp (scaling and squaring
//     with Padé approximants) and mat.EigenSym.
//
// Complexity:
//   - O((2n)^3) time, O((2n)^2) space.

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	opExpm    = "Expm"
	opEigvals = "EigvalsHermitian"
)

// realEmbedding returns R(m) = [[Re, -Im], [Im, Re]] as a gonum dense matrix.
func realEmbedding(m *Dense) *mat.Dense {
	n := m.r
	r := mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.data[i*n+j]
			r.Set(i, j, real(v))
			r.Set(i+n, j+n, real(v))
			r.Set(i, j+n, -imag(v))
			r.Set(i+n, j, imag(v))
		}
	}

	return r
}

// Expm returns exp(m) for a square complex matrix.
// MAIN DESCRIPTION:
//   - Exponentiates the real embedding with gonum and reads the complex result
//     back from the left block column: Re = E[0:n, 0:n], Im = E[n:2n, 0:n].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite input).
func Expm(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opExpm, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	if err := validateFinite(m); err != nil {
		return nil, matrixErrorf(opExpm, err)
	}
	n := m.r
	var e mat.Dense
	e.Exp(realEmbedding(m))

	out := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[i*n+j] = complex(e.At(i, j), e.At(i+n, j))
		}
	}

	return out, nil
}

// EigvalsHermitian returns the eigenvalues of a Hermitian matrix in ascending order.
//
// Implementation:
//   - Stage 1: validate square + Hermitian within DefaultEpsilon.
//   - Stage 2: factorize the symmetric embedding with mat.EigenSym.
//   - Stage 3: the embedded spectrum is the original one with every value doubled;
//     sorted ascending, the pairs are adjacent so every other value is kept.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
func EigvalsHermitian(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opEigvals, ErrNilMatrix)
	}
	if err := ValidateHermitian(m, DefaultEpsilon); err != nil {
		return nil, matrixErrorf(opEigvals, err)
	}
	n := m.r
	sym := mat.NewSymDense(2*n, nil)
	emb := realEmbedding(m)
	for i := 0; i < 2*n; i++ {
		for j := i; j < 2*n; j++ {
			sym.SetSym(i, j, emb.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, matrixErrorf(opEigvals, ErrEigenFailed)
	}
	all := es.Values(nil) // ascending, each value twice
	vals := make([]float64, n)
	for k := 0; k < n; k++ {
		vals[k] = all[2*k]
	}

	return vals, nil
}

// validateFinite rejects NaN and Inf components.
func validateFinite(m *Dense) error {
	for _, v := range m.data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return ErrNaNInf
		}
	}

	return nil
}
