// SPDX-License-Identifier: MIT
// Package operator - closed-form matrices of the elementary kinds.
//
// Conventions:
//   - Matrices act on the operator's own wires, first wire = most significant bit.
//   - Controlled kinds are block-diagonal diag(I, ..., I, U) with U on the targets.
//   - Flag-adjoint kinds return the conjugate transpose of the base matrix.

package operator

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/qlath/matrix"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// check panics on a shape error in the closed forms below.
func check(err error) {
	if err != nil {
		panic("operator: gate matrix: " + err.Error())
	}
}

// mustDense returns m or panics on err.
func mustDense(m *matrix.Dense, err error) *matrix.Dense {
	check(err)

	return m
}

func dense(rows ...[]complex128) *matrix.Dense {
	return mustDense(matrix.NewDenseRows(rows))
}

func diag(vals ...complex128) *matrix.Dense {
	m := mustDense(matrix.NewDense(len(vals), len(vals)))
	for i, v := range vals {
		check(m.Set(i, i, v))
	}

	return m
}

// expi returns e^{iθ}.
func expi(theta float64) complex128 { return cmplx.Exp(complex(0, theta)) }

func pauliXMatrix() *matrix.Dense { return dense([]complex128{0, 1}, []complex128{1, 0}) }
func pauliYMatrix() *matrix.Dense { return dense([]complex128{0, -1i}, []complex128{1i, 0}) }
func pauliZMatrix() *matrix.Dense { return diag(1, -1) }

// PauliMatrix returns the 2×2 matrix of 'I', 'X', 'Y' or 'Z'.
func PauliMatrix(letter byte) *matrix.Dense {
	switch letter {
	case 'X':
		return pauliXMatrix()
	case 'Y':
		return pauliYMatrix()
	case 'Z':
		return pauliZMatrix()
	default:
		return diag(1, 1)
	}
}

func rxMatrix(theta float64) *matrix.Dense {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))

	return dense([]complex128{c, s}, []complex128{s, c})
}

func ryMatrix(theta float64) *matrix.Dense {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)

	return dense([]complex128{c, -s}, []complex128{s, c})
}

func rzMatrix(theta float64) *matrix.Dense { return diag(expi(-theta/2), expi(theta/2)) }

func rotMatrix(phi, theta, omega float64) *matrix.Dense {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)

	return dense(
		[]complex128{expi(-(phi+omega)/2) * c, -expi((phi-omega)/2) * s},
		[]complex128{expi(-(phi-omega)/2) * s, expi((phi+omega)/2) * c},
	)
}

func u3Matrix(theta, phi, delta float64) *matrix.Dense {
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)

	return dense(
		[]complex128{c, -expi(delta) * s},
		[]complex128{expi(phi) * s, expi(phi+delta) * c},
	)
}

func u2Matrix(phi, delta float64) *matrix.Dense {
	return dense(
		[]complex128{invSqrt2, -expi(delta) * invSqrt2},
		[]complex128{expi(phi) * invSqrt2, expi(phi+delta) * invSqrt2},
	)
}

// controlled embeds u as the bottom-right block of an identity with nCtrl extra qubits.
func controlled(u *matrix.Dense, nCtrl int) *matrix.Dense {
	k := u.Rows()
	dim := k << nCtrl
	out := mustDense(matrix.NewIdentity(dim))
	off := dim - k
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, err := u.At(i, j)
			check(err)
			check(out.Set(off+i, off+j, v))
		}
	}

	return out
}

func swapMatrix() *matrix.Dense {
	return dense(
		[]complex128{1, 0, 0, 0},
		[]complex128{0, 0, 1, 0},
		[]complex128{0, 1, 0, 0},
		[]complex128{0, 0, 0, 1},
	)
}

// isingMatrix returns cos(φ/2)·I - i·sin(φ/2)·P⊗P.
func isingMatrix(phi float64, p *matrix.Dense) *matrix.Dense {
	pp := mustDense(matrix.Kron(p, p))
	a := mustDense(matrix.Scale(mustDense(matrix.NewIdentity(4)), complex(math.Cos(phi/2), 0)))
	b := mustDense(matrix.Scale(pp, complex(0, -math.Sin(phi/2))))

	return mustDense(matrix.Add(a, b))
}

// multiRZMatrix is diagonal with e^{-iθ/2·(-1)^{popcount(b)}} at basis state b.
func multiRZMatrix(theta float64, n int) *matrix.Dense {
	vals := make([]complex128, 1<<n)
	for b := range vals {
		if bits.OnesCount(uint(b))%2 == 0 {
			vals[b] = expi(-theta / 2)
		} else {
			vals[b] = expi(theta / 2)
		}
	}

	return diag(vals...)
}

// givens returns the identity on dim states with a rotation by φ/2 between
// basis states lo and hi: U|lo> = c|lo> + s|hi>, U|hi> = c|hi> - s|lo>.
func givens(phi float64, dim, lo, hi int) *matrix.Dense {
	out := mustDense(matrix.NewIdentity(dim))
	c, s := complex(math.Cos(phi/2), 0), complex(math.Sin(phi/2), 0)
	check(out.Set(lo, lo, c))
	check(out.Set(hi, hi, c))
	check(out.Set(hi, lo, s))
	check(out.Set(lo, hi, -s))

	return out
}

// pauliRotMatrix returns exp(-iθ/2·P) for the Pauli word P.
func pauliRotMatrix(theta float64, word string) (*matrix.Dense, error) {
	fs := make([]*matrix.Dense, len(word))
	for i := range word {
		fs[i] = PauliMatrix(word[i])
	}
	p, err := matrix.KronAll(fs...)
	if err != nil {
		return nil, err
	}
	gen, err := matrix.Scale(p, complex(0, -theta/2))
	if err != nil {
		return nil, err
	}

	return matrix.Expm(gen)
}

// localMatrix returns the matrix of e on its own wires.
func (e *Elementary) localMatrix() (*matrix.Dense, error) {
	base, err := e.baseMatrix()
	if err != nil {
		return nil, err
	}
	if e.adjoint {
		return matrix.Adjoint(base)
	}

	return base, nil
}

// baseMatrix ignores the adjoint flag.
func (e *Elementary) baseMatrix() (*matrix.Dense, error) {
	p := e.params
	n := e.wires.Len()
	switch e.kind {
	case KindIdentity:
		return matrix.NewIdentity(1 << n)
	case KindPauliX:
		return pauliXMatrix(), nil
	case KindPauliY:
		return pauliYMatrix(), nil
	case KindPauliZ:
		return pauliZMatrix(), nil
	case KindHadamard:
		return dense([]complex128{invSqrt2, invSqrt2}, []complex128{invSqrt2, -invSqrt2}), nil
	case KindS:
		return diag(1, 1i), nil
	case KindT:
		return diag(1, expi(math.Pi/4)), nil
	case KindSX:
		return dense([]complex128{0.5 + 0.5i, 0.5 - 0.5i}, []complex128{0.5 - 0.5i, 0.5 + 0.5i}), nil
	case KindRX:
		return rxMatrix(p[0]), nil
	case KindRY:
		return ryMatrix(p[0]), nil
	case KindRZ:
		return rzMatrix(p[0]), nil
	case KindPhaseShift, KindU1:
		return diag(1, expi(p[0])), nil
	case KindU2:
		return u2Matrix(p[0], p[1]), nil
	case KindU3:
		return u3Matrix(p[0], p[1], p[2]), nil
	case KindRot:
		return rotMatrix(p[0], p[1], p[2]), nil
	case KindCNOT:
		return controlled(pauliXMatrix(), 1), nil
	case KindCZ:
		return controlled(pauliZMatrix(), 1), nil
	case KindCY:
		return controlled(pauliYMatrix(), 1), nil
	case KindSWAP:
		return swapMatrix(), nil
	case KindISWAP:
		return dense(
			[]complex128{1, 0, 0, 0},
			[]complex128{0, 0, 1i, 0},
			[]complex128{0, 1i, 0, 0},
			[]complex128{0, 0, 0, 1},
		), nil
	case KindSISWAP:
		h := complex(0, 1/math.Sqrt2)
		return dense(
			[]complex128{1, 0, 0, 0},
			[]complex128{0, invSqrt2, h, 0},
			[]complex128{0, h, invSqrt2, 0},
			[]complex128{0, 0, 0, 1},
		), nil
	case KindCSWAP:
		return controlled(swapMatrix(), 1), nil
	case KindToffoli:
		return controlled(pauliXMatrix(), 2), nil
	case KindMultiControlledX:
		return controlled(pauliXMatrix(), n-1), nil
	case KindControlledPhaseShift:
		return diag(1, 1, 1, expi(p[0])), nil
	case KindCRX:
		return controlled(rxMatrix(p[0]), 1), nil
	case KindCRY:
		return controlled(ryMatrix(p[0]), 1), nil
	case KindCRZ:
		return controlled(rzMatrix(p[0]), 1), nil
	case KindCRot:
		return controlled(rotMatrix(p[0], p[1], p[2]), 1), nil
	case KindMultiRZ:
		return multiRZMatrix(p[0], n), nil
	case KindIsingXX:
		return isingMatrix(p[0], pauliXMatrix()), nil
	case KindIsingYY:
		return isingMatrix(p[0], pauliYMatrix()), nil
	case KindIsingZZ:
		return multiRZMatrix(p[0], 2), nil
	case KindSingleExcitation:
		return givens(p[0], 4, 0b01, 0b10), nil
	case KindDoubleExcitation:
		return givens(p[0], 16, 0b0011, 0b1100), nil
	case KindPauliRot:
		return pauliRotMatrix(p[0], e.word)
	default:
		return nil, ErrMatrixUndefined
	}
}
