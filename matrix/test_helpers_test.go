// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (Pauli matrices, rotations) for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based paths.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows ...[]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

func pauliX(t testing.TB) *matrix.Dense { return mustRows(t, []complex128{0, 1}, []complex128{1, 0}) }
func pauliY(t testing.TB) *matrix.Dense { return mustRows(t, []complex128{0, -1i}, []complex128{1i, 0}) }
func pauliZ(t testing.TB) *matrix.Dense { return mustRows(t, []complex128{1, 0}, []complex128{0, -1}) }

func ident(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// rx returns exp(-iθX/2) in closed form.
func rx(t testing.TB, theta float64) *matrix.Dense {
	c, s := complex(math.Cos(theta/2), 0), complex(0, -math.Sin(theta/2))

	return mustRows(t, []complex128{c, s}, []complex128{s, c})
}

// requireClose fails unless a and b agree within the default tolerances.
func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.AllClose(got, want, matrix.DefaultRTol, matrix.DefaultATol),
		"matrices differ:\nwant\n%v\ngot\n%v", want, got)
}
