// SPDX-License-Identifier: MIT
package opmath_test

import (
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

// mustMatrix lowers op on order or fails the test.
func mustMatrix(t testing.TB, op operator.Operator, order wires.Wires) *matrix.Dense {
	t.Helper()
	m, err := op.Matrix(order)
	require.NoError(t, err)

	return m
}

func requireClose(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.Truef(t, matrix.AllClose(got, want, 1e-9, 1e-9), "want\n%v\ngot\n%v", want, got)
}

// requireSameUpToPhase checks a = e^{iα}·b for some α.
func requireSameUpToPhase(t testing.TB, a, b *matrix.Dense) {
	t.Helper()
	bAdj, err := matrix.Adjoint(b)
	require.NoError(t, err)
	p, err := matrix.Mul(a, bAdj)
	require.NoError(t, err)
	phase, _ := p.At(0, 0)
	id, _ := matrix.NewIdentity(p.Rows())
	scaled, _ := matrix.Scale(id, phase)
	requireClose(t, scaled, p)
}
