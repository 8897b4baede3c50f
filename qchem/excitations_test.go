// SPDX-License-Identifier: MIT
package qchem_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qlath/qchem"
	"github.com/stretchr/testify/require"
)

func TestExcitations(t *testing.T) {
	cases := []struct {
		electrons, orbitals, deltaSz int
		singles, doubles             [][]int
	}{
		{2, 4, 0, [][]int{{0, 2}, {1, 3}}, [][]int{{0, 1, 2, 3}}},
		{2, 6, 0,
			[][]int{{0, 2}, {0, 4}, {1, 3}, {1, 5}},
			[][]int{{0, 1, 2, 3}, {0, 1, 2, 5}, {0, 1, 3, 4}, {0, 1, 4, 5}}},
		{2, 6, 1, [][]int{{1, 2}, {1, 4}}, [][]int{{0, 1, 2, 4}}},
		{3, 6, -1,
			[][]int{{0, 3}, {0, 5}, {2, 3}, {2, 5}},
			[][]int{{0, 1, 3, 5}, {0, 2, 3, 4}, {0, 2, 4, 5}, {1, 2, 3, 5}}},
	}
	for _, tc := range cases {
		s, d, err := qchem.Excitations(tc.electrons, tc.orbitals, tc.deltaSz)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.singles, s); diff != "" {
			t.Errorf("singles(%d, %d, %d) (-want +got):\n%s", tc.electrons, tc.orbitals, tc.deltaSz, diff)
		}
		if diff := cmp.Diff(tc.doubles, d); diff != "" {
			t.Errorf("doubles(%d, %d, %d) (-want +got):\n%s", tc.electrons, tc.orbitals, tc.deltaSz, diff)
		}
	}

	s, d, err := qchem.Excitations(2, 4, 2)
	require.NoError(t, err)
	require.Empty(t, s)
	require.Empty(t, d)

	for _, bad := range [][3]int{{0, 4, 0}, {4, 4, 0}, {2, 4, 3}, {2, 4, -3}} {
		_, _, err := qchem.Excitations(bad[0], bad[1], bad[2])
		require.ErrorIs(t, err, qchem.ErrExcitations, "%v", bad)
	}
}

func TestParticleNumber(t *testing.T) {
	n, err := qchem.ParticleNumber(4)
	require.NoError(t, err)
	requireTerms(t, map[string]complex128{
		"I": 2, "Z(0)": -0.5, "Z(1)": -0.5, "Z(2)": -0.5, "Z(3)": -0.5,
	}, n)
	require.InDelta(t, 2, real(diagonal(t, n, n.Wires(), 0b1100)), 1e-12)
	require.InDelta(t, 3, real(diagonal(t, n, n.Wires(), 0b1101)), 1e-12)

	n3, err := qchem.ParticleNumber(3)
	require.NoError(t, err)
	requireTerms(t, map[string]complex128{"I": 1.5, "Z(0)": -0.5, "Z(1)": -0.5, "Z(2)": -0.5}, n3)

	_, err = qchem.ParticleNumber(0)
	require.ErrorIs(t, err, qchem.ErrOrbitals)
}

func TestSpinZ(t *testing.T) {
	sz, err := qchem.SpinZ(4)
	require.NoError(t, err)
	requireTerms(t, map[string]complex128{"Z(0)": -0.25, "Z(1)": 0.25, "Z(2)": -0.25, "Z(3)": 0.25}, sz)
	require.InDelta(t, 0, real(diagonal(t, sz, sz.Wires(), 0b1100)), 1e-12)
	require.InDelta(t, 1, real(diagonal(t, sz, sz.Wires(), 0b1010)), 1e-12)

	sz3, err := qchem.SpinZ(3)
	require.NoError(t, err)
	requireTerms(t, map[string]complex128{"I": 0.25, "Z(0)": -0.25, "Z(1)": 0.25, "Z(2)": -0.25}, sz3)

	_, err = qchem.SpinZ(-1)
	require.ErrorIs(t, err, qchem.ErrOrbitals)
}

func TestExcitationGenerators(t *testing.T) {
	g, err := qchem.SingleExcitationGenerator(0, 2)
	require.NoError(t, err)
	requireTerms(t, map[string]complex128{"X(0) Y(2)": 0.25, "Y(0) X(2)": -0.25}, g)
	require.True(t, g.IsHermitian())

	d, err := qchem.DoubleExcitationGenerator(0, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 8, d.Len())
	require.True(t, d.IsHermitian())

	_, err = qchem.SingleExcitationGenerator(1, 1)
	require.ErrorIs(t, err, qchem.ErrExcitations)
	_, err = qchem.DoubleExcitationGenerator(0, 1, 1, 3)
	require.ErrorIs(t, err, qchem.ErrExcitations)
}
