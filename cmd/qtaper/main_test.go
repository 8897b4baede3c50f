// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qlath/device"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/qchem"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestParseWord(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"I", "I", true},
		{"", "I", true},
		{"Y0 X1 X2 Y3", "Y(0) X(1) X(2) Y(3)", true},
		{"Z(a) X(b)", "Z(a) X(b)", true},
		{"I0 Z1", "Z(1)", true},
		{"Q0", "", false},
		{"Z", "", false},
		{"Z0 X0", "", false},
	}
	for _, tc := range cases {
		w, err := parseWord(tc.in)
		if !tc.ok {
			require.ErrorIs(t, err, errBadWord, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, w.Key(), tc.in)
	}
}

func TestTaperCommand(t *testing.T) {
	stdout, _, err := run(t, "taper", "testdata/h2.yaml")
	require.NoError(t, err)

	var ds Dataset
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &ds))
	require.Equal(t, "H2", ds.Molecule)
	require.Equal(t, []int{1, -1, -1}, ds.OptimalSector)
	require.Equal(t, []string{"1", "2", "3"}, ds.PauliXOps)
	require.Equal(t, []int{1}, ds.TaperedHFState)

	syms := make([]string, len(ds.Symmetries))
	for i, s := range ds.Symmetries {
		require.Len(t, s, 1)
		syms[i] = s[0].Word
	}
	require.Equal(t, []string{"Z0 Z1", "Z0 Z2", "Z0 Z3"}, syms)

	want := map[string]float64{"I": -0.27643767542467135, "Z0": 0.8409113595656076, "X0": 0.17900057606140635}
	require.Len(t, ds.TaperedHamiltonian, len(want))
	for _, term := range ds.TaperedHamiltonian {
		require.InDelta(t, want[term.Word], term.Coeff, 1e-9, term.Word)
		require.InDelta(t, 0, term.Imag, 1e-12)
	}

	require.Len(t, ds.NumOp, 5)
	require.Len(t, ds.SpinZOp, 4)
	require.Len(t, ds.TaperedNumOp, 1)
	require.Equal(t, "I", ds.TaperedNumOp[0].Word)
	require.InDelta(t, 2, ds.TaperedNumOp[0].Coeff, 1e-9)
	require.Empty(t, ds.TaperedSpinZOp)
}

func TestTaperCommand_OutputAndVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	stdout, stderr, err := run(t, "taper", "testdata/h2.yaml", "-o", path, "--verbose")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "symmetry generators")
	require.Contains(t, stderr, "tapering done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var ds Dataset
	require.NoError(t, yaml.Unmarshal(data, &ds))
	require.Equal(t, []int{1}, ds.TaperedHFState)
}

func TestTaperCommand_DryRun(t *testing.T) {
	stdout, stderr, err := run(t, "taper", "testdata/h2.yaml", "--dry-run", "--verbose")
	require.NoError(t, err)
	require.Equal(t, "qubits\t1\ngates\t1\nPauliX\t1\n", stdout)
	require.Contains(t, stderr, "dry run done")
}

func TestDryRun(t *testing.T) {
	h, err := opmath.NewHamiltonian([]complex128{0.5, 1}, []operator.Operator{operator.PauliZ(0), operator.PauliZ(2)})
	require.NoError(t, err)
	res := &qchem.Result{Hamiltonian: h, HFState: []int{1, 0, 1}}

	var out bytes.Buffer
	require.NoError(t, dryRun(context.Background(), res, &out, zerolog.Nop()))
	require.Equal(t, "qubits\t3\ngates\t2\nPauliX\t2\n", out.String())

	// the Hamiltonian reaches past the prepared wires
	res.HFState = []int{1, 1}
	err = dryRun(context.Background(), res, &out, zerolog.Nop())
	require.ErrorIs(t, err, device.ErrWireOutOfRange)

	res.HFState = nil
	err = dryRun(context.Background(), res, &out, zerolog.Nop())
	require.ErrorIs(t, err, operator.ErrInvalidBasisState)
}

func TestTaperCommand_StringWires(t *testing.T) {
	path := writeFile(t, `electrons: 1
hamiltonian:
  - {coeff: 0.5, word: "Z(a)"}
  - {coeff: 0.25, word: "Z(b)"}
  - {coeff: 0.1, word: "X(a) X(b)"}
`)
	stdout, _, err := run(t, "taper", path)
	require.NoError(t, err)
	var ds Dataset
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &ds))
	require.Equal(t, []string{"b"}, ds.PauliXOps)
	require.Equal(t, []int{-1}, ds.OptimalSector)
	require.Nil(t, ds.NumOp, "number observables need integer wires 0..n-1")
}

func TestTaperCommand_Errors(t *testing.T) {
	_, _, err := run(t, "taper", "testdata/missing.yaml")
	require.Error(t, err)

	_, _, err = run(t, "taper", writeFile(t, "electrons: 2\nhamiltonian: []\n"))
	require.ErrorIs(t, err, errNoTerms)

	_, _, err = run(t, "taper", writeFile(t, "electrons: [\n"))
	require.ErrorIs(t, err, errBadDataFile)

	_, _, err = run(t, "taper", writeFile(t, "electrons: 2\nhamiltonian:\n  - {coeff: 1, word: \"Q0\"}\n"))
	require.ErrorIs(t, err, errBadWord)

	_, _, err = run(t, "taper", writeFile(t, "electrons: 0\nhamiltonian:\n  - {coeff: 1, word: \"Z0\"}\n"))
	require.ErrorIs(t, err, qchem.ErrElectrons)

	_, _, err = run(t, "taper")
	require.Error(t, err)
}

func TestSymmetriesCommand(t *testing.T) {
	stdout, _, err := run(t, "symmetries", "testdata/h2.yaml")
	require.NoError(t, err)
	require.Equal(t, "Z0 Z1\tX1\nZ0 Z2\tX2\nZ0 Z3\tX3\nsector\t[1 -1 -1]\n", stdout)
}
