// SPDX-License-Identifier: MIT
// Package qchem - sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exported; callers match with errors.Is.
//   - Context (operation, offending value) is attached via qchemErrorf.

package qchem

import (
	"errors"
	"fmt"
)

var (
	// ErrElectrons is returned for an active-electron count outside 1..orbitals.
	ErrElectrons = errors.New("qchem: invalid number of active electrons")

	// ErrOrbitals is returned for a non-positive number of spin orbitals.
	ErrOrbitals = errors.New("qchem: invalid number of spin orbitals")

	// ErrNoPauliX is returned when a generator has no wire carrying a Z that
	// every other generator leaves untouched.
	ErrNoPauliX = errors.New("qchem: no paulix operator for generator")

	// ErrSectorShape is returned when generators, paulix operators and
	// eigenvalues disagree in length, or an eigenvalue is not ±1, or a paulix
	// operator is not a single-wire PauliX.
	ErrSectorShape = errors.New("qchem: malformed tapering sector")

	// ErrBinaryValue is returned for a binary-matrix entry outside {0, 1}.
	ErrBinaryValue = errors.New("qchem: binary matrix entries must be 0 or 1")

	// ErrBinaryShape is returned for ragged or odd-width binary matrices.
	ErrBinaryShape = errors.New("qchem: binary matrix must be rectangular with an even number of columns")

	// ErrExcitations is returned for invalid arguments to Excitations.
	ErrExcitations = errors.New("qchem: invalid excitation arguments")

	// ErrWireOrder is returned when an explicit wire order misses a wire of an operand.
	ErrWireOrder = errors.New("qchem: wire order does not cover the operator wires")

	// ErrNotGenerator is returned when a symmetry generator is not a single Pauli
	// word, or carries X/Y where only Z and identities are allowed.
	ErrNotGenerator = errors.New("qchem: generator is not a single Z/I Pauli word")
)

func qchemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
