// SPDX-License-Identifier: MIT
// Package qchem - tapering sectors.
//
// A sector fixes the eigenvalue (±1) of every symmetry generator. The
// Hartree-Fock sector is the one containing the ground state of most
// molecular Hamiltonians, and OptimalSector computes it from the electron count.

package qchem

import (
	"strconv"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
)

const (
	opNewSector     = "NewSector"
	opOptimalSector = "OptimalSector"
)

// Sector bundles generators, their paulix partners and the chosen eigenvalues.
type Sector struct {
	Generators []*opmath.Hamiltonian
	PauliX     []operator.Operator
	Values     []int
}

// NewSector validates and bundles a tapering sector.
//
// Errors (all ErrSectorShape):
//   - the three slices differ in length;
//   - a value is not +1 or -1;
//   - a paulix operator is not a PauliX on one wire.
func NewSector(generators []*opmath.Hamiltonian, paulixOps []operator.Operator, values []int) (*Sector, error) {
	if len(generators) != len(paulixOps) || len(generators) != len(values) {
		return nil, qchemErrorf(opNewSector, ErrSectorShape)
	}
	for i, v := range values {
		if v != 1 && v != -1 {
			return nil, qchemErrorf(opNewSector+" value "+strconv.Itoa(v), ErrSectorShape)
		}
		if paulixOps[i] == nil || paulixOps[i].Kind() != operator.KindPauliX || paulixOps[i].Wires().Len() != 1 {
			return nil, qchemErrorf(opNewSector+" paulix "+strconv.Itoa(i), ErrSectorShape)
		}
	}

	return &Sector{Generators: generators, PauliX: paulixOps, Values: values}, nil
}

// Len returns the number of generators.
func (s *Sector) Len() int { return len(s.Values) }

// OptimalSector returns the eigenvalue of every generator on the Hartree-Fock
// state of h with the given number of active electrons: occupied spin orbitals
// are the first electrons wires of h, and a generator evaluates to -1 when an
// odd number of them carry a Z of the generator.
//
// Errors: ErrElectrons when electrons < 1 or electrons > len(h.Wires());
// ErrNotGenerator when a generator is not a single Z/I Pauli word.
func OptimalSector(h *opmath.Hamiltonian, generators []*opmath.Hamiltonian, electrons int) ([]int, error) {
	if electrons < 1 {
		return nil, qchemErrorf(opOptimalSector+": number of active electrons must be greater than zero", ErrElectrons)
	}
	order := h.Wires()
	if electrons > order.Len() {
		return nil, qchemErrorf(opOptimalSector+": number of active orbitals cannot be smaller than number of active electrons", ErrElectrons)
	}

	sector, err := hfSector(generators, order, electrons)
	if err != nil {
		return nil, qchemErrorf(opOptimalSector, err)
	}

	return sector, nil
}
