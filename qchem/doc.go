// SPDX-License-Identifier: MIT

// Package qchem reduces the qubit count of Pauli Hamiltonians by exploiting
// their Z2 symmetries (qubit tapering), and provides the small quantum
// chemistry helpers the reduction needs.
//
// Workflow:
//
//	gens, _ := qchem.SymmetryGenerators(h)            // Pauli words commuting with every term
//	paulix, _ := qchem.PauliXOps(gens, h.Wires())     // one single-qubit X per generator
//	sector, _ := qchem.OptimalSector(h, gens, 2)      // ±1 eigenvalues of the HF state
//	ht, _ := qchem.Taper(h, gens, paulix, sector)     // len(gens) fewer qubits
//	hf, _ := qchem.TaperHF(gens, paulix, sector, 2, 4)
//
// or, in one call with stage logging:
//
//	res, _ := qchem.Pipeline(h, 2, qchem.WithLogger(logger))
//
// Binary matrices:
//
//	Pauli words are encoded as GF(2) rows [x | z]. The symmetry generators are
//	the kernel of that matrix read back with the halves swapped, which is the
//	symplectic complement of the row space.
//
// Wires:
//
//	The tapered operator acts on wires 0..n-k-1, the non-paulix wires of the
//	untapered order taken in order. The default untapered order sorts integer
//	labels numerically; other labels keep first-appearance order.
//
// Helpers: Excitations, ParticleNumber, SpinZ and the excitation generators
// produce the observables commonly tapered along with the Hamiltonian.
//
// Errors are sentinels (ErrElectrons, ErrNoPauliX, ErrSectorShape, ...) matched
// with errors.Is; the library never logs an error it returns.
package qchem
