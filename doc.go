// Package qlath is a symbolic algebra of quantum operators with qubit tapering
// on top of it.
//
// What is qlath?
//
//	A pure-Go toolkit that brings together:
//		• Wire labels: ordered, duplicate-free sets of arbitrary labels
//		• Matrices: dense and CSR complex kernels, expansion onto wire orders, expm
//		• Operators: named gates and observables with eigenvalues, generators and
//		  diagonalizing gates
//		• Operator arithmetic: Sum, Prod, SProd, Exp and the Hamiltonian container
//		• Pauli algebra: words and sentences with exact products and commutators
//		• Commutation: a fast "do these two operators commute" predicate
//		• Tapering: Z2 symmetries, Clifford rotations, optimal sectors, tapered
//		  Hamiltonians, reference states and excitations
//		• Device: a circuit executor interface plus a counting null backend
//
// Packages:
//
//	wires/      - Wires, the ordered label set every operator acts on
//	matrix/     - Dense and Sparse complex matrices and their kernels
//	operator/   - the Operator interface and the gate/observable catalogue
//	opmath/     - Sum, Prod, SProd, Exp, Hamiltonian and simplification
//	pauli/      - Word, Sentence and operator <-> Pauli conversion
//	commute/    - IsCommuting with the precomputed gate table
//	qchem/      - binary symplectic matrices, symmetries and tapering
//	device/     - Executor, Circuit and the Null backend
//	cmd/qtaper/ - a CLI that tapers Hamiltonians stored as YAML datasets
//
// Quick example:
//
//	h, _ := opmath.NewHamiltonian(coeffs, observables)
//	res, _ := qchem.Pipeline(h, 2)
//	fmt.Println(res.Hamiltonian, res.HFState)
package qlath
