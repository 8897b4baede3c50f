// SPDX-License-Identifier: MIT

// Package commute decides whether two operators commute.
//
// IsCommuting answers from structure first: disjoint wires, kinds that never
// commute, angles that reduce to a global phase, and a static table of
// commuting families (Z-diagonal gates, X rotations, Y rotations, swaps).
// Controlled gates are split into control wires, which behave like
// Z-diagonal projectors, and a target action looked up in the table. General
// rotations (U2, U3, Rot, CRot) and composite operators (Sum, SProd, Prod,
// Exp, Hamiltonian) are decided by MatricesCommute, which compares a·b with
// b·a on the union of their wires.
//
// The oracle refuses continuous-variable operations, channels, PauliRot,
// QubitDensityMatrix and opaque unitaries with ErrUnsupported.
package commute
