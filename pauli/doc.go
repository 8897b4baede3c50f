// SPDX-License-Identifier: MIT

// Package pauli provides Pauli words and Pauli sentences: the exact, phase
// tracking algebra behind tapering.
//
// A Word maps wire labels to X, Y or Z (identities implicit). A Sentence is a
// linear combination of distinct words kept in first-insertion order. Products
// track the ±i phases of the Pauli group, and commutation is the symplectic
// inner product of two words.
//
// FromOperator expands operator trees built from Identity and Pauli leaves
// (Prod, SProd, Sum, Hamiltonian); Sentence.Hamiltonian converts back.
package pauli
