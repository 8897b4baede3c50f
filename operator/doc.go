// Package operator defines the Operator capability contract and the
// elementary leaf operators of the algebra.
//
// What:
//
//   - Operator: matrix/sparse lowering, parameters, wires, adjoint, simplify,
//     hermiticity, term decomposition and a structural hash.
//   - Kind: tagged variant over every family. Behaviour is chosen by switching on
//     Kind; names are for display only.
//   - Elementary: one type for every leaf gate/observable, with closed-form
//     matrices, simplification rules and adjoints.
//   - BasisStatePreparation with its decomposition into PauliX gates.
//
// Errors are sentinels (ErrUnsupported, ErrMatrixUndefined, ...) wrapped with a
// call-site tag; match them with errors.Is.
//
// Composite nodes (Sum, SProd, Prod, Exp, Hamiltonian) live in package opmath.
package operator
