// Package opmath implements the composite operator algebra: symbolic trees
// built from operator.Operator leaves that lower deterministically to matrices.
//
// What:
//
//   - Sum: ordered summands with unit weights; Simplify flattens nested sums,
//     groups like terms under their structural hash and drops negligible ones.
//   - SProd: scalar · operator. Prod: ordered product (tensor products).
//   - Exp: exp(coeff · base) with dense and sparse exponentials and a generator.
//   - Hamiltonian: Σ c_i · O_i, the currency of the tapering engine.
//   - GeneratorOf: Hermitian generators of parametrised gates.
//
// Simplification contract:
//
//   - coefficient exactly 1 -> bare operator; |c| > cutoff -> c · operator;
//     otherwise the term is dropped (DefaultCutoff = 1e-12);
//   - nothing left -> 0 · Identity over the original wires;
//   - a single survivor is returned unwrapped.
//
// Trees are owned by their parent; Simplify, Adjoint and friends return new
// trees. SetData is the only in-place mutation. Nothing here is safe for
// concurrent mutation; independent trees may be used from independent goroutines.
package opmath
