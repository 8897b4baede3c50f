// Package matrix provides the numeric substrate of the operator algebra:
// complex matrices and the kernels needed to lower symbolic operators.
//
// What:
//
//   - Dense: row-major complex128 storage with safe At/Set accessors.
//   - Sparse: CSR storage for large Pauli-string and Hamiltonian matrices.
//   - Kernels: Add, Sub, Scale, Mul, Kron, Adjoint, Transpose, Trace, MatVec,
//     Commutator, plus their sparse counterparts.
//   - Spectral: Expm (dense matrix exponential), SparseExpm, EigvalsHermitian.
//   - Embedding: ExpandMatrix/ExpandSparse lift a local operator matrix to an
//     ordered superset of wires (identity padding plus tensor-factor permutation).
//
// Conventions:
//
//   - The first wire of an order is the most significant bit of a basis index,
//     matching the Kron index convention (a ⊗ b puts a on the high bits).
//   - Every kernel allocates its result; inputs are never mutated.
//   - Errors are sentinels from errors.go, wrapped with an operation tag; match
//     them with errors.Is.
//
// Numeric policy:
//
//   - Tolerances live in options.go (DefaultRTol, DefaultATol, DefaultEpsilon).
//   - Expm and EigvalsHermitian embed a complex n×n matrix into a real 2n×2n one
//     and delegate to gonum (mat.Dense.Exp, mat.EigenSym).
package matrix
