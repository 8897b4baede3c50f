// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
// This file is the single source of truth for tolerances used by comparisons,
// hermiticity checks and the matrix exponential. Kernels never hard-code
// tolerances inline; they read these constants or an explicit argument.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRTol is the relative tolerance of AllClose (|a-b| <= atol + rtol*|b|).
	DefaultRTol = 1e-5

	// DefaultATol is the absolute tolerance of AllClose.
	DefaultATol = 1e-8

	// DefaultEpsilon is the structural tolerance for hermiticity and zero checks.
	DefaultEpsilon = 1e-9

	// DefaultDropTol is the magnitude below which sparse kernels drop entries.
	DefaultDropTol = 1e-15

	// sparseExpmMaxTerms bounds the Taylor series used by SparseExpm after scaling.
	sparseExpmMaxTerms = 40
)
