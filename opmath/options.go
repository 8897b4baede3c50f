// SPDX-License-Identifier: MIT

// Package opmath: numeric policy defaults.
package opmath

// DefaultCutoff is the coefficient magnitude at or below which simplification drops a term.
const DefaultCutoff = 1e-12
