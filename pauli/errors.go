// SPDX-License-Identifier: MIT
// Package pauli - sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exported; callers match with errors.Is.
//   - Context is attached at the detection site via pauliErrorf.

package pauli

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPauli is returned when an operator has no Pauli-sentence form
	// (non-Pauli gates, exponentials, opaque operators).
	ErrNotPauli = errors.New("pauli: operator is not a Pauli observable")

	// ErrNotWord is returned when a single Pauli word was expected but the
	// operator expands into several terms.
	ErrNotWord = errors.New("pauli: operator is not a single Pauli word")

	// ErrBadLetter is returned for a letter outside {I, X, Y, Z}.
	ErrBadLetter = errors.New("pauli: invalid Pauli letter")
)

func pauliErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
