// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// Every message is prefixed with "operator: ..."; call sites wrap the sentinels
// with operatorErrorf(tag, err) and callers match them with errors.Is.

package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported marks a request the operator family cannot honour at all
	// (a commutation query on an excluded family, a sparse exponential with a
	// wire-order remap). It is never retried; the caller must restructure the call.
	ErrUnsupported = errors.New("operator: unsupported operation")

	// ErrMatrixUndefined indicates that the operator has no matrix representation
	// (state preparations, templates, continuous-variable ops, channels).
	ErrMatrixUndefined = errors.New("operator: matrix undefined")

	// ErrTermsUndefined indicates that the operator has no linear-combination form.
	ErrTermsUndefined = errors.New("operator: terms undefined")

	// ErrEigvalsUndefined indicates that eigenvalues cannot be derived
	// (no matrix, or a non-diagonal non-Hermitian matrix).
	ErrEigvalsUndefined = errors.New("operator: eigenvalues undefined")

	// ErrInvalidBasisState signals a malformed basis state: empty, wrong length,
	// or entries outside {0, 1}.
	ErrInvalidBasisState = errors.New("operator: invalid basis state")

	// ErrParamCount signals a parameter vector of the wrong length.
	ErrParamCount = errors.New("operator: wrong number of parameters")

	// ErrWireCount signals a wire set of the wrong size for the operator kind
	// (repeated labels collapse and are reported through this error too).
	ErrWireCount = errors.New("operator: wrong number of wires")

	// ErrPauliWord signals a Pauli word with letters outside "IXYZ".
	ErrPauliWord = errors.New("operator: invalid pauli word")
)

// operatorErrorf wraps err with a tag, preserving the sentinel for errors.Is.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
