// SPDX-License-Identifier: MIT
// Package opmath: sentinel error set. Messages are prefixed "opmath: ...";
// call sites wrap them with opmathErrorf so errors.Is keeps working.

package opmath

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySum indicates a Sum built from zero operands.
	ErrEmptySum = errors.New("opmath: sum needs at least one operand")

	// ErrEmptyProd indicates a Prod built from zero factors.
	ErrEmptyProd = errors.New("opmath: product needs at least one factor")

	// ErrLengthMismatch indicates coefficient and operator lists of different lengths.
	ErrLengthMismatch = errors.New("opmath: coefficients and operators differ in length")

	// ErrNoWires indicates a matrix request on an operator without wires and
	// without an explicit wire order (an empty Hamiltonian).
	ErrNoWires = errors.New("opmath: operator acts on no wires")

	// ErrWireOrder indicates an explicit wire order that misses a term's wire.
	ErrWireOrder = errors.New("opmath: wire order does not cover the terms")

	// ErrGeneratorUndefined indicates an operator without a known generator.
	ErrGeneratorUndefined = errors.New("opmath: generator undefined")
)

func opmathErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
