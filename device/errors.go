// SPDX-License-Identifier: MIT
// Package device - sentinel errors.

package device

import (
	"errors"
	"fmt"
)

var (
	// ErrWireOutOfRange is returned when an operation touches a wire the device does not own.
	ErrWireOutOfRange = errors.New("device: operation acts outside the device wires")

	// ErrNilOperation is returned for a nil entry in a circuit.
	ErrNilOperation = errors.New("device: nil operation")
)

func deviceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
