// SPDX-License-Identifier: MIT
// Package operator - computational basis state preparation.

package operator

import (
	"github.com/katalvlaran/qlath/wires"
)

const opBasis = "BasisStatePreparation"

// BasisStatePreparation prepares |bits> on w from the all-zero state.
//
// Errors (ErrInvalidBasisState):
//   - bits is empty (a basis state must be a non-empty bit vector);
//   - len(bits) differs from the number of wires;
//   - an entry is neither 0 nor 1.
func BasisStatePreparation(bits []int, w ...any) (*Elementary, error) {
	ws := wires.New(w...)
	if len(bits) == 0 {
		return nil, operatorErrorf(opBasis+": shape", ErrInvalidBasisState)
	}
	if len(bits) != ws.Len() {
		return nil, operatorErrorf(opBasis+": length", ErrInvalidBasisState)
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return nil, operatorErrorf(opBasis+": values", ErrInvalidBasisState)
		}
	}
	e, err := New(KindBasisStatePreparation, ws)
	if err != nil {
		return nil, err
	}
	e.bits = append([]int(nil), bits...)

	return e, nil
}

// Decomposition rewrites a basis state preparation as PauliX on every wire whose
// bit is 1. Other kinds report ErrUnsupported.
func (e *Elementary) Decomposition() ([]Operator, error) {
	if e.kind != KindBasisStatePreparation {
		return nil, operatorErrorf(e.Name()+".Decomposition", ErrUnsupported)
	}
	ops := make([]Operator, 0, len(e.bits))
	for i, b := range e.bits {
		if b == 1 {
			ops = append(ops, must(KindPauliX, wires.Of(e.wires.At(i))))
		}
	}

	return ops, nil
}
