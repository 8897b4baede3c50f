// SPDX-License-Identifier: MIT
// Package commute - IsCommuting and the exact matrix check.

package commute

import (
	"math"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opIsCommuting     = "IsCommuting"
	opMatricesCommute = "MatricesCommute"
	twoPi             = 2 * math.Pi
)

// IsCommuting reports whether op1·op2 = op2·op1.
//
// Implementation:
//   - Stage 1: refuse unsupported operands (ErrUnsupported).
//   - Stage 2: disjoint wires commute.
//   - Stage 3: simplify both; composites go to the exact matrix check.
//   - Stage 4: kinds that never commute on shared wires return false; Identity
//     commutes with everything.
//   - Stage 5: two CRot gates get a control/target overlap analysis.
//   - Stage 6: an uncontrolled parametrised gate whose angles are all 0 mod 2π
//     (U2 excluded) acts as a global phase and commutes. A controlled gate with
//     such angles is a Z on its controls, not a phase, and goes to the exact check.
//   - Stage 7: two general rotations (U2, U3, Rot, CRot) use the overlap rules of
//     twoRotations; one general rotation against anything else is exact.
//   - Stage 8: multi-wire target actions (SWAP family, Ising, MultiRZ, CSWAP)
//     are decided exactly, since the table only describes shared single wires.
//   - Stage 9: the table decides on the target/target and target/control overlaps.
//
// Errors: ErrUnsupported; matrix errors from the exact check.
func IsCommuting(op1, op2 operator.Operator) (bool, error) {
	for _, op := range []operator.Operator{op1, op2} {
		if unsupported(op) {
			return false, commuteErrorf(opIsCommuting+" "+op.Name(), ErrUnsupported)
		}
	}
	if !wires.Intersects(op1.Wires(), op2.Wires()) {
		return true, nil
	}

	a, b := op1.Simplify(), op2.Simplify()
	ea, okA := a.(*operator.Elementary)
	eb, okB := b.(*operator.Elementary)
	if !okA || !okB {
		return MatricesCommute(a, b)
	}
	if neverCommutes(ea) || neverCommutes(eb) {
		return false, nil
	}
	if ea.Kind() == operator.KindIdentity || eb.Kind() == operator.KindIdentity {
		return true, nil
	}
	if ea.Kind() == operator.KindCRot && eb.Kind() == operator.KindCRot {
		return twoControlledRotations(ea, eb)
	}
	if isPhaseOnly(ea) || isPhaseOnly(eb) {
		return true, nil
	}
	if controlledZ(ea) || controlledZ(eb) {
		return MatricesCommute(ea, eb)
	}
	ga, gb := generalRotation(ea.Kind()), generalRotation(eb.Kind())
	switch {
	case ga && gb:
		return twoRotations(ea, eb)
	case ga || gb:
		return MatricesCommute(ea, eb)
	}
	if ea.TargetWires().Len() > 1 || eb.TargetWires().Len() > 1 {
		return MatricesCommute(ea, eb)
	}

	return tableCommutes(ea, eb)
}

// MatricesCommute compares a·b with b·a on the union of both wire sets within
// matrix.DefaultRTol / matrix.DefaultATol.
func MatricesCommute(a, b operator.Operator) (bool, error) {
	order := wires.Union(a.Wires(), b.Wires())
	ma, err := a.Matrix(order)
	if err != nil {
		return false, commuteErrorf(opMatricesCommute, err)
	}
	mb, err := b.Matrix(order)
	if err != nil {
		return false, commuteErrorf(opMatricesCommute, err)
	}
	ab, err := matrix.Mul(ma, mb)
	if err != nil {
		return false, commuteErrorf(opMatricesCommute, err)
	}
	ba, err := matrix.Mul(mb, ma)
	if err != nil {
		return false, commuteErrorf(opMatricesCommute, err)
	}

	return matrix.AllClose(ab, ba, matrix.DefaultRTol, matrix.DefaultATol), nil
}

func unsupported(op operator.Operator) bool {
	switch op.Kind() {
	case operator.KindPauliRot, operator.KindQubitDensityMatrix, operator.KindOpaqueUnitary,
		operator.KindCV, operator.KindChannel:
		return true
	}

	return false
}

func neverCommutes(e *operator.Elementary) bool {
	switch e.Kind() {
	case operator.KindBasisStatePreparation, operator.KindTemplate,
		operator.KindSingleExcitation, operator.KindDoubleExcitation:
		return true
	}

	return false
}

func generalRotation(k operator.Kind) bool {
	switch k {
	case operator.KindU2, operator.KindU3, operator.KindRot, operator.KindCRot:
		return true
	}

	return false
}

// isPhaseOnly reports an uncontrolled parametrised gate with every angle ≡ 0
// (mod 2π). U2 is excluded: U2(0, 0) is not a phase.
func isPhaseOnly(e *operator.Elementary) bool {
	return e.Kind() != operator.KindU2 && e.ControlWires().IsEmpty() && zeroAngles(e)
}

// controlledZ reports a controlled gate with every angle ≡ 0 (mod 2π): its
// target block is ±I, so the gate acts as a Z-type operator on the controls.
func controlledZ(e *operator.Elementary) bool {
	return !e.ControlWires().IsEmpty() && zeroAngles(e)
}

func zeroAngles(e *operator.Elementary) bool {
	params := e.Params()
	if len(params) == 0 {
		return false
	}
	for _, p := range params {
		if !operator.IsZeroAngle(p, twoPi) {
			return false
		}
	}

	return true
}

// rotOnTarget returns Rot with the CRot angles on the CRot target wire.
func rotOnTarget(e *operator.Elementary) operator.Operator {
	p := e.Params()

	return operator.Rot(p[0], p[1], p[2], e.TargetWires().At(0))
}

// twoControlledRotations handles CRot against CRot.
//
//   - shared controls and shared target: exact check;
//   - shared controls only: the controlled blocks act on different targets;
//   - shared target only: compare the target rotations;
//   - crossed control/target: exact check.
func twoControlledRotations(a, b *operator.Elementary) (bool, error) {
	cc := wires.Intersects(a.ControlWires(), b.ControlWires())
	tt := wires.Intersects(a.TargetWires(), b.TargetWires())
	switch {
	case cc && tt:
		return MatricesCommute(a, b)
	case cc:
		return true, nil
	case tt:
		return MatricesCommute(rotOnTarget(a), rotOnTarget(b))
	default:
		return MatricesCommute(a, b)
	}
}

// twoRotations handles two gates of {U2, U3, Rot, CRot}, at most one of them CRot.
func twoRotations(a, b *operator.Elementary) (bool, error) {
	if a.Kind() == operator.KindCRot {
		return controlledAgainst(a, b)
	}
	if b.Kind() == operator.KindCRot {
		return controlledAgainst(b, a)
	}

	return MatricesCommute(a, b)
}

// controlledAgainst compares CRot c with the single-qubit rotation other: on
// the target only the rotations matter, on the control the full matrices do.
func controlledAgainst(c, other *operator.Elementary) (bool, error) {
	if wires.Intersects(c.TargetWires(), other.Wires()) {
		return MatricesCommute(rotOnTarget(c), other)
	}

	return MatricesCommute(c, other)
}

// tableCommutes applies the three table checks. A kind missing from the table
// falls back to the exact check.
func tableCommutes(a, b *operator.Elementary) (bool, error) {
	ta, tb := a.TargetWires(), b.TargetWires()
	ka, kb := targetEntry(a), targetEntry(b)

	checks := []struct {
		overlap bool
		x, y    entry
	}{
		{wires.Intersects(ta, tb), ka, kb},
		{wires.Intersects(ta, b.ControlWires()), ctrl, ka},
		{wires.Intersects(tb, a.ControlWires()), ctrl, kb},
	}
	for _, c := range checks {
		if !c.overlap {
			continue
		}
		ok, known := lookup(c.x, c.y)
		if !known {
			return MatricesCommute(a, b)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
