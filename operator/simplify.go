// SPDX-License-Identifier: MIT
// Package operator - structural simplification and adjoints of leaves.

package operator

import "math"

// angleEps is the distance to a multiple of the period below which an angle is zero.
const angleEps = 1e-12

// reduceAngle maps x into [0, period) and snaps values within angleEps of 0 or
// period to exactly 0.
func reduceAngle(x, period float64) float64 {
	r := math.Mod(x, period)
	if r < 0 {
		r += period
	}
	if r < angleEps || period-r < angleEps {
		return 0
	}

	return r
}

// IsZeroAngle reports whether x is a multiple of period within angleEps.
func IsZeroAngle(x, period float64) bool { return reduceAngle(x, period) == 0 }

// Simplify folds trivial parameters.
//
// Rules:
//   - periodic parameters are reduced modulo their period (4π for rotations,
//     2π for phase gates);
//   - a rotation whose every parameter reduces to 0 becomes Identity on its wires;
//   - Rot(φ, 0, ω) -> RZ(φ+ω); CRot(φ, 0, ω) -> CRZ(φ+ω);
//   - U3(0, φ, δ) -> PhaseShift(φ+δ). U2 is never the identity.
//
// Flag-adjoint and opaque operators are returned as copies.
func (e *Elementary) Simplify() Operator {
	info := kindTable[e.kind]
	if info.period == noPeriod || e.adjoint {
		return e.clone()
	}
	out := e.clone()
	switch e.kind {
	case KindU3:
		out.params[0] = reduceAngle(e.params[0], fourPi)
		out.params[1] = reduceAngle(e.params[1], twoPi)
		out.params[2] = reduceAngle(e.params[2], twoPi)
		if out.params[0] == 0 {
			ps := must(KindPhaseShift, e.wires, out.params[1]+out.params[2])

			return ps.Simplify()
		}

		return out
	case KindU2:
		out.params[0] = reduceAngle(e.params[0], twoPi)
		out.params[1] = reduceAngle(e.params[1], twoPi)

		return out
	}
	allZero := true
	for i, p := range e.params {
		out.params[i] = reduceAngle(p, info.period)
		allZero = allZero && out.params[i] == 0
	}
	if allZero {
		return must(KindIdentity, e.wires)
	}
	switch e.kind {
	case KindRot:
		if out.params[1] == 0 {
			return must(KindRZ, e.wires, out.params[0]+out.params[2]).Simplify()
		}
	case KindCRot:
		if out.params[1] == 0 {
			return must(KindCRZ, e.wires, out.params[0]+out.params[2]).Simplify()
		}
	}

	return out
}

// Adjoint returns the inverse operator.
//
// Rules:
//   - self-adjoint kinds return a copy;
//   - single-angle rotations negate the angle;
//   - Rot(a,b,c)† = Rot(-c,-b,-a) (same for CRot); U3(θ,φ,δ)† = U3(-θ,-δ,-φ);
//     U2(φ,δ)† = U2(-δ-π, -φ+π);
//   - every other kind toggles the adjoint flag.
func (e *Elementary) Adjoint() Operator {
	info := kindTable[e.kind]
	out := e.clone()
	if info.selfAdjoint {
		return out
	}
	p := e.params
	switch e.kind {
	case KindRot, KindCRot:
		out.params = []float64{-p[2], -p[1], -p[0]}
	case KindU3:
		out.params = []float64{-p[0], -p[2], -p[1]}
	case KindU2:
		out.params = []float64{-p[1] - math.Pi, -p[0] + math.Pi}
	case KindRX, KindRY, KindRZ, KindPhaseShift, KindU1, KindControlledPhaseShift,
		KindCRX, KindCRY, KindCRZ, KindMultiRZ, KindIsingXX, KindIsingYY, KindIsingZZ,
		KindSingleExcitation, KindDoubleExcitation, KindPauliRot:
		out.params[0] = -p[0]
	default:
		out.adjoint = !e.adjoint
	}

	return out
}
