// SPDX-License-Identifier: MIT
// Package operator - the Kind tagged variant.
//
// Behaviour that depends on "what operator is this" is selected by switching on
// Kind, never by comparing names. The static facts of every kind (wire arity,
// parameter count, control wires, angle period, hermiticity) live in one table.

package operator

import "math"

// Kind enumerates every operator family known to the algebra.
type Kind int

const (
	KindIdentity Kind = iota
	KindPauliX
	KindPauliY
	KindPauliZ
	KindHadamard
	KindS
	KindT
	KindSX
	KindRX
	KindRY
	KindRZ
	KindPhaseShift
	KindU1
	KindU2
	KindU3
	KindRot
	KindCNOT
	KindCZ
	KindCY
	KindSWAP
	KindISWAP
	KindSISWAP
	KindCSWAP
	KindToffoli
	KindControlledPhaseShift
	KindCRX
	KindCRY
	KindCRZ
	KindCRot
	KindMultiRZ
	KindIsingXX
	KindIsingYY
	KindIsingZZ
	KindMultiControlledX
	KindSingleExcitation
	KindDoubleExcitation
	KindPauliRot
	KindQubitDensityMatrix
	KindBasisStatePreparation
	KindTemplate       // multi-qubit template that never commutes with overlapping ops
	KindOpaqueUnitary  // templated unitary without a commutation rule
	KindCV             // continuous-variable operation
	KindChannel        // noise channel
	KindSum            // opmath.Sum
	KindSProd          // opmath.SProd
	KindProd           // opmath.Prod
	KindExp            // opmath.Exp
	KindHamiltonian    // opmath.Hamiltonian
	kindCount
)

// Wire arity markers.
const (
	anyWires   = -1 // at least one wire
	atLeastTwo = -2 // at least two wires
	allButLast = -1 // control marker: every wire except the last is a control
	fourPi     = 4 * math.Pi
	twoPi      = 2 * math.Pi
	noPeriod   = 0.0
)

// kindInfo is the static description of a kind.
type kindInfo struct {
	name        string
	wires       int     // exact wire count, or anyWires / atLeastTwo
	params      int     // number of real parameters
	ctrl        int     // leading control wires, or allButLast
	period      float64 // parameter period used by Simplify; noPeriod if not periodic
	hermitian   bool
	selfAdjoint bool
	flagAdjoint bool // adjoint is expressed by a flag instead of negated parameters
}

var kindTable = [kindCount]kindInfo{
	KindIdentity:              {name: "Identity", wires: anyWires, hermitian: true, selfAdjoint: true},
	KindPauliX:                {name: "PauliX", wires: 1, hermitian: true, selfAdjoint: true},
	KindPauliY:                {name: "PauliY", wires: 1, hermitian: true, selfAdjoint: true},
	KindPauliZ:                {name: "PauliZ", wires: 1, hermitian: true, selfAdjoint: true},
	KindHadamard:              {name: "Hadamard", wires: 1, hermitian: true, selfAdjoint: true},
	KindS:                     {name: "S", wires: 1, flagAdjoint: true},
	KindT:                     {name: "T", wires: 1, flagAdjoint: true},
	KindSX:                    {name: "SX", wires: 1, flagAdjoint: true},
	KindRX:                    {name: "RX", wires: 1, params: 1, period: fourPi},
	KindRY:                    {name: "RY", wires: 1, params: 1, period: fourPi},
	KindRZ:                    {name: "RZ", wires: 1, params: 1, period: fourPi},
	KindPhaseShift:            {name: "PhaseShift", wires: 1, params: 1, period: twoPi},
	KindU1:                    {name: "U1", wires: 1, params: 1, period: twoPi},
	KindU2:                    {name: "U2", wires: 1, params: 2, period: twoPi},
	KindU3:                    {name: "U3", wires: 1, params: 3, period: fourPi},
	KindRot:                   {name: "Rot", wires: 1, params: 3, period: fourPi},
	KindCNOT:                  {name: "CNOT", wires: 2, ctrl: 1, hermitian: true, selfAdjoint: true},
	KindCZ:                    {name: "CZ", wires: 2, ctrl: 1, hermitian: true, selfAdjoint: true},
	KindCY:                    {name: "CY", wires: 2, ctrl: 1, hermitian: true, selfAdjoint: true},
	KindSWAP:                  {name: "SWAP", wires: 2, hermitian: true, selfAdjoint: true},
	KindISWAP:                 {name: "ISWAP", wires: 2, flagAdjoint: true},
	KindSISWAP:                {name: "SISWAP", wires: 2, flagAdjoint: true},
	KindCSWAP:                 {name: "CSWAP", wires: 3, ctrl: 1, hermitian: true, selfAdjoint: true},
	KindToffoli:               {name: "Toffoli", wires: 3, ctrl: 2, hermitian: true, selfAdjoint: true},
	KindControlledPhaseShift:  {name: "ControlledPhaseShift", wires: 2, params: 1, ctrl: 1, period: twoPi},
	KindCRX:                   {name: "CRX", wires: 2, params: 1, ctrl: 1, period: fourPi},
	KindCRY:                   {name: "CRY", wires: 2, params: 1, ctrl: 1, period: fourPi},
	KindCRZ:                   {name: "CRZ", wires: 2, params: 1, ctrl: 1, period: fourPi},
	KindCRot:                  {name: "CRot", wires: 2, params: 3, ctrl: 1, period: fourPi},
	KindMultiRZ:               {name: "MultiRZ", wires: anyWires, params: 1, period: fourPi},
	KindIsingXX:               {name: "IsingXX", wires: 2, params: 1, period: fourPi},
	KindIsingYY:               {name: "IsingYY", wires: 2, params: 1, period: fourPi},
	KindIsingZZ:               {name: "IsingZZ", wires: 2, params: 1, period: fourPi},
	KindMultiControlledX:      {name: "MultiControlledX", wires: atLeastTwo, ctrl: allButLast, hermitian: true, selfAdjoint: true},
	KindSingleExcitation:      {name: "SingleExcitation", wires: 2, params: 1, period: fourPi},
	KindDoubleExcitation:      {name: "DoubleExcitation", wires: 4, params: 1, period: fourPi},
	KindPauliRot:              {name: "PauliRot", wires: anyWires, params: 1, period: fourPi},
	KindQubitDensityMatrix:    {name: "QubitDensityMatrix", wires: anyWires},
	KindBasisStatePreparation: {name: "BasisStatePreparation", wires: anyWires},
	KindTemplate:              {name: "Template", wires: anyWires},
	KindOpaqueUnitary:         {name: "OpaqueUnitary", wires: anyWires},
	KindCV:                    {name: "CV", wires: anyWires},
	KindChannel:               {name: "Channel", wires: anyWires},
	KindSum:                   {name: "Sum"},
	KindSProd:                 {name: "SProd"},
	KindProd:                  {name: "Prod"},
	KindExp:                   {name: "Exp"},
	KindHamiltonian:           {name: "Hamiltonian"},
}

// String returns the canonical family name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(?)"
	}

	return kindTable[k].name
}

// IsComposite reports whether the kind is a symbolic composite node.
func (k Kind) IsComposite() bool {
	switch k {
	case KindSum, KindSProd, KindProd, KindExp, KindHamiltonian:
		return true
	default:
		return false
	}
}

// IsPauli reports whether k is one of the single-qubit Pauli observables or Identity.
func (k Kind) IsPauli() bool {
	switch k {
	case KindIdentity, KindPauliX, KindPauliY, KindPauliZ:
		return true
	default:
		return false
	}
}

// Params returns the number of real parameters of the kind.
func (k Kind) Params() int { return kindTable[k].params }
