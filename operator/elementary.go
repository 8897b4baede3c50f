// SPDX-License-Identifier: MIT
// Package operator - Elementary leaf operators.
//
// Purpose:
//   - One concrete type for every leaf gate/observable; the Kind tag selects behaviour.
//   - Checked construction through New; fixed-arity helpers (PauliX, CNOT, RX, ...)
//     for the common case where the arity is known at compile time.
//
// Ownership:
//   - An Elementary is immutable except for SetData. Every method that returns an
//     operator returns a fresh copy.

package operator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opNew     = "operator.New"
	opSetData = "SetData"
	opMatrix  = "Matrix"
	opEigvals = "Eigvals"

	// hashDigits is the number of significant digits of parameters in Hash.
	hashDigits = 12
)

// Elementary is a leaf gate or observable.
type Elementary struct {
	kind    Kind
	label   string      // family name for templates, CV ops and channels
	wires   wires.Wires // ordered wires; controls first for controlled kinds
	params  []float64   // real parameters in kind order
	adjoint bool        // set for flag-adjoint kinds and opaque families
	bits    []int       // basis state (BasisStatePreparation)
	word    string      // Pauli word (PauliRot)
}

var (
	_ Operator   = (*Elementary)(nil)
	_ Controlled = (*Elementary)(nil)
)

// New builds an elementary operator of the given kind after checking its arity.
//
// Errors:
//   - ErrUnsupported for composite kinds (built in opmath).
//   - ErrWireCount when the wire count does not match the kind.
//   - ErrParamCount when the parameter count does not match the kind.
func New(kind Kind, w wires.Wires, params ...float64) (*Elementary, error) {
	if kind < 0 || kind >= kindCount || kind.IsComposite() {
		return nil, operatorErrorf(opNew, ErrUnsupported)
	}
	info := kindTable[kind]
	switch {
	case info.wires == anyWires && w.Len() < 1,
		info.wires == atLeastTwo && w.Len() < 2,
		info.wires > 0 && w.Len() != info.wires:
		return nil, operatorErrorf(opNew+" "+info.name, ErrWireCount)
	}
	if !opaque(kind) && len(params) != info.params {
		return nil, operatorErrorf(opNew+" "+info.name, ErrParamCount)
	}
	p := make([]float64, len(params))
	copy(p, params)

	return &Elementary{kind: kind, wires: w, params: p}, nil
}

// opaque reports families whose parameters are not described by the kind table.
func opaque(k Kind) bool {
	switch k {
	case KindTemplate, KindOpaqueUnitary, KindCV, KindChannel:
		return true
	default:
		return false
	}
}

// must panics on construction errors; fixed-arity helpers only fail on repeated wires.
func must(kind Kind, w wires.Wires, params ...float64) *Elementary {
	e, err := New(kind, w, params...)
	if err != nil {
		panic(err)
	}

	return e
}

// Identity returns the identity on one or more wires.
func Identity(w ...any) *Elementary { return must(KindIdentity, wires.New(w...)) }

// PauliX returns the Pauli-X observable. The fixed-arity helpers below panic when
// given repeated wires; use New for checked construction.
func PauliX(w any) *Elementary { return must(KindPauliX, wires.New(w)) }

// PauliY returns the Pauli-Y observable.
func PauliY(w any) *Elementary { return must(KindPauliY, wires.New(w)) }

// PauliZ returns the Pauli-Z observable.
func PauliZ(w any) *Elementary { return must(KindPauliZ, wires.New(w)) }

// Hadamard returns the Hadamard gate.
func Hadamard(w any) *Elementary { return must(KindHadamard, wires.New(w)) }

// S returns the phase gate diag(1, i).
func S(w any) *Elementary { return must(KindS, wires.New(w)) }

// T returns the π/8 gate diag(1, e^{iπ/4}).
func T(w any) *Elementary { return must(KindT, wires.New(w)) }

// SX returns the square root of Pauli-X.
func SX(w any) *Elementary { return must(KindSX, wires.New(w)) }

// RX returns exp(-iθX/2).
func RX(theta float64, w any) *Elementary { return must(KindRX, wires.New(w), theta) }

// RY returns exp(-iθY/2).
func RY(theta float64, w any) *Elementary { return must(KindRY, wires.New(w), theta) }

// RZ returns exp(-iθZ/2).
func RZ(theta float64, w any) *Elementary { return must(KindRZ, wires.New(w), theta) }

// PhaseShift returns diag(1, e^{iφ}).
func PhaseShift(phi float64, w any) *Elementary { return must(KindPhaseShift, wires.New(w), phi) }

// U1 is PhaseShift under its legacy name.
func U1(phi float64, w any) *Elementary { return must(KindU1, wires.New(w), phi) }

// U2 returns the two-parameter single-qubit unitary.
func U2(phi, delta float64, w any) *Elementary { return must(KindU2, wires.New(w), phi, delta) }

// U3 returns the three-parameter single-qubit unitary.
func U3(theta, phi, delta float64, w any) *Elementary {
	return must(KindU3, wires.New(w), theta, phi, delta)
}

// Rot returns RZ(ω)·RY(θ)·RZ(φ).
func Rot(phi, theta, omega float64, w any) *Elementary {
	return must(KindRot, wires.New(w), phi, theta, omega)
}

// CNOT returns the controlled-X gate.
func CNOT(control, target any) *Elementary { return must(KindCNOT, wires.New(control, target)) }

// CZ returns the controlled-Z gate.
func CZ(control, target any) *Elementary { return must(KindCZ, wires.New(control, target)) }

// CY returns the controlled-Y gate.
func CY(control, target any) *Elementary { return must(KindCY, wires.New(control, target)) }

// SWAP exchanges two wires.
func SWAP(a, b any) *Elementary { return must(KindSWAP, wires.New(a, b)) }

// ISWAP exchanges two wires with an i phase on the swapped amplitudes.
func ISWAP(a, b any) *Elementary { return must(KindISWAP, wires.New(a, b)) }

// SISWAP is the square root of ISWAP.
func SISWAP(a, b any) *Elementary { return must(KindSISWAP, wires.New(a, b)) }

// CSWAP returns the controlled SWAP (Fredkin) gate.
func CSWAP(control, a, b any) *Elementary { return must(KindCSWAP, wires.New(control, a, b)) }

// Toffoli returns the doubly controlled X gate.
func Toffoli(c1, c2, target any) *Elementary { return must(KindToffoli, wires.New(c1, c2, target)) }

// ControlledPhaseShift returns diag(1, 1, 1, e^{iφ}).
func ControlledPhaseShift(phi float64, control, target any) *Elementary {
	return must(KindControlledPhaseShift, wires.New(control, target), phi)
}

// CRX returns the controlled RX rotation.
func CRX(theta float64, control, target any) *Elementary {
	return must(KindCRX, wires.New(control, target), theta)
}

// CRY returns the controlled RY rotation.
func CRY(theta float64, control, target any) *Elementary {
	return must(KindCRY, wires.New(control, target), theta)
}

// CRZ returns the controlled RZ rotation.
func CRZ(theta float64, control, target any) *Elementary {
	return must(KindCRZ, wires.New(control, target), theta)
}

// CRot returns the controlled Rot gate.
func CRot(phi, theta, omega float64, control, target any) *Elementary {
	return must(KindCRot, wires.New(control, target), phi, theta, omega)
}

// MultiRZ returns exp(-iθ Z⊗...⊗Z/2).
func MultiRZ(theta float64, w ...any) *Elementary { return must(KindMultiRZ, wires.New(w...), theta) }

// IsingXX returns exp(-iφ X⊗X/2).
func IsingXX(phi float64, a, b any) *Elementary { return must(KindIsingXX, wires.New(a, b), phi) }

// IsingYY returns exp(-iφ Y⊗Y/2).
func IsingYY(phi float64, a, b any) *Elementary { return must(KindIsingYY, wires.New(a, b), phi) }

// IsingZZ returns exp(-iφ Z⊗Z/2).
func IsingZZ(phi float64, a, b any) *Elementary { return must(KindIsingZZ, wires.New(a, b), phi) }

// MultiControlledX flips the last wire when every other wire is |1>.
func MultiControlledX(w ...any) *Elementary { return must(KindMultiControlledX, wires.New(w...)) }

// SingleExcitation returns the Givens rotation on |01>, |10>.
func SingleExcitation(phi float64, a, b any) *Elementary {
	return must(KindSingleExcitation, wires.New(a, b), phi)
}

// DoubleExcitation returns the Givens rotation on |0011>, |1100>.
func DoubleExcitation(phi float64, a, b, c, d any) *Elementary {
	return must(KindDoubleExcitation, wires.New(a, b, c, d), phi)
}

// PauliRot returns exp(-iθP/2) for the Pauli word P over w (one letter per wire).
// Errors: ErrWireCount on a length mismatch, ErrPauliWord on letters outside IXYZ.
func PauliRot(theta float64, word string, w ...any) (*Elementary, error) {
	ws := wires.New(w...)
	if len(word) != ws.Len() {
		return nil, operatorErrorf("PauliRot", ErrWireCount)
	}
	if strings.Trim(word, "IXYZ") != "" {
		return nil, operatorErrorf("PauliRot", ErrPauliWord)
	}
	e, err := New(KindPauliRot, ws, theta)
	if err != nil {
		return nil, err
	}
	e.word = word

	return e, nil
}

// QubitDensityMatrix marks the injection of a density matrix on w.
func QubitDensityMatrix(w ...any) *Elementary { return must(KindQubitDensityMatrix, wires.New(w...)) }

// NewTemplate returns an opaque multi-qubit template (embeddings, layers, state
// preparations, utility markers such as Barrier). Templates never commute with
// operators that touch their wires.
func NewTemplate(name string, w ...any) *Elementary { return opaqueOf(KindTemplate, name, nil, w) }

// NewOpaqueUnitary returns a templated unitary for which no commutation rule exists.
func NewOpaqueUnitary(name string, w ...any) *Elementary {
	return opaqueOf(KindOpaqueUnitary, name, nil, w)
}

// NewCV returns a continuous-variable operation.
func NewCV(name string, params []float64, w ...any) *Elementary {
	return opaqueOf(KindCV, name, params, w)
}

// NewChannel returns a noise channel.
func NewChannel(name string, params []float64, w ...any) *Elementary {
	return opaqueOf(KindChannel, name, params, w)
}

func opaqueOf(k Kind, name string, params []float64, w []any) *Elementary {
	e := must(k, wires.New(w...), params...)
	e.label = name

	return e
}

// Kind returns the operator family.
func (e *Elementary) Kind() Kind { return e.kind }

// Name returns the family name, wrapped as "Adjoint(name)" for flagged adjoints.
func (e *Elementary) Name() string {
	name := e.label
	if name == "" {
		name = e.kind.String()
	}
	if e.adjoint {
		return "Adjoint(" + name + ")"
	}

	return name
}

// Wires returns the ordered wires.
func (e *Elementary) Wires() wires.Wires { return e.wires }

// IsAdjoint reports whether the adjoint flag is set.
func (e *Elementary) IsAdjoint() bool { return e.adjoint }

// Params returns a copy of the real parameters.
func (e *Elementary) Params() []float64 { return append([]float64(nil), e.params...) }

// Bits returns a copy of the basis state of a BasisStatePreparation.
func (e *Elementary) Bits() []int { return append([]int(nil), e.bits...) }

// Word returns the Pauli word of a PauliRot.
func (e *Elementary) Word() string { return e.word }

// Data returns the parameters as complex numbers.
func (e *Elementary) Data() []complex128 {
	out := make([]complex128, len(e.params))
	for i, p := range e.params {
		out[i] = complex(p, 0)
	}

	return out
}

// SetData replaces the parameters in place. Imaginary parts must be zero.
func (e *Elementary) SetData(data []complex128) error {
	if len(data) != len(e.params) {
		return operatorErrorf(opSetData, ErrParamCount)
	}
	for i, d := range data {
		if imag(d) != 0 {
			return operatorErrorf(opSetData, ErrParamCount)
		}
		e.params[i] = real(d)
	}

	return nil
}

// NumParams returns the number of parameters.
func (e *Elementary) NumParams() int { return len(e.params) }

// NdimParams returns one 0 (scalar) per parameter.
func (e *Elementary) NdimParams() []int { return make([]int, len(e.params)) }

// ControlWires returns the control wires (empty for uncontrolled kinds).
func (e *Elementary) ControlWires() wires.Wires {
	return e.wires.Slice(0, e.numControls())
}

// TargetWires returns the wires that are not controls.
func (e *Elementary) TargetWires() wires.Wires {
	return e.wires.Slice(e.numControls(), e.wires.Len())
}

func (e *Elementary) numControls() int {
	c := kindTable[e.kind].ctrl
	if e.kind == KindMultiControlledX {
		return e.wires.Len() - 1
	}

	return c
}

// Matrix returns the matrix on wireOrder (own wires when empty).
func (e *Elementary) Matrix(wireOrder wires.Wires) (*matrix.Dense, error) {
	local, err := e.localMatrix()
	if err != nil {
		return nil, operatorErrorf(e.Name()+"."+opMatrix, err)
	}
	if wireOrder.IsEmpty() {
		return local, nil
	}

	return matrix.ExpandMatrix(local, e.wires, wireOrder)
}

// SparseMatrix returns the CSR matrix on wireOrder (own wires when empty).
func (e *Elementary) SparseMatrix(wireOrder wires.Wires) (*matrix.Sparse, error) {
	local, err := e.localMatrix()
	if err != nil {
		return nil, operatorErrorf(e.Name()+".SparseMatrix", err)
	}
	sp, err := matrix.SparseFromDense(local)
	if err != nil {
		return nil, err
	}
	if wireOrder.IsEmpty() {
		return sp, nil
	}

	return matrix.ExpandSparse(sp, e.wires, wireOrder)
}

// Eigvals returns the eigenvalues: closed form for Paulis, Hadamard and Identity,
// derived from the matrix otherwise.
func (e *Elementary) Eigvals() ([]complex128, error) {
	switch e.kind {
	case KindIdentity:
		out := make([]complex128, 1<<e.wires.Len())
		for i := range out {
			out[i] = 1
		}

		return out, nil
	case KindPauliX, KindPauliY, KindPauliZ, KindHadamard:
		return []complex128{1, -1}, nil
	}
	m, err := e.localMatrix()
	if err != nil {
		return nil, operatorErrorf(e.Name()+"."+opEigvals, ErrEigvalsUndefined)
	}
	vals, err := EigvalsFromMatrix(m)
	if err != nil {
		return nil, operatorErrorf(e.Name()+"."+opEigvals, err)
	}

	return vals, nil
}

// IsHermitian reports the static hermiticity of the kind.
func (e *Elementary) IsHermitian() bool {
	return kindTable[e.kind].hermitian
}

// Terms is undefined for leaves.
func (e *Elementary) Terms() ([]complex128, []Operator, error) {
	return nil, nil, operatorErrorf(e.Name()+".Terms", ErrTermsUndefined)
}

// Hash returns the canonical key "kind|label|adjoint|wires|params|word|bits".
func (e *Elementary) Hash() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(e.kind)))
	sb.WriteByte('|')
	sb.WriteString(e.label)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatBool(e.adjoint))
	sb.WriteByte('|')
	sb.WriteString(e.wires.String())
	sb.WriteByte('|')
	for i, p := range e.params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(FormatParam(p))
	}
	sb.WriteByte('|')
	sb.WriteString(e.word)
	sb.WriteByte('|')
	sb.WriteString(fmt.Sprint(e.bits))

	return sb.String()
}

// FormatParam renders a parameter with hashDigits significant digits; -0 prints as 0.
func FormatParam(p float64) string {
	if p == 0 {
		p = 0
	}

	return strconv.FormatFloat(p, 'g', hashDigits, 64)
}

// String renders e.g. "RX(0.5, wires=[0])".
func (e *Elementary) String() string {
	var sb strings.Builder
	sb.WriteString(e.Name())
	sb.WriteByte('(')
	for _, p := range e.params {
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		sb.WriteString(", ")
	}
	sb.WriteString("wires=")
	sb.WriteString(e.wires.String())
	sb.WriteByte(')')

	return sb.String()
}

// clone returns a deep copy.
func (e *Elementary) clone() *Elementary {
	c := *e
	c.params = append([]float64(nil), e.params...)
	c.bits = append([]int(nil), e.bits...)

	return &c
}
