// SPDX-License-Identifier: MIT
// Package qchem - qubit tapering.
//
// Purpose:
//   - Taper removes one qubit per symmetry generator from a Hamiltonian by
//     rotating every generator onto a single-qubit PauliX and replacing that
//     PauliX with its sector eigenvalue.
//   - TaperHF and TaperExcitations carry a reference state and excitation
//     generators into the tapered space.
//
// Implementation (Taper):
//   - Stage 1: H' = U·H·U with U the Clifford of the sector (U is its own inverse).
//   - Stage 2: for every term and every paulix wire p_i, multiply the
//     coefficient by sector_i when the term has X on p_i, then drop p_i.
//   - Stage 3: relabel the surviving wires 0..n-k-1 in order and simplify.
//
// Complexity:
//   - O(4^k·T) word products for T terms and k generators.

package qchem

import (
	"strconv"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opTaper     = "Taper"
	opTaperHF   = "TaperHF"
	opTaperExc  = "TaperExcitations"
	opCommuting = "IsCommutingObs"
	opObsMult   = "ObservableMult"
)

// Taper returns h restricted to the sector, acting on wires 0..n-k-1.
// The untapered order is the union of the wires of h, the generators and the
// paulix operators, sorted numerically when every label is an integer.
//
// Errors: ErrSectorShape (via NewSector), pauli.ErrNotPauli for non-Pauli terms.
func Taper(h operator.Operator, generators []*opmath.Hamiltonian, paulixOps []operator.Operator, sector []int) (*opmath.Hamiltonian, error) {
	return TaperOn(h, generators, paulixOps, sector, wires.Wires{})
}

// TaperOn is Taper with an explicit untapered wire order. An empty order
// selects the default of Taper.
//
// Errors: as Taper, plus ErrWireOrder when order misses a wire.
func TaperOn(h operator.Operator, generators []*opmath.Hamiltonian, paulixOps []operator.Operator, sector []int, order wires.Wires) (*opmath.Hamiltonian, error) {
	sec, err := NewSector(generators, paulixOps, sector)
	if err != nil {
		return nil, qchemErrorf(opTaper, err)
	}

	return taper(h, sec, order, DefaultCutoff)
}

func taper(h operator.Operator, sec *Sector, order wires.Wires, cutoff float64) (*opmath.Hamiltonian, error) {
	full := wires.Union(h.Wires(), generatorWires(sec.Generators), unionOf(sec.PauliX))
	if order.IsEmpty() {
		order = canonicalOrder(full)
	} else if !order.ContainsAll(full) {
		return nil, qchemErrorf(opTaper, ErrWireOrder)
	}

	hs, err := pauli.FromOperator(h)
	if err != nil {
		return nil, qchemErrorf(opTaper, err)
	}
	u, err := cliffordSentence(sec.Generators, sec.PauliX)
	if err != nil {
		return nil, qchemErrorf(opTaper, err)
	}
	rotated := u.Mul(hs).Mul(u).Prune(cutoff)

	value := make(map[string]int, sec.Len())
	for i, x := range sec.PauliX {
		value[x.Wires().At(0)] = sec.Values[i]
	}
	kept := make([]string, 0, order.Len())
	for _, l := range order.Labels() {
		if _, ok := value[l]; !ok {
			kept = append(kept, l)
		}
	}

	out := pauli.NewSentence()
	coeffs, words := rotated.Terms()
	for t, w := range words {
		c := coeffs[t]
		for label, v := range value {
			if w.Letter(label) == 'X' {
				c *= complex(float64(v), 0)
			}
		}
		nw := make(pauli.Word, len(w))
		for k, l := range kept {
			if letter := w.Letter(l); letter != 'I' {
				nw[strconv.Itoa(k)] = letter
			}
		}
		out.Add(nw, c)
	}

	return out.Hamiltonian(wires.Range(len(kept)), cutoff).Simplified(cutoff), nil
}

// TaperHF returns the Hartree-Fock bitstring on the tapered wires: the first
// electrons of numWires orbitals occupied, with the paulix wires removed.
// Paulix wires are read as integer indices into 0..numWires-1.
//
// Errors: ErrSectorShape, ErrElectrons (electrons outside 0..numWires),
// ErrWireOrder (paulix wire outside 0..numWires-1).
func TaperHF(generators []*opmath.Hamiltonian, paulixOps []operator.Operator, sector []int, electrons, numWires int) ([]int, error) {
	sec, err := NewSector(generators, paulixOps, sector)
	if err != nil {
		return nil, qchemErrorf(opTaperHF, err)
	}
	if electrons < 0 || electrons > numWires {
		return nil, qchemErrorf(opTaperHF, ErrElectrons)
	}

	return taperHF(sec, electrons, wires.Range(numWires))
}

func taperHF(sec *Sector, electrons int, order wires.Wires) ([]int, error) {
	drop := make(map[string]bool, sec.Len())
	for _, x := range sec.PauliX {
		label := x.Wires().At(0)
		if !order.Contains(label) {
			return nil, qchemErrorf(opTaperHF+" "+label, ErrWireOrder)
		}
		drop[label] = true
	}
	out := make([]int, 0, order.Len()-len(drop))
	for k, l := range order.Labels() {
		if drop[l] {
			continue
		}
		bit := 0
		if k < electrons {
			bit = 1
		}
		out = append(out, bit)
	}

	return out, nil
}

// TaperExcitations tapers the generators of the given single and double
// excitations. An excitation is kept only when its generator commutes with
// every symmetry generator; the others leave the symmetry sector and are
// dropped. Both outputs preserve input order.
//
// Errors: ErrSectorShape, the Taper errors.
func TaperExcitations(generators []*opmath.Hamiltonian, paulixOps []operator.Operator, sector []int, singles, doubles [][]int) ([]*opmath.Hamiltonian, []*opmath.Hamiltonian, error) {
	sec, err := NewSector(generators, paulixOps, sector)
	if err != nil {
		return nil, nil, qchemErrorf(opTaperExc, err)
	}

	return taperExcitations(sec, singles, doubles, wires.Wires{}, DefaultCutoff)
}

func taperExcitations(sec *Sector, singles, doubles [][]int, order wires.Wires, cutoff float64) ([]*opmath.Hamiltonian, []*opmath.Hamiltonian, error) {
	run := func(excs [][]int, build func([]int) (*opmath.Hamiltonian, error)) ([]*opmath.Hamiltonian, error) {
		var out []*opmath.Hamiltonian
		for _, e := range excs {
			g, err := build(e)
			if err != nil {
				return nil, err
			}
			ok, err := commutesWithAll(g, sec.Generators)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			t, err := taper(g, sec, order, cutoff)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}

		return out, nil
	}
	s, err := run(singles, func(e []int) (*opmath.Hamiltonian, error) {
		if len(e) != 2 {
			return nil, ErrExcitations
		}
		return SingleExcitationGenerator(e[0], e[1])
	})
	if err != nil {
		return nil, nil, qchemErrorf(opTaperExc, err)
	}
	d, err := run(doubles, func(e []int) (*opmath.Hamiltonian, error) {
		if len(e) != 4 {
			return nil, ErrExcitations
		}
		return DoubleExcitationGenerator(e[0], e[1], e[2], e[3])
	})
	if err != nil {
		return nil, nil, qchemErrorf(opTaperExc, err)
	}

	return s, d, nil
}

func commutesWithAll(op operator.Operator, generators []*opmath.Hamiltonian) (bool, error) {
	for _, g := range generators {
		ok, err := IsCommutingObs(op, g, wires.Wires{})
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// IsCommutingObs reports whether every Pauli term of a commutes with every
// Pauli term of b (zero symplectic inner product). A non-empty order must
// contain the wires of both operands.
//
// Errors: pauli.ErrNotPauli, ErrWireOrder.
func IsCommutingObs(a, b operator.Operator, order wires.Wires) (bool, error) {
	if !order.IsEmpty() && (!order.ContainsAll(a.Wires()) || !order.ContainsAll(b.Wires())) {
		return false, qchemErrorf(opCommuting, ErrWireOrder)
	}
	sa, err := pauli.FromOperator(a)
	if err != nil {
		return false, qchemErrorf(opCommuting, err)
	}
	sb, err := pauli.FromOperator(b)
	if err != nil {
		return false, qchemErrorf(opCommuting, err)
	}

	return sa.Prune(DefaultCutoff).Commutes(sb.Prune(DefaultCutoff)), nil
}

// ObservableMult returns the simplified product a·b of two Pauli observables.
// Errors: pauli.ErrNotPauli.
func ObservableMult(a, b operator.Operator) (*opmath.Hamiltonian, error) {
	sa, err := pauli.FromOperator(a)
	if err != nil {
		return nil, qchemErrorf(opObsMult, err)
	}
	sb, err := pauli.FromOperator(b)
	if err != nil {
		return nil, qchemErrorf(opObsMult, err)
	}
	order := wires.Union(a.Wires(), b.Wires())

	return sa.Mul(sb).Hamiltonian(order, DefaultCutoff), nil
}
