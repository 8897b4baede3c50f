// SPDX-License-Identifier: MIT
// Package qchem - end-to-end tapering pipeline.
//
// Stages:
//   1. symmetry generators of h;
//   2. paulix partners;
//   3. Hartree-Fock sector for the electron count;
//   4. tapered Hamiltonian;
//   5. tapered Hartree-Fock bitstring.

package qchem

import (
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/wires"
)

const opPipeline = "Pipeline"

// Result is the outcome of Pipeline.
type Result struct {
	Wires       wires.Wires // untapered wire order
	Generators  []*opmath.Hamiltonian
	PauliX      []operator.Operator
	Sector      []int
	Hamiltonian *opmath.Hamiltonian // tapered, on wires 0..n-k-1
	HFState     []int               // tapered Hartree-Fock bitstring
}

// Tapered returns the number of removed qubits.
func (r *Result) Tapered() int { return len(r.Generators) }

// TaperingSector returns the validated sector of r.
func (r *Result) TaperingSector() (*Sector, error) {
	return NewSector(r.Generators, r.PauliX, r.Sector)
}

// Pipeline tapers h in its Hartree-Fock sector.
//
// The untapered order is WithWireOrder or, by default, h's wires in canonical
// order; occupied orbitals are the first electrons wires of that order.
//
// Errors: ErrElectrons, ErrNoPauliX, ErrWireOrder and the conversion errors of
// the individual stages.
func Pipeline(h *opmath.Hamiltonian, electrons int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger
	order := o.WireOrder
	if order.IsEmpty() {
		order = canonicalOrder(h.Wires())
	} else if !order.ContainsAll(h.Wires()) {
		return nil, qchemErrorf(opPipeline, ErrWireOrder)
	}
	if electrons < 1 {
		return nil, qchemErrorf(opPipeline+": number of active electrons must be greater than zero", ErrElectrons)
	}
	if electrons > order.Len() {
		return nil, qchemErrorf(opPipeline+": number of active orbitals cannot be smaller than number of active electrons", ErrElectrons)
	}

	gens, err := symmetryGenerators(h, order)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	log.Debug().Int("generators", len(gens)).Int("wires", order.Len()).Msg("symmetry generators")

	paulix, err := PauliXOps(gens, order)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	log.Debug().Stringer("paulix", unionOf(paulix)).Msg("paulix operators")

	sector, err := hfSector(gens, order, electrons)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	log.Debug().Ints("sector", sector).Msg("optimal sector")

	sec, err := NewSector(gens, paulix, sector)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	tapered, err := taper(h, sec, order, o.Cutoff)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	log.Debug().Int("terms", tapered.Len()).Int("qubits", order.Len()-sec.Len()).Msg("tapered hamiltonian")

	hf, err := taperHF(sec, electrons, order)
	if err != nil {
		return nil, qchemErrorf(opPipeline, err)
	}
	log.Debug().Ints("hf", hf).Msg("tapered reference state")

	return &Result{
		Wires:       order,
		Generators:  gens,
		PauliX:      paulix,
		Sector:      sector,
		Hamiltonian: tapered,
		HFState:     hf,
	}, nil
}

// hfSector is OptimalSector over an explicit order. Only wires where a
// generator carries Z count; identity factors do not.
func hfSector(generators []*opmath.Hamiltonian, order wires.Wires, electrons int) ([]int, error) {
	words, err := generatorWords(generators)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(generators))
	for i, w := range words {
		for _, letter := range w {
			if letter != 'Z' {
				return nil, ErrNotGenerator
			}
		}
		occupied := 0
		for k := 0; k < electrons; k++ {
			if w.Letter(order.At(k)) == 'Z' {
				occupied++
			}
		}
		out[i] = 1
		if occupied%2 == 1 {
			out[i] = -1
		}
	}

	return out, nil
}
