// SPDX-License-Identifier: MIT
// Package qchem - excitations and number observables.
//
// Conventions:
//   - Spin orbital i has spin projection +½ when i is even and -½ when odd.
//   - Occupied orbitals are 0..electrons-1 (Hartree-Fock reference).

package qchem

import (
	"strconv"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opExcitations    = "Excitations"
	opParticleNumber = "ParticleNumber"
	opSpinZ          = "SpinZ"
	opExcGenerator   = "ExcitationGenerator"
)

// twiceSz returns 2·sz of spin orbital i.
func twiceSz(i int) int {
	if i%2 == 0 {
		return 1
	}

	return -1
}

// Excitations lists the single [r, p] and double [s, r, q, p] excitations out
// of the Hartree-Fock state that change the total spin projection by deltaSz.
// Occupied indices are below electrons, virtual ones at or above; within a
// double s < r and q < p.
//
// Errors: ErrExcitations when electrons < 1, orbitals <= electrons or
// deltaSz is outside {-2, -1, 0, 1, 2}.
func Excitations(electrons, orbitals, deltaSz int) ([][]int, [][]int, error) {
	switch {
	case electrons < 1:
		return nil, nil, qchemErrorf(opExcitations+": electrons must be greater than zero", ErrExcitations)
	case orbitals <= electrons:
		return nil, nil, qchemErrorf(opExcitations+": orbitals must exceed electrons", ErrExcitations)
	case deltaSz < -2 || deltaSz > 2:
		return nil, nil, qchemErrorf(opExcitations+": deltaSz "+strconv.Itoa(deltaSz), ErrExcitations)
	}
	var singles, doubles [][]int
	for r := 0; r < electrons; r++ {
		for p := electrons; p < orbitals; p++ {
			if twiceSz(p)-twiceSz(r) == 2*deltaSz {
				singles = append(singles, []int{r, p})
			}
		}
	}
	for s := 0; s < electrons-1; s++ {
		for r := s + 1; r < electrons; r++ {
			for q := electrons; q < orbitals-1; q++ {
				for p := q + 1; p < orbitals; p++ {
					if twiceSz(p)+twiceSz(q)-twiceSz(r)-twiceSz(s) == 2*deltaSz {
						doubles = append(doubles, []int{s, r, q, p})
					}
				}
			}
		}
	}

	return singles, doubles, nil
}

// ParticleNumber returns N = Σ_i (I - Z_i)/2 on wires 0..orbitals-1.
// Errors: ErrOrbitals.
func ParticleNumber(orbitals int) (*opmath.Hamiltonian, error) {
	if orbitals < 1 {
		return nil, qchemErrorf(opParticleNumber, ErrOrbitals)
	}

	return numberObservable(orbitals, func(int) float64 { return 0.5 }), nil
}

// SpinZ returns S_z = Σ_i sz_i (I - Z_i)/2 on wires 0..orbitals-1. The identity
// term cancels for an even number of orbitals and is then omitted.
// Errors: ErrOrbitals.
func SpinZ(orbitals int) (*opmath.Hamiltonian, error) {
	if orbitals < 1 {
		return nil, qchemErrorf(opSpinZ, ErrOrbitals)
	}

	return numberObservable(orbitals, func(i int) float64 { return float64(twiceSz(i)) / 4 }), nil
}

// numberObservable builds Σ_i w(i)·(I - Z_i).
func numberObservable(orbitals int, weight func(int) float64) *opmath.Hamiltonian {
	order := wires.Range(orbitals)
	s := pauli.NewSentence()
	for i := 0; i < orbitals; i++ {
		w := complex(weight(i), 0)
		s.Add(pauli.Word{}, w)
		s.Add(pauli.Word{order.At(i): 'Z'}, -w)
	}

	return s.Hamiltonian(order, DefaultCutoff)
}

// SingleExcitationGenerator returns ¼(X_a Y_b - Y_a X_b), the generator of
// SingleExcitation on (a, b).
// Errors: ErrExcitations for repeated wires.
func SingleExcitationGenerator(a, b any) (*opmath.Hamiltonian, error) {
	if wires.New(a, b).Len() != 2 {
		return nil, qchemErrorf(opExcGenerator, ErrExcitations)
	}

	return excitationGenerator(operator.SingleExcitation(1, a, b))
}

// DoubleExcitationGenerator returns the eight-word generator of
// DoubleExcitation on (a, b, c, d).
// Errors: ErrExcitations for repeated wires.
func DoubleExcitationGenerator(a, b, c, d any) (*opmath.Hamiltonian, error) {
	if wires.New(a, b, c, d).Len() != 4 {
		return nil, qchemErrorf(opExcGenerator, ErrExcitations)
	}

	return excitationGenerator(operator.DoubleExcitation(1, a, b, c, d))
}

func excitationGenerator(op operator.Operator) (*opmath.Hamiltonian, error) {
	g, err := opmath.GeneratorOf(op)
	if err != nil {
		return nil, qchemErrorf(opExcGenerator, err)
	}
	h, ok := g.(*opmath.Hamiltonian)
	if !ok {
		return nil, qchemErrorf(opExcGenerator, opmath.ErrGeneratorUndefined)
	}

	return h, nil
}
