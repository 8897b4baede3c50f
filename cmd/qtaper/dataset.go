// SPDX-License-Identifier: MIT
// Dataset files: YAML documents holding a qubit Hamiltonian and, after
// tapering, its symmetries, sector and tapered observables.
//
// A term is written as a coefficient and a Pauli word, the word being
// space-separated letter+label factors ("Y0 X1 X2 Y3") or "I".

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/pauli"
	"github.com/katalvlaran/qlath/wires"
)

var (
	errBadWord     = errors.New("qtaper: malformed Pauli word")
	errNoTerms     = errors.New("qtaper: dataset has no hamiltonian terms")
	errBadDataFile = errors.New("qtaper: cannot decode dataset")
)

// Term is one weighted Pauli word.
type Term struct {
	Coeff float64 `yaml:"coeff"`
	Imag  float64 `yaml:"imag,omitempty"`
	Word  string  `yaml:"word"`
}

// Dataset mirrors the fields of a tapered molecular data set.
type Dataset struct {
	Molecule           string   `yaml:"molecule,omitempty"`
	Electrons          int      `yaml:"electrons"`
	Wires              []string `yaml:"wires,omitempty"`
	Hamiltonian        []Term   `yaml:"hamiltonian"`
	Symmetries         [][]Term `yaml:"symmetries,omitempty"`
	PauliXOps          []string `yaml:"paulix_ops,omitempty"`
	OptimalSector      []int    `yaml:"optimal_sector,omitempty"`
	NumOp              []Term   `yaml:"num_op,omitempty"`
	SpinZOp            []Term   `yaml:"spinz_op,omitempty"`
	TaperedHamiltonian []Term   `yaml:"tapered_hamiltonian,omitempty"`
	TaperedNumOp       []Term   `yaml:"tapered_num_op,omitempty"`
	TaperedSpinZOp     []Term   `yaml:"tapered_spinz_op,omitempty"`
	TaperedHFState     []int    `yaml:"tapered_hf_state,omitempty"`
}

func readDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errBadDataFile, path, err)
	}
	if len(ds.Hamiltonian) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoTerms)
	}

	return &ds, nil
}

func writeDataset(ds *Dataset) ([]byte, error) {
	return yaml.Marshal(ds)
}

// parseWord reads "Y0 X1 Z(a)"-style text. Labels may be wrapped in
// parentheses; "I" and "" denote the identity.
func parseWord(text string) (pauli.Word, error) {
	w := make(pauli.Word)
	for _, f := range strings.Fields(text) {
		if f == "I" {
			continue
		}
		letter, label := f[0], strings.TrimSuffix(strings.TrimPrefix(f[1:], "("), ")")
		if label == "" {
			return nil, fmt.Errorf("%w: %q", errBadWord, f)
		}
		switch letter {
		case 'I':
		case 'X', 'Y', 'Z':
			if _, dup := w[label]; dup {
				return nil, fmt.Errorf("%w: wire %s repeated in %q", errBadWord, label, text)
			}
			w[label] = letter
		default:
			return nil, fmt.Errorf("%w: %q", errBadWord, f)
		}
	}

	return w, nil
}

// toHamiltonian builds Σ c·W over order; an empty order uses the term wires in
// order of appearance.
func toHamiltonian(terms []Term, order wires.Wires) (*opmath.Hamiltonian, error) {
	s := pauli.NewSentence()
	for _, t := range terms {
		w, err := parseWord(t.Word)
		if err != nil {
			return nil, err
		}
		s.Add(w, complex(t.Coeff, t.Imag))
	}
	if order.IsEmpty() {
		order = s.Wires()
	}

	return s.Hamiltonian(order, 0), nil
}

// fromOperator renders h as terms over h's wires.
func fromOperator(h *opmath.Hamiltonian) ([]Term, error) {
	s, err := pauli.FromOperator(h)
	if err != nil {
		return nil, err
	}
	order := h.Wires()
	coeffs, words := s.Terms()
	out := make([]Term, 0, len(words))
	for i, w := range words {
		out = append(out, Term{Coeff: real(coeffs[i]), Imag: imag(coeffs[i]), Word: formatWord(w, order)})
	}

	return out, nil
}

func formatWord(w pauli.Word, order wires.Wires) string {
	if w.IsIdentity() {
		return "I"
	}
	on := w.Wires(order)
	parts := make([]string, on.Len())
	for i, l := range on.Labels() {
		parts[i] = string(w.Letter(l)) + l
	}

	return strings.Join(parts, " ")
}
