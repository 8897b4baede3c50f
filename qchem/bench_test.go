// SPDX-License-Identifier: MIT
package qchem_test

import (
	"testing"

	"github.com/katalvlaran/qlath/qchem"
)

func BenchmarkSymmetryGenerators_H2(b *testing.B) {
	h := h2Hamiltonian(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = qchem.SymmetryGenerators(h)
	}
}

func BenchmarkTaper_H2(b *testing.B) {
	h := h2Hamiltonian(b)
	gens := h2Generators(b)
	paulix := h2PauliX()
	sector := []int{1, -1, -1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = qchem.Taper(h, gens, paulix, sector)
	}
}

func BenchmarkReducedRowEchelon(b *testing.B) {
	rows := make([][]int, 64)
	for i := range rows {
		rows[i] = make([]int, 64)
		for j := range rows[i] {
			rows[i][j] = (i*7 + j*13 + i*j) % 3 % 2
		}
	}
	m, _ := qchem.BinaryMatrixFrom(rows)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qchem.Kernel(qchem.ReducedRowEchelon(m).DropZeroRows())
	}
}
