// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on Pauli-string sized inputs.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qlath/matrix"
	"github.com/katalvlaran/qlath/wires"
)

// benchQubits are the register sizes to benchmark.
var benchQubits = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkS *matrix.Sparse
)

func pauliString(b *testing.B, n int) *matrix.Dense {
	x, _ := matrix.NewDenseRows([][]complex128{{0, 1}, {1, 0}})
	z, _ := matrix.NewDenseRows([][]complex128{{1, 0}, {0, -1}})
	fs := make([]*matrix.Dense, n)
	for i := range fs {
		fs[i] = x
		if i%2 == 1 {
			fs[i] = z
		}
	}
	m, err := matrix.KronAll(fs...)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchQubits {
		b.Run(fmt.Sprintf("q=%d", n), func(b *testing.B) {
			p := pauliString(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(p, p)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkExpm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{2, 4, 6} {
		b.Run(fmt.Sprintf("q=%d", n), func(b *testing.B) {
			p, _ := matrix.Scale(pauliString(b, n), -0.3i)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Expm(p)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkExpandSparse(b *testing.B) {
	b.ReportAllocs()
	x, _ := matrix.NewDenseRows([][]complex128{{0, 1}, {1, 0}})
	sx, _ := matrix.SparseFromDense(x)
	for _, n := range benchQubits {
		b.Run(fmt.Sprintf("q=%d", n), func(b *testing.B) {
			order := wires.Range(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.ExpandSparse(sx, wires.New(n/2), order)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = s
			}
		})
	}
}
