// SPDX-License-Identifier: MIT
package opmath_test

import (
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/wires"
)

func BenchmarkSum_Simplify(b *testing.B) {
	ops := make([]operator.Operator, 0, 1000)
	for i := 0; i < 1000; i++ {
		ops = append(ops, opmath.NewSProd(complex(float64(i), 0), opmath.MustProd(operator.PauliZ(i%8), operator.PauliX((i+1)%8))))
	}
	s := opmath.MustSum(ops...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Simplify()
	}
}

func BenchmarkHamiltonian_Matrix(b *testing.B) {
	n := 6
	coeffs := make([]float64, 0, 2*n)
	ops := make([]operator.Operator, 0, 2*n)
	for i := 0; i < n; i++ {
		coeffs = append(coeffs, 0.5, -0.25)
		ops = append(ops, operator.PauliZ(i), opmath.MustProd(operator.PauliX(i), operator.PauliX((i+1)%n)))
	}
	h, _ := opmath.NewRealHamiltonian(coeffs, ops)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Matrix(wires.Wires{})
	}
}
