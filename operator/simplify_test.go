// SPDX-License-Identifier: MIT
package operator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qlath/operator"
	"github.com/stretchr/testify/require"
)

func TestElementary_Simplify(t *testing.T) {
	tests := []struct {
		name     string
		op       operator.Operator
		wantKind operator.Kind
		wantData []float64
	}{
		{"RX(4π) is identity", operator.RX(4*math.Pi, 0), operator.KindIdentity, nil},
		{"RX(2π) is kept", operator.RX(2*math.Pi, 0), operator.KindRX, []float64{2 * math.Pi}},
		{"RZ reduced", operator.RZ(5*math.Pi, 0), operator.KindRZ, []float64{math.Pi}},
		{"PhaseShift(2π) is identity", operator.PhaseShift(2*math.Pi, 0), operator.KindIdentity, nil},
		{"CRX(0) is identity", operator.CRX(0, 0, 1), operator.KindIdentity, nil},
		{"Rot with zero θ", operator.Rot(0.3, 0, 0.4, 0), operator.KindRZ, []float64{0.7}},
		{"CRot with zero θ", operator.CRot(0.3, 0, 0.4, 0, 1), operator.KindCRZ, []float64{0.7}},
		{"U3 with zero θ", operator.U3(0, 0.2, 0.3, 0), operator.KindPhaseShift, []float64{0.5}},
		{"U3 collapsing to identity", operator.U3(0, math.Pi, math.Pi, 0), operator.KindIdentity, nil},
		{"U2 never identity", operator.U2(0, 0, 0), operator.KindU2, []float64{0, 0}},
		{"Hadamard unchanged", operator.Hadamard(0), operator.KindHadamard, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op.Simplify()
			require.Equal(t, tc.wantKind, got.Kind())
			require.True(t, got.Wires().Equal(tc.op.Wires()))
			data := got.Data()
			require.Len(t, data, len(tc.wantData))
			for i, w := range tc.wantData {
				require.InDelta(t, w, real(data[i]), 1e-12)
			}
		})
	}
}

func TestSimplify_DoesNotMutate(t *testing.T) {
	op := operator.RX(4*math.Pi, 0)
	_ = op.Simplify()
	require.Equal(t, operator.KindRX, op.Kind())
	require.Equal(t, []float64{4 * math.Pi}, op.Params())
}

func TestIsZeroAngle(t *testing.T) {
	require.True(t, operator.IsZeroAngle(-2*math.Pi, 2*math.Pi))
	require.True(t, operator.IsZeroAngle(2*math.Pi-1e-14, 2*math.Pi))
	require.False(t, operator.IsZeroAngle(math.Pi, 2*math.Pi))
}
