// SPDX-License-Identifier: MIT
package device_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qlath/device"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

func TestNull_Execute(t *testing.T) {
	d := device.NewNull(wires.Range(2))
	ctx := context.Background()

	res, err := d.Execute(ctx, device.CircuitOf(operator.Hadamard(0), operator.CNOT(0, 1), operator.RX(0.3, 1)))
	require.NoError(t, err)
	require.Equal(t, []float64{0}, res.Values)

	res, err = d.Execute(ctx, device.Circuit{
		Operations:  []operator.Operator{operator.PauliX(0), operator.PauliX(1)},
		Observables: []operator.Operator{operator.PauliZ(0), opmath.MustProd(operator.PauliZ(0), operator.PauliZ(1))},
	})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, res.Values)

	require.Equal(t, map[string]int{"Hadamard": 1, "CNOT": 1, "RX": 1, "PauliX": 2}, d.GateCalls())
	require.Equal(t, 2, d.Runs())

	d.Reset()
	require.Empty(t, d.GateCalls())
	require.Zero(t, d.Runs())
}

func TestNull_Errors(t *testing.T) {
	d := device.NewNull(wires.Range(2))
	ctx := context.Background()

	_, err := d.Execute(ctx, device.CircuitOf(operator.PauliX(0), operator.PauliX(5)))
	require.ErrorIs(t, err, device.ErrWireOutOfRange)
	require.Empty(t, d.GateCalls(), "a rejected circuit must not be counted")

	_, err = d.Execute(ctx, device.Circuit{Observables: []operator.Operator{operator.PauliZ(3)}})
	require.ErrorIs(t, err, device.ErrWireOutOfRange)

	_, err = d.Execute(ctx, device.CircuitOf(nil))
	require.ErrorIs(t, err, device.ErrNilOperation)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = d.Execute(cancelled, device.CircuitOf(operator.PauliX(0)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNull_AnyWire(t *testing.T) {
	d := device.NewNull(wires.Wires{})
	_, err := d.Execute(context.Background(), device.CircuitOf(operator.PauliX("ancilla"), operator.CNOT(7, "q")))
	require.NoError(t, err)
	require.True(t, d.Wires().IsEmpty())
}

func TestNull_BatchExecute(t *testing.T) {
	d := device.NewNull(wires.Range(3))
	circuits := []device.Circuit{
		device.CircuitOf(operator.Hadamard(0)),
		{Operations: []operator.Operator{operator.CNOT(0, 1)}, Observables: []operator.Operator{operator.PauliZ(1), operator.PauliZ(2), operator.PauliX(0)}},
	}
	res, err := d.BatchExecute(context.Background(), circuits)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Len(t, res[1].Values, 3)

	circuits = append(circuits, device.CircuitOf(operator.PauliZ(9)))
	_, err = d.BatchExecute(context.Background(), circuits)
	require.ErrorIs(t, err, device.ErrWireOutOfRange)
}
