// SPDX-License-Identifier: MIT
// Package device_test verifies that Null counts correctly under concurrent execution.
package device_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/qlath/device"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

func TestNull_ConcurrentExecute(t *testing.T) {
	d := device.NewNull(wires.Range(2))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			_, err := d.Execute(context.Background(), device.CircuitOf(operator.Hadamard(0), operator.CNOT(0, 1)))
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, num, d.Runs())
	require.Equal(t, map[string]int{"Hadamard": num, "CNOT": num}, d.GateCalls())
}
