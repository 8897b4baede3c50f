// SPDX-License-Identifier: MIT
// Package device - Null, a device that does no simulation.
//
// Purpose:
//   - Measure the overhead of building and dispatching circuits: every
//     operation is validated and counted by name, nothing is simulated, and
//     every expectation value is 0.
//
// Concurrency:
//   - Null is safe for concurrent use; counters are guarded by a mutex.

package device

import (
	"context"
	"sync"

	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/wires"
)

const (
	opExecute      = "Null.Execute"
	opBatchExecute = "Null.BatchExecute"
)

var _ Executor = (*Null)(nil)

// Null counts gate applications and returns zeros.
type Null struct {
	wires wires.Wires

	mu        sync.Mutex
	gateCalls map[string]int
	runs      int
}

// NewNull returns a Null device on w. An empty w accepts any wire.
func NewNull(w wires.Wires) *Null {
	return &Null{wires: w, gateCalls: make(map[string]int)}
}

// Wires returns the device wires.
func (d *Null) Wires() wires.Wires { return d.wires }

// Execute validates and counts the operations of c.
//
// Errors: ErrNilOperation, ErrWireOutOfRange, ctx.Err().
func (d *Null) Execute(ctx context.Context, c Circuit) (Result, error) {
	for _, op := range c.Operations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if op == nil {
			return Result{}, deviceErrorf(opExecute, ErrNilOperation)
		}
		if !d.wires.IsEmpty() && !d.wires.ContainsAll(op.Wires()) {
			return Result{}, deviceErrorf(opExecute+" "+op.Name(), ErrWireOutOfRange)
		}
	}
	for _, obs := range c.Observables {
		if obs == nil {
			return Result{}, deviceErrorf(opExecute, ErrNilOperation)
		}
		if !d.wires.IsEmpty() && !d.wires.ContainsAll(obs.Wires()) {
			return Result{}, deviceErrorf(opExecute+" "+obs.Name(), ErrWireOutOfRange)
		}
	}

	d.mu.Lock()
	for _, op := range c.Operations {
		d.gateCalls[op.Name()]++
	}
	d.runs++
	d.mu.Unlock()

	n := len(c.Observables)
	if n == 0 {
		n = 1
	}

	return Result{Values: make([]float64, n)}, nil
}

// BatchExecute runs every circuit in order and stops at the first error.
func (d *Null) BatchExecute(ctx context.Context, circuits []Circuit) ([]Result, error) {
	out := make([]Result, 0, len(circuits))
	for _, c := range circuits {
		r, err := d.Execute(ctx, c)
		if err != nil {
			return nil, deviceErrorf(opBatchExecute, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// GateCalls returns a copy of the per-name operation counts.
func (d *Null) GateCalls() map[string]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]int, len(d.gateCalls))
	for k, v := range d.gateCalls {
		out[k] = v
	}

	return out
}

// Runs returns the number of successfully executed circuits.
func (d *Null) Runs() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.runs
}

// Reset clears every counter.
func (d *Null) Reset() {
	d.mu.Lock()
	d.gateCalls = make(map[string]int)
	d.runs = 0
	d.mu.Unlock()
}

// CircuitOf is a convenience wrapper building a Circuit from operations only.
func CircuitOf(ops ...operator.Operator) Circuit {
	return Circuit{Operations: ops}
}
