// SPDX-License-Identifier: MIT
// Package device - the execution contract.

package device

import (
	"context"

	"github.com/katalvlaran/qlath/operator"
)

// Circuit is an ordered list of operations followed by the observables whose
// expectation values are requested.
type Circuit struct {
	Operations  []operator.Operator
	Observables []operator.Operator
}

// Result holds one expectation value per observable of the executed circuit.
// A circuit without observables yields a single value.
type Result struct {
	Values []float64
}

// Executor runs circuits. Implementations must honour ctx cancellation between
// operations and return ctx.Err() when it fires.
type Executor interface {
	Execute(ctx context.Context, c Circuit) (Result, error)
	BatchExecute(ctx context.Context, circuits []Circuit) ([]Result, error)
}
