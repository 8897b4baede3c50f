// SPDX-License-Identifier: MIT

// Package device defines how circuits are handed to an execution backend.
//
// Executor is the contract: Execute runs one Circuit, BatchExecute runs many
// and returns results in input order. Both take a context.Context and stop at
// the next operation boundary once it is cancelled.
//
// Null is the only backend shipped here. It performs no simulation: it checks
// wires, counts operations by name (GateCalls) and reports zero expectation
// values. Use it to benchmark circuit construction and dispatch.
//
//	d := device.NewNull(wires.Range(2))
//	res, _ := d.Execute(ctx, device.CircuitOf(operator.Hadamard(0), operator.CNOT(0, 1)))
//	_ = d.GateCalls() // map[CNOT:1 Hadamard:1]
package device
