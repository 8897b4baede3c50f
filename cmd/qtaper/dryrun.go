// SPDX-License-Identifier: MIT
// Dry run: the tapered Hartree-Fock preparation dispatched to the null device.

package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qlath/device"
	"github.com/katalvlaran/qlath/operator"
	"github.com/katalvlaran/qlath/qchem"
	"github.com/katalvlaran/qlath/wires"
)

// dryRun prepares the tapered Hartree-Fock state, measures the tapered
// Hamiltonian on a device.Null and reports the gate counts to out.
func dryRun(ctx context.Context, res *qchem.Result, out io.Writer, logger zerolog.Logger) error {
	w := wires.Range(len(res.HFState))
	labels := make([]any, w.Len())
	for i, l := range w.Labels() {
		labels[i] = l
	}
	prep, err := operator.BasisStatePreparation(res.HFState, labels...)
	if err != nil {
		return err
	}
	ops, err := prep.Decomposition()
	if err != nil {
		return err
	}

	dev := device.NewNull(w)
	circuit := device.Circuit{Operations: ops, Observables: []operator.Operator{res.Hamiltonian}}
	if _, err := dev.Execute(ctx, circuit); err != nil {
		return fmt.Errorf("dry run: %w", err)
	}

	calls := dev.GateCalls()
	logger.Debug().Int("runs", dev.Runs()).Int("gates", len(ops)).Msg("dry run done")
	if _, err := fmt.Fprintf(out, "qubits\t%d\ngates\t%d\n", w.Len(), len(ops)); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(calls)) {
		if _, err := fmt.Fprintf(out, "%s\t%d\n", name, calls[name]); err != nil {
			return err
		}
	}

	return nil
}
