// SPDX-License-Identifier: MIT
// The taper command: dataset in, tapered dataset out.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/qchem"
	"github.com/katalvlaran/qlath/wires"
)

type taperOptions struct {
	electrons int
	cutoff    float64
	output    string
	dryRun    bool
}

func newTaperCmd(root *rootOptions) *cobra.Command {
	opts := &taperOptions{}
	cmd := &cobra.Command{
		Use:   "taper <dataset.yaml>",
		Short: "Taper the Hamiltonian of a dataset in its Hartree-Fock sector",
		Long: `Reads a YAML dataset, finds the Z2 symmetries of its Hamiltonian, tapers
the Hamiltonian, particle number and spin-z observables and the Hartree-Fock
state, and writes the completed dataset as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readDataset(args[0])
			if err != nil {
				return err
			}
			if opts.electrons > 0 {
				ds.Electrons = opts.electrons
			}
			res, err := taperDataset(ds, opts.cutoff, root)
			if err != nil {
				return err
			}
			if opts.dryRun {
				return dryRun(cmd.Context(), res, cmd.OutOrStdout(), root.logger)
			}
			data, err := writeDataset(ds)
			if err != nil {
				return err
			}
			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			root.logger.Info().Str("file", opts.output).Msg("writing dataset")

			return os.WriteFile(opts.output, data, 0o644)
		},
	}
	cmd.Flags().IntVarP(&opts.electrons, "electrons", "n", 0, "number of active electrons (overrides the dataset)")
	cmd.Flags().Float64Var(&opts.cutoff, "cutoff", qchem.DefaultCutoff, "drop coefficients at or below this magnitude")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the gate counts of the tapered Hartree-Fock preparation instead of the dataset")

	return cmd
}

// taperDataset fills every derived field of ds.
func taperDataset(ds *Dataset, cutoff float64, root *rootOptions) (*qchem.Result, error) {
	h, err := toHamiltonian(ds.Hamiltonian, wires.Of(ds.Wires...))
	if err != nil {
		return nil, err
	}
	res, err := qchem.Pipeline(h, ds.Electrons,
		qchem.WithCutoff(cutoff),
		qchem.WithLogger(root.logger),
		qchem.WithWireOrder(wires.Of(ds.Wires...)),
	)
	if err != nil {
		return nil, err
	}

	ds.Symmetries = make([][]Term, len(res.Generators))
	for i, g := range res.Generators {
		if ds.Symmetries[i], err = fromOperator(g); err != nil {
			return nil, err
		}
	}
	ds.PauliXOps = make([]string, len(res.PauliX))
	for i, x := range res.PauliX {
		ds.PauliXOps[i] = x.Wires().At(0)
	}
	ds.OptimalSector = res.Sector
	ds.TaperedHFState = res.HFState
	if ds.TaperedHamiltonian, err = fromOperator(res.Hamiltonian); err != nil {
		return nil, err
	}

	// number observables are defined on wires 0..n-1 only
	n := res.Wires.Len()
	if res.Wires.Equal(wires.Range(n)) {
		if err := taperNumberOps(ds, res, n); err != nil {
			return nil, err
		}
	}
	root.logger.Info().
		Int("qubits", n).
		Int("tapered", res.Tapered()).
		Int("terms", res.Hamiltonian.Len()).
		Msg("tapering done")

	return res, nil
}

func taperNumberOps(ds *Dataset, res *qchem.Result, n int) error {
	observables := []struct {
		newOp         func(int) (*opmath.Hamiltonian, error)
		full, tapered *[]Term
	}{
		{qchem.ParticleNumber, &ds.NumOp, &ds.TaperedNumOp},
		{qchem.SpinZ, &ds.SpinZOp, &ds.TaperedSpinZOp},
	}
	for _, b := range observables {
		op, err := b.newOp(n)
		if err != nil {
			return err
		}
		if *b.full, err = fromOperator(op); err != nil {
			return err
		}
		t, err := qchem.TaperOn(op, res.Generators, res.PauliX, res.Sector, res.Wires)
		if err != nil {
			return fmt.Errorf("tapering observable: %w", err)
		}
		if *b.tapered, err = fromOperator(t); err != nil {
			return err
		}
	}

	return nil
}
