// SPDX-License-Identifier: MIT
// The symmetries command: report generators, paulix wires and sector.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qlath/qchem"
	"github.com/katalvlaran/qlath/wires"
)

func newSymmetriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symmetries <dataset.yaml>",
		Short: "Print the Z2 symmetry generators of a dataset Hamiltonian",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readDataset(args[0])
			if err != nil {
				return err
			}
			order := wires.Of(ds.Wires...)
			h, err := toHamiltonian(ds.Hamiltonian, order)
			if err != nil {
				return err
			}
			if order.IsEmpty() {
				order = h.Wires()
			}
			gens, err := qchem.SymmetryGenerators(h)
			if err != nil {
				return err
			}
			root.logger.Debug().Int("generators", len(gens)).Msg("symmetry search done")
			paulix, err := qchem.PauliXOps(gens, order)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, g := range gens {
				terms, err := fromOperator(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\tX%s\n", terms[0].Word, paulix[i].Wires().At(0))
			}
			if ds.Electrons > 0 {
				sector, err := qchem.OptimalSector(h, gens, ds.Electrons)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "sector\t%v\n", sector)
			}

			return nil
		},
	}
}
