// SPDX-License-Identifier: MIT
// Root command and logger wiring.

package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	logger  zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "qtaper",
		Short:         "Taper qubit Hamiltonians using their Z2 symmetries",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every tapering stage")
	cmd.AddCommand(newTaperCmd(opts), newSymmetriesCmd(opts))

	return cmd
}

// newLogger returns a console logger on w at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
