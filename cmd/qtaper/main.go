// SPDX-License-Identifier: MIT

// Command qtaper tapers qubit Hamiltonians stored as YAML datasets.
//
// Usage:
//
//	qtaper taper h2.yaml -o h2_tapered.yaml
//	qtaper symmetries h2.yaml
//
// The persistent --verbose flag switches the console logger to debug level and
// prints one line per tapering stage.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
