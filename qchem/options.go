// SPDX-License-Identifier: MIT

// Package qchem: tapering defaults and functional options.
// Every entry point that simplifies coefficients reads DefaultCutoff unless a
// caller overrides it with WithCutoff.
package qchem

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/qlath/opmath"
	"github.com/katalvlaran/qlath/wires"
)

// DefaultCutoff is the magnitude at or below which tapered coefficients
// (and their real or imaginary parts) are treated as zero.
const DefaultCutoff = opmath.DefaultCutoff

// Options configures Pipeline.
//
// Cutoff    – coefficient magnitude dropped during simplification. Must be ≥ 0.
// Logger    – receives one debug event per pipeline stage. Default zerolog.Nop().
// WireOrder – untapered wire order; empty means the Hamiltonian's own wires.
type Options struct {
	Cutoff    float64
	Logger    zerolog.Logger
	WireOrder wires.Wires
}

// Option represents a functional option for configuring Pipeline.
type Option func(*Options)

// WithCutoff sets the simplification cutoff. Negative values are clamped to 0.
func WithCutoff(cutoff float64) Option {
	return func(o *Options) {
		if cutoff < 0 {
			cutoff = 0
		}
		o.Cutoff = cutoff
	}
}

// WithLogger routes pipeline stage events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWireOrder fixes the untapered wire order. The tapered Hamiltonian acts on
// the wires of order that are not paulix wires, relabelled 0..n-k-1.
func WithWireOrder(order wires.Wires) Option {
	return func(o *Options) {
		o.WireOrder = order
	}
}

// DefaultOptions returns the silent configuration with DefaultCutoff.
func DefaultOptions() Options {
	return Options{
		Cutoff: DefaultCutoff,
		Logger: zerolog.Nop(),
	}
}
