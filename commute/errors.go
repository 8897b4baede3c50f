// SPDX-License-Identifier: MIT
// Package commute - sentinel errors.

package commute

import (
	"fmt"

	"github.com/katalvlaran/qlath/operator"
)

// ErrUnsupported is returned for operators the oracle refuses to reason about:
// continuous-variable operations, channels, PauliRot, QubitDensityMatrix and
// opaque templated unitaries. It wraps operator.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("commute: %w", operator.ErrUnsupported)

func commuteErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
