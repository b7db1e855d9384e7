// SPDX-License-Identifier: MIT
// Package: desdiag/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w through builderErrorf.
//   • Build never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrConstruction indicates invalid construction bounds (minStates ≤ 10 or
// minStates ≥ maxStates) or an internal construction defect such as a pointer
// walk without a viable continuation.
// Usage: if errors.Is(err, ErrConstruction) { /* fix bounds */ }.
var ErrConstruction = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with method context:
// "<method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
