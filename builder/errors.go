// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Option constructors (WithX...) panic on meaningless input; builders never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork indicates a NetworkName (or its textual form) with no baked table.
// Usage: if errors.Is(err, ErrUnknownNetwork) { /* list NetworkNames() */ }.
var ErrUnknownNetwork = errors.New("builder: unknown network")

// ErrConstructFailed indicates that a baked table violated a core arena rule
// (unknown endpoint, valence mismatch). This is a programmer error.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the method tag and a formatted detail:
// "<method>: <detail>: <err>".
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
