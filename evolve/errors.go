// SPDX-License-Identifier: MIT
package evolve

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("evolve: nil graph")

	// ErrBadTimeStep indicates a NaN or infinite dt.
	ErrBadTimeStep = errors.New("evolve: time step must be finite")

	// ErrBadSteps indicates a negative step count.
	ErrBadSteps = errors.New("evolve: step count must be ≥ 0")
)

const (
	methodStep = "Step"
	methodRun  = "Run"
)
