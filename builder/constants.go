// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the network builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTetrahedral is the canonical name for the Tetrahedral factory.
	MethodTetrahedral = "Tetrahedral"
	// MethodCubical is the canonical name for the Cubical factory.
	MethodCubical = "Cubical"
	// MethodOctahedral is the canonical name for the Octahedral factory.
	MethodOctahedral = "Octahedral"
	// MethodNetwork is the canonical name for the Network dispatcher.
	MethodNetwork = "Network"
)

//-----------------------------------------------------------------------------
// Spin encoding
//-----------------------------------------------------------------------------

// SpinQuantum is the step between successive edge spin codes: j = SpinQuantum·(code+1).
const SpinQuantum = 0.5

// DefaultOrientation is the orientation assigned to every baked edge.
const DefaultOrientation = 1

// edgeSpin decodes a spin code.
func edgeSpin(code int) float64 {
	return SpinQuantum * float64(code+1)
}
