// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// options.go - functional options for the network builders.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic.
//   • Defaults reproduce the baked networks exactly.

package builder

import (
	"fmt"
	"math"
)

// BuilderOption customizes a builder by mutating a builderConfig instance
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithHolonomy replaces the baked initial holonomy with
// SU2Element(theta, px, py, pz) for every edge.
// Panics on NaN or infinite parameters.
func WithHolonomy(theta, px, py, pz float64) BuilderOption {
	for _, v := range []float64{theta, px, py, pz} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("builder: WithHolonomy(%g, %g, %g, %g): non-finite parameter", theta, px, py, pz))
		}
	}
	seed := holonomySeed{Theta: theta, Px: px, Py: py, Pz: pz}

	return func(c *builderConfig) {
		c.holonomy = &seed
	}
}

// WithOrientation sets the orientation stored on every edge.
// Panics unless o is +1 or -1.
func WithOrientation(o int) BuilderOption {
	if o != 1 && o != -1 {
		panic(fmt.Sprintf("builder: WithOrientation(%d): must be +1 or -1", o))
	}

	return func(c *builderConfig) {
		c.orientation = o
	}
}

// WithFaces overrides the declared face count. The value is carried, not
// validated against the topology. Panics on negative input.
func WithFaces(n int) BuilderOption {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithFaces(%d): must be ≥ 0", n))
	}

	return func(c *builderConfig) {
		c.faces = n
	}
}
