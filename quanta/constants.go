// SPDX-License-Identifier: MIT
// Package: spinfoam/quanta
//
// constants.go - physical constants used by every eigenvalue formula.
//
// Values are CODATA literals kept exactly as published; do not derive them
// from each other (l_P from ħ, G, c) since that would change the last bits.

package quanta

const (
	// Pi is the literal value used by all operators (identical to math.Pi in float64).
	Pi = 3.14159265358979323846

	// Hbar is the reduced Planck constant (J·s).
	Hbar = 1.054571817e-34

	// G is the gravitational constant (m³/kg·s²).
	G = 6.67430e-11

	// C is the speed of light (m/s).
	C = 299792458.0

	// PlanckLength is l_P in metres.
	PlanckLength = 1.616255e-35

	// PlanckMass is m_P in kilograms.
	PlanckMass = 2.176434e-8

	// PlanckTime is t_P in seconds.
	PlanckTime = 5.391247e-44

	// Immirzi is the Barbero–Immirzi parameter γ (dimensionless).
	Immirzi = 0.23753295756592
)

// PlanckVolume is l_P³, the prefactor of every volume eigenvalue.
const PlanckVolume = PlanckLength * PlanckLength * PlanckLength
