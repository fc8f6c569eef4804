// SPDX-License-Identifier: MIT
// Package: spinfoam/quanta
//
// eigen.go - area/volume eigenvalues and the holonomy element.
//
// Determinism:
//   - Operand order inside each formula is fixed; results are bit-reproducible.

package quanta

import (
	"fmt"
	"math"
)

const methodAreaEigenvalue = "AreaEigenvalue"

// AreaEigenvalue returns A(j) = 8π·γ·ħ·G·√(j(j+1)) / c³.
//
// Returns ErrInvalidSpin (wrapped) for j < 0 or NaN.
// Complexity: O(1).
func AreaEigenvalue(j float64) (float64, error) {
	if j < 0 || math.IsNaN(j) {
		return 0, fmt.Errorf("%s(%g): %w", methodAreaEigenvalue, j, ErrInvalidSpin)
	}

	return 8.0 * Pi * Immirzi * Hbar * G * math.Sqrt(j*(j+1.0)) / (C * C * C), nil
}

// MustAreaEigenvalue is AreaEigenvalue for spins already known to be valid.
// It panics on ErrInvalidSpin; use it only behind a validation boundary.
func MustAreaEigenvalue(j float64) float64 {
	a, err := AreaEigenvalue(j)
	if err != nil {
		panic(err)
	}
	return a
}

// VolumeEigenvalue returns V = l_P³·√|j1·j2·j3|. Any real inputs are accepted.
func VolumeEigenvalue(j1, j2, j3 float64) float64 {
	return PlanckLength * PlanckLength * PlanckLength * math.Sqrt(math.Abs(j1*j2*j3))
}

// SU2Element returns cos(θ) + i·sin(θ)·(φx+φy+φz).
//
// This is the simplified holonomy used by every builder. The result is not unit
// magnitude in general and must not be normalised.
func SU2Element(theta, phiX, phiY, phiZ float64) complex128 {
	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)

	pauliX := complex(0, phiX)
	pauliY := complex(0, phiY)
	pauliZ := complex(0, phiZ)

	return complex(cosTheta, 0) + complex(sinTheta, 0)*(pauliX+pauliY+pauliZ)
}
