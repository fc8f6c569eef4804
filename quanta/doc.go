// SPDX-License-Identifier: MIT
// Package: spinfoam/quanta
//
// Package quanta is the scalar operator library of spinfoam: physical constants,
// the area and volume eigenvalue formulas, and the simplified SU(2) holonomy element.
//
// Everything here is a pure function of float64 inputs. Nothing in this package
// knows about graphs; core, builder and operators build on top of it.
//
// Contract:
//   - AreaEigenvalue rejects negative (and NaN) spins with ErrInvalidSpin instead of
//     returning NaN.
//   - VolumeEigenvalue is defined for every real input (absolute value under the root).
//   - SU2Element is a deliberately simplified, non-unitary stand-in for exp(iθ n·σ):
//     cos θ + i·sin θ·(φx+φy+φz). It is NOT normalised; downstream operators depend on
//     its exact values.
//
// Units: SI throughout (metres, seconds, kilograms, joules).
package quanta
