// SPDX-License-Identifier: MIT
// Package: spinfoam/quanta
//
// errors.go - sentinel errors for the operator library.
//
// Callers branch with errors.Is; messages are stable.

package quanta

import "errors"

// ErrInvalidSpin indicates a spin label below zero (or NaN) was passed to an
// eigenvalue formula whose square root is undefined there.
var ErrInvalidSpin = errors.New("quanta: invalid spin")
