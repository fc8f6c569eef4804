// SPDX-License-Identifier: MIT
package operators

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("operators: nil graph")

	// ErrDegenerateVolume indicates a network whose average node volume is zero.
	ErrDegenerateVolume = errors.New("operators: average node volume is zero")
)

// Method tags used as error prefixes.
const (
	methodCheckGauss    = "CheckGaussConstraint"
	methodGaussResidual = "GaussResidual"
	methodWilsonLoop    = "WilsonLoop"
	methodCurvature     = "CurvatureOperator"
	methodCurvatureFld  = "CurvatureField"
	methodCosmology     = "Cosmology"
)
