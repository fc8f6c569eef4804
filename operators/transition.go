// SPDX-License-Identifier: MIT
package operators

import (
	"math/cmplx"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

// TransitionAmplitude returns A_i · conj(A_f) · exp(i·(S_f − S_i)/ħ) using the
// cached amplitude and action of both graphs. Either graph nil yields 0.
func TransitionAmplitude(initial, final *core.Graph) complex128 {
	if initial == nil || final == nil {
		return 0
	}

	phase := (final.Action() - initial.Action()) / quanta.Hbar

	return initial.Amplitude() * cmplx.Conj(final.Amplitude()) * cmplx.Exp(complex(0, phase))
}

// TransitionProbability returns |TransitionAmplitude(initial, final)|².
func TransitionProbability(initial, final *core.Graph) float64 {
	a := cmplx.Abs(TransitionAmplitude(initial, final))

	return a * a
}
