// SPDX-License-Identifier: MIT
package quanta_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinfoam/quanta"
)

func TestAreaEigenvalue_ZeroSpin(t *testing.T) {
	a, err := quanta.AreaEigenvalue(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)
}

func TestAreaEigenvalue_ClosedForm(t *testing.T) {
	a, err := quanta.AreaEigenvalue(0.5)
	require.NoError(t, err)

	want := 8.0 * math.Pi * quanta.Immirzi * quanta.Hbar * quanta.G * math.Sqrt(0.75) /
		(quanta.C * quanta.C * quanta.C)
	assert.InDelta(t, want, a, want*1e-12)
}

func TestAreaEigenvalue_NonDecreasing(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 200; n++ {
		a, err := quanta.AreaEigenvalue(0.5 * float64(n))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a, prev, "n=%d", n)
		prev = a
	}
}

func TestAreaEigenvalue_InvalidSpin(t *testing.T) {
	for _, j := range []float64{-0.5, -1e-300, math.NaN()} {
		_, err := quanta.AreaEigenvalue(j)
		require.ErrorIs(t, err, quanta.ErrInvalidSpin, "j=%v", j)
	}
}

func TestMustAreaEigenvalue_Panics(t *testing.T) {
	assert.Panics(t, func() { quanta.MustAreaEigenvalue(-1) })
	assert.NotPanics(t, func() { quanta.MustAreaEigenvalue(1) })
}

func TestVolumeEigenvalue(t *testing.T) {
	assert.Equal(t, 0.0, quanta.VolumeEigenvalue(0, 1, 2))

	v := quanta.VolumeEigenvalue(1, 1, 1)
	assert.InDelta(t, quanta.PlanckVolume, v, quanta.PlanckVolume*1e-12)

	// absolute value under the root: sign of the inputs does not matter
	assert.Equal(t, quanta.VolumeEigenvalue(1, 2, 3), quanta.VolumeEigenvalue(-1, 2, 3))
}

func TestSU2Element_NotNormalised(t *testing.T) {
	h := quanta.SU2Element(math.Pi/4, 0.5, 0.5, 0.5)

	assert.InDelta(t, math.Cos(math.Pi/4), real(h), 1e-15)
	assert.InDelta(t, 1.5*math.Sin(math.Pi/4), imag(h), 1e-15)
	assert.Greater(t, cmplx.Abs(h), 1.0)
}

func TestSU2Element_ZeroAngleIsIdentity(t *testing.T) {
	assert.Equal(t, complex(1, 0), quanta.SU2Element(0, 0.3, 0.3, 0.4))
}
