// SPDX-License-Identifier: MIT
package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinfoam/quanta"
	"github.com/katalvlaran/spinfoam/spectrum"
)

func TestGenerate_First(t *testing.T) {
	s, err := spectrum.Generate(1)
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, spectrum.Entry{N: 0, J: 0, Area: 0, Volume: 0, Degeneracy: 1}, s[0])
}

func TestGenerate_Rows(t *testing.T) {
	s, err := spectrum.Generate(10)
	require.NoError(t, err)
	require.Len(t, s, 10)

	for n, e := range s {
		assert.Equal(t, n, e.N)
		assert.Equal(t, float64(n)/2, e.J)
		assert.Equal(t, float64(n)+1, e.Degeneracy)

		area, err := quanta.AreaEigenvalue(e.J)
		require.NoError(t, err)
		assert.Equal(t, area, e.Area)
		assert.Equal(t, quanta.VolumeEigenvalue(e.J, e.J, e.J), e.Volume)
		if n > 0 {
			assert.GreaterOrEqual(t, e.Area, s[n-1].Area)
		}
	}
	assert.Equal(t, s[9].Area, spectrum.MaxArea(s))
}

func TestGenerate_Sizes(t *testing.T) {
	s, err := spectrum.Generate(0)
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Zero(t, spectrum.MaxArea(s))

	_, err = spectrum.Generate(-1)
	assert.ErrorIs(t, err, spectrum.ErrBadSize)
}
