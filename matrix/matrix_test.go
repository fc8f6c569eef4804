// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinfoam/builder"
	"github.com/katalvlaran/spinfoam/matrix"
	"github.com/katalvlaran/spinfoam/operators"
)

func TestDense_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_MulAndTranspose(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	y, err := a.MulVec([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = a.MulVec([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	at := a.T()
	v, _ := at.At(0, 1)
	assert.Equal(t, 3.0, v)

	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	v, _ = p.At(0, 0)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, "[5 11]\n[11 25]\n", p.String())

	b, _ := matrix.NewDense(3, 1)
	_, err = matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIncidence_GaussResidualsMatchOperators(t *testing.T) {
	for _, name := range builder.NetworkNames() {
		g, err := builder.Network(name)
		require.NoError(t, err)

		im, err := matrix.Incidence(g)
		require.NoError(t, err)
		assert.Equal(t, g.NodeCount(), im.Mat.Rows())
		assert.Equal(t, g.EdgeCount(), im.Mat.Cols())

		res, err := im.GaussResiduals()
		require.NoError(t, err)
		for id, r := range res {
			want, err := operators.GaussResidual(g, id)
			require.NoError(t, err)
			assert.InDelta(t, want, r, 1e-12, "%s node %d", name, id)
		}
	}
}

func TestIncidence_Laplacian(t *testing.T) {
	g, err := builder.Tetrahedral()
	require.NoError(t, err)
	im, err := matrix.Incidence(g)
	require.NoError(t, err)

	l, err := im.Laplacian()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := l.At(i, j)
			if i == j {
				assert.Equal(t, 3.0, v)
			} else {
				assert.Equal(t, -1.0, v)
			}
		}
	}

	_, err = matrix.Incidence(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}
