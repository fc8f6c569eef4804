// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinfoam/builder"
	"github.com/katalvlaran/spinfoam/evolve"
	"github.com/katalvlaran/spinfoam/matrix"
	"github.com/katalvlaran/spinfoam/operators"
	"github.com/katalvlaran/spinfoam/report"
	"github.com/katalvlaran/spinfoam/spectrum"
)

func TestSpectrumAndPlot(t *testing.T) {
	entries, err := spectrum.Generate(10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Spectrum(&buf, entries))
	require.NoError(t, report.AreaPlot(&buf, entries, report.DefaultPlotWidth))
	out := buf.String()

	assert.Contains(t, out, "QUANTUM GEOMETRY SPECTRUM")
	assert.Contains(t, out, "n= 9 j= 4.5: "+strings.Repeat("█", report.DefaultPlotWidth))
	assert.Contains(t, out, "n= 0 j= 0.0:")
	assert.Contains(t, out, "0.000000e+00 m²")
}

func TestAreaPlot_SingleZeroEntry(t *testing.T) {
	entries, err := spectrum.Generate(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.AreaPlot(&buf, entries, 10))
	assert.NotContains(t, buf.String(), "█")
}

func TestNetwork_GaussVerdicts(t *testing.T) {
	g, err := builder.Tetrahedral()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Network(context.Background(), &buf, "TETRAHEDRAL SPIN NETWORK", g))
	out := buf.String()

	f0, err := operators.CurvatureOperator(g, 0)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("Node 0: F=%.6f %+.6fi", real(f0), imag(f0)))

	assert.Contains(t, out, "Nodes: 4  Edges: 6  Faces: 4")
	assert.Contains(t, out, "Edge 5: 2 -> 3, j=3.0")
	// Node 0 only has outgoing edges.
	assert.Contains(t, out, "Node 0: VIOLATED")
}

func TestNetwork_CurvatureHonoursContext(t *testing.T) {
	g, err := builder.Cubical()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	assert.ErrorIs(t, report.Network(ctx, &buf, "CUBIC SPIN NETWORK", g), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestIncidence_Residuals(t *testing.T) {
	g, err := builder.Tetrahedral()
	require.NoError(t, err)
	im, err := matrix.Incidence(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Incidence(&buf, im))
	out := buf.String()

	assert.Contains(t, out, "Incidence (nodes × edges)")
	// Node 0 emits edges with j = 0.5, 1 and 1.5.
	assert.Contains(t, out, "Node 0: residual=3.000000")
}

func TestRunAndScalars(t *testing.T) {
	g, err := builder.Octahedral()
	require.NoError(t, err)
	traj, err := evolve.New().Run(context.Background(), g, 1e-3, 2)
	require.NoError(t, err)
	rep, err := operators.Cosmology(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Constants(&buf))
	require.NoError(t, report.Trajectory(&buf, traj, 1e-3))
	require.NoError(t, report.Transition(&buf, g, g))
	require.NoError(t, report.Hamiltonian(&buf, operators.HamiltonianConstraint(g)))
	require.NoError(t, report.Wilson(&buf, "0 -> 1", 1))
	require.NoError(t, report.Cosmology(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "step   2:")
	assert.Contains(t, out, fmt.Sprintf("Probability: %.6e", operators.TransitionProbability(g, g)))
	assert.Contains(t, out, "Wilson loop trace: 1.000000 +0.000000i")
	assert.Contains(t, out, "Hubble time:")
	assert.Contains(t, out, "γ = 0.237532957566")
}

func TestRunsAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Runs(&buf, nil))
	require.NoError(t, report.Runs(&buf, []evolve.RunInfo{{ID: "abc", Network: "cubical", Steps: 3, TimeStep: 1e-3}}))
	require.NoError(t, report.CosmologySkipped(&buf, operators.ErrDegenerateVolume))
	out := buf.String()

	assert.Contains(t, out, "no runs")
	assert.Contains(t, out, "abc  cubical")
	assert.Contains(t, out, "steps=3")
	assert.Contains(t, out, "skipped: ")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrorSurfaces(t *testing.T) {
	assert.Error(t, report.Constants(failWriter{}))
	assert.Error(t, report.Transition(failWriter{}, nil, nil))
}
