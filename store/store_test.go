// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinfoam/builder"
	"github.com/katalvlaran/spinfoam/evolve"
	"github.com/katalvlaran/spinfoam/quanta"
	"github.com/katalvlaran/spinfoam/store"
)

func openMem(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_RoundTripsEngineRun(t *testing.T) {
	s := openMem(t)
	g, err := builder.Cubical()
	require.NoError(t, err)

	traj, err := evolve.New(evolve.WithStore(s), evolve.WithNetwork("cubical")).
		Run(context.Background(), g, quanta.PlanckTime, 12)
	require.NoError(t, err)

	frames, err := s.Frames(traj.RunID)
	require.NoError(t, err)
	assert.Equal(t, traj.Frames, frames, "frames come back in step order")

	info, err := s.Run(traj.RunID)
	require.NoError(t, err)
	assert.Equal(t, "cubical", info.Network)
	assert.Equal(t, 12, info.Steps)
	assert.Equal(t, quanta.PlanckTime, info.TimeStep)
}

func TestStore_Runs(t *testing.T) {
	s := openMem(t)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.BeginRun(evolve.RunInfo{ID: "b", Network: "x", Started: t0.Add(time.Second)}))
	require.NoError(t, s.BeginRun(evolve.RunInfo{ID: "a", Network: "y", Started: t0}))
	require.NoError(t, s.RecordFrame("a", evolve.Frame{Step: 0, Amplitude: complex(1, -2)}))

	runs, err := s.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)

	frames, err := s.Frames("a")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, complex(1, -2), frames[0].Amplitude)

	frames, err = s.Frames("b")
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestStore_RunNotFound(t *testing.T) {
	_, err := openMem(t).Run("missing")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := store.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.BeginRun(evolve.RunInfo{ID: "r1", Steps: 3}))
	require.NoError(t, s.Close())

	s, err = store.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	info, err := s.Run("r1")
	require.NoError(t, err)
	assert.Equal(t, 3, info.Steps)
}

func requireSameBits(t *testing.T, want, got evolve.Frame) {
	t.Helper()
	require.Equal(t, want.Step, got.Step)
	pairs := [][2]float64{
		{real(want.Amplitude), real(got.Amplitude)},
		{imag(want.Amplitude), imag(got.Amplitude)},
		{want.Action, got.Action},
		{real(want.Hamiltonian), real(got.Hamiltonian)},
		{imag(want.Hamiltonian), imag(got.Hamiltonian)},
	}
	for i, p := range pairs {
		require.Equal(t, math.Float64bits(p[0]), math.Float64bits(p[1]), "step %d field %d", want.Step, i)
	}
}

func TestStore_NonFiniteFrames(t *testing.T) {
	s := openMem(t)
	require.NoError(t, s.BeginRun(evolve.RunInfo{ID: "nan"}))

	want := evolve.Frame{
		Step:        3,
		Amplitude:   complex(math.Inf(1), math.NaN()),
		Action:      math.Inf(-1),
		Hamiltonian: complex(math.NaN(), -0.0),
	}
	require.NoError(t, s.RecordFrame("nan", want))

	frames, err := s.Frames("nan")
	require.NoError(t, err)
	require.Len(t, frames, 1)
	requireSameBits(t, want, frames[0])
}

func TestStore_DivergingRunCompletes(t *testing.T) {
	s := openMem(t)
	g, err := builder.Octahedral()
	require.NoError(t, err)

	traj, err := evolve.New(evolve.WithStore(s)).Run(context.Background(), g, 1, 40)
	require.NoError(t, err)

	frames, err := s.Frames(traj.RunID)
	require.NoError(t, err)
	require.Len(t, frames, len(traj.Frames))
	for i := range frames {
		requireSameBits(t, traj.Frames[i], frames[i])
	}
}
