// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for spinfoam/core.
//
// Purpose:
//   - Provide a small deterministic fixture (a triangle network) and assertion helpers.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spinfoam/core"
)

// Spins and holonomies shared by the fixtures (avoid magic numbers in test bodies).
const (
	SpinHalf = 0.5
	SpinOne  = 1.0
	SpinTwo  = 2.0

	OrientPlus = 1

	TriangleFaces = 1
)

// HolonomyUnit is the identity holonomy.
var HolonomyUnit = complex(1, 0)

// NewTriangle RETURNS a sealed 3-node, 3-edge cycle with valence 2 everywhere.
//
// Layout: 0→1 (j=0.5), 1→2 (j=1), 2→0 (j=2).
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(TriangleFaces)
	for i := 0; i < 3; i++ {
		_, err := g.AddNode(2, SpinHalf*float64(i+1))
		MustNoError(t, err, "AddNode")
	}
	_, err := g.AddEdge(0, 1, SpinHalf, OrientPlus, HolonomyUnit)
	MustNoError(t, err, "AddEdge(0,1)")
	_, err = g.AddEdge(1, 2, SpinOne, OrientPlus, HolonomyUnit)
	MustNoError(t, err, "AddEdge(1,2)")
	_, err = g.AddEdge(2, 0, SpinTwo, OrientPlus, HolonomyUnit)
	MustNoError(t, err, "AddEdge(2,0)")
	MustNoError(t, g.Seal(), "Seal")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: error = %v, want %v", op, err, target)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true", op)
	}
}
