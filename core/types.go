// SPDX-License-Identifier: MIT
// Package: spinfoam/core
//
// types.go - Node, Edge, Graph and the sentinel error set.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRangeEdgeID indicates an edge id outside the edge arena.
	ErrOutOfRangeEdgeID = errors.New("core: edge id out of range")

	// ErrUnknownNode indicates a node id outside the node arena.
	ErrUnknownNode = errors.New("core: unknown node id")

	// ErrSelfLoop indicates an edge whose source equals its target.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidOrientation indicates an orientation other than +1 or -1.
	ErrInvalidOrientation = errors.New("core: orientation must be +1 or -1")

	// ErrValenceMismatch indicates a node whose incident-edge count differs from its valence.
	ErrValenceMismatch = errors.New("core: incident edges do not match valence")

	// ErrSealed indicates an insertion into a graph whose topology is frozen.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrNotSealed indicates an operation that requires a sealed graph.
	ErrNotSealed = errors.New("core: graph is not sealed")

	// ErrHolonomyCount indicates a holonomy batch whose length differs from EdgeCount.
	ErrHolonomyCount = errors.New("core: holonomy count mismatch")
)

// Node is a quantum of volume.
type Node struct {
	// ID is the node's index in the arena (0-based, ascending).
	ID int

	// Valence is the expected number of incident edges.
	Valence int

	// Incident lists incident edge ids in ascending order; filled by Seal.
	Incident []int

	// JVal is the node spin label (real, intended half-integer, ≥ 0).
	JVal float64

	// Amplitude is carried for completeness and initialised to 1+0i.
	Amplitude complex128
}

// Edge is a quantum of area carrying a holonomy.
type Edge struct {
	ID     int
	Source int
	Target int

	// J is the edge spin label (≥ 0).
	J float64

	// Length is J·PlanckLength.
	Length float64

	// Area is AreaEigenvalue(J).
	Area float64

	// Orientation is the sign convention (+1 or -1) used by the Gauss constraint.
	Orientation int

	// Holonomy is a complex scalar stand-in for an SU(2) element; not unit-constrained.
	Holonomy complex128
}

// Touches reports whether node id is one of the edge's endpoints.
func (e Edge) Touches(id int) bool {
	return e.Source == id || e.Target == id
}

// SharesEndpoint reports whether e and o have at least one endpoint in common.
func (e Edge) SharesEndpoint(o Edge) bool {
	return e.Source == o.Source ||
		e.Source == o.Target ||
		e.Target == o.Source ||
		e.Target == o.Target
}

// Graph is a spin network: an owned node arena, an owned edge arena, a declared
// face count, and the cached amplitude/action.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	faces  int
	sealed bool

	nodes []Node
	edges []Edge

	amplitude complex128
	action    float64
}

// NewGraph returns an empty, unsealed Graph with the given declared face count.
// The face count is recorded as-is and never validated.
// Complexity: O(1).
func NewGraph(faces int) *Graph {
	return &Graph{faces: faces}
}
