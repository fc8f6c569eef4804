// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// variants_platonic.go - baked tables for the Platonic spin networks.
//
// Design:
//   • Single source of truth for node count, valence, node spin, faces,
//     holonomy seed and the ordered edge list of every NetworkName.
//   • Edge order is part of the contract: edge ids follow slice order, and
//     ReggeAction / evolution iterate in id order.
//
// Never mutate existing tables; add a new NetworkName instead.

package builder

import "github.com/katalvlaran/spinfoam/quanta"

// spinEdge is a directed source→target edge with a spin code.
type spinEdge struct {
	U, V int
	Code int
}

// holonomySeed holds the SU2Element parameters of a network's initial holonomy.
type holonomySeed struct {
	Theta, Px, Py, Pz float64
}

// networkTable describes one baked network. Node i has spin jBase + i·jStep.
type networkTable struct {
	method  string
	nodes   int
	valence int
	jBase   float64 // spin of node 0
	jStep   float64 // spin increment per node id
	faces   int
	seed    holonomySeed
	edges   []spinEdge
}

var networkTables = map[NetworkName]networkTable{
	// -------------------------------------------------------------------------
	// Tetrahedral: complete graph K4; spin codes 0..5 give j = 0.5 … 3.0;
	// node spins 0.5, 1.0, 1.5, 2.0.
	// -------------------------------------------------------------------------
	NetworkTetrahedral: {
		method:  MethodTetrahedral,
		nodes:   4,
		valence: 3,
		jBase:   0.5,
		jStep:   0.5,
		faces:   4,
		seed:    holonomySeed{Theta: piOver(4), Px: 0.5, Py: 0.5, Pz: 0.5},
		edges: []spinEdge{
			{U: 0, V: 1, Code: 0}, {U: 0, V: 2, Code: 1}, {U: 0, V: 3, Code: 2},
			{U: 1, V: 2, Code: 3}, {U: 1, V: 3, Code: 4},
			{U: 2, V: 3, Code: 5},
		},
	},

	// -------------------------------------------------------------------------
	// Cubical: bottom face 0-1-2-3 (code 0), top face 4-5-6-7 (code 1),
	// verticals 0-4 … 3-7 (code 2).
	// -------------------------------------------------------------------------
	NetworkCubical: {
		method:  MethodCubical,
		nodes:   8,
		valence: 3,
		jBase:   0.5,
		jStep:   0.25,
		faces:   6,
		seed:    holonomySeed{Theta: piOver(6), Px: 0.3, Py: 0.3, Pz: 0.4},
		edges: []spinEdge{
			{U: 0, V: 1, Code: 0}, {U: 1, V: 2, Code: 0}, {U: 2, V: 3, Code: 0}, {U: 3, V: 0, Code: 0},
			{U: 4, V: 5, Code: 1}, {U: 5, V: 6, Code: 1}, {U: 6, V: 7, Code: 1}, {U: 7, V: 4, Code: 1},
			{U: 0, V: 4, Code: 2}, {U: 1, V: 5, Code: 2}, {U: 2, V: 6, Code: 2}, {U: 3, V: 7, Code: 2},
		},
	},

	// -------------------------------------------------------------------------
	// Octahedral: poles {0,1} joined to the equator {2,3,4,5} (code 0);
	// equator ring 2-4-3-5-2 (code 1). Every node is 4-valent.
	// -------------------------------------------------------------------------
	NetworkOctahedral: {
		method:  MethodOctahedral,
		nodes:   6,
		valence: 4,
		jBase:   0.5,
		jStep:   0.5,
		faces:   8,
		seed:    holonomySeed{Theta: piOver(5), Px: 0.2, Py: 0.3, Pz: 0.5},
		edges: []spinEdge{
			{U: 0, V: 2, Code: 0}, {U: 0, V: 3, Code: 0}, {U: 0, V: 4, Code: 0}, {U: 0, V: 5, Code: 0},
			{U: 1, V: 2, Code: 0}, {U: 1, V: 3, Code: 0}, {U: 1, V: 4, Code: 0}, {U: 1, V: 5, Code: 0},
			{U: 2, V: 4, Code: 1}, {U: 2, V: 5, Code: 1}, {U: 3, V: 4, Code: 1}, {U: 3, V: 5, Code: 1},
		},
	},
}

// nodeSpin returns the spin of node i.
func (t networkTable) nodeSpin(i int) float64 {
	return t.jBase + float64(i)*t.jStep
}

// piOver returns π/n.
func piOver(n float64) float64 {
	return quanta.Pi / n
}
