// SPDX-License-Identifier: MIT
// Package: spinfoam/operators
//
// amplitude.go - spin-network amplitude and Regge action.
//
// Contract:
//   - Amplitude = ∏_e (2j_e+1) · ∏_{n: valence≥3} √(j_val(n)+1), edges first.
//   - Action = Σ_{i<j, e_i ~ e_j} (π/3)·Area(e_i), where e_i ~ e_j iff they share an endpoint.
//
// Complexity:
//   - Amplitude O(V+E); Action O(E²).

package operators

import (
	"math"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

// minVertexValence is the smallest valence that contributes a vertex factor.
const minVertexValence = 3

// deficitAngle is the fixed deficit angle assigned to every adjacent edge pair.
const deficitAngle = quanta.Pi / 3.0

// SpinNetworkAmplitude returns the product amplitude of g. A nil graph yields 0.
func SpinNetworkAmplitude(g *core.Graph) complex128 {
	if g == nil {
		return 0
	}

	return AmplitudeOf(g.Nodes(), g.Edges())
}

// AmplitudeOf computes the amplitude from node and edge snapshots.
func AmplitudeOf(nodes []core.Node, edges []core.Edge) complex128 {
	amp := complex(1, 0)
	for i := range edges {
		amp *= complex(2.0*edges[i].J+1.0, 0)
	}
	for i := range nodes {
		if nodes[i].Valence >= minVertexValence {
			amp *= complex(math.Sqrt(nodes[i].JVal+1.0), 0)
		}
	}

	return amp
}

// ReggeAction returns the simplified Regge action of g. A nil graph yields 0.
func ReggeAction(g *core.Graph) float64 {
	if g == nil {
		return 0
	}

	return ActionOf(g.Edges())
}

// ActionOf computes the Regge action over an edge snapshot. A pair (i, j) with
// i < j contributes once, using the cached area of edge i.
func ActionOf(edges []core.Edge) float64 {
	var action float64
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].SharesEndpoint(edges[j]) {
				action += edges[i].Area * deficitAngle
			}
		}
	}

	return action
}
