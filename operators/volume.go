// SPDX-License-Identifier: MIT
// Package: spinfoam/operators
//
// volume.go - volume operator and Hamiltonian constraint.
//
// Contract:
//   - VolumeOperator: 0 when valence < 4; otherwise l_P³·√|Σ_{i<j<k<valence} √|j_val³||.
//   - HamiltonianConstraint: Σ_nodes Σ_{edges touching node} (h_e − 1)·V(node).
//
// Complexity:
//   - VolumeOperator O(valence³); HamiltonianConstraint O(V·E).

package operators

import (
	"math"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

// minVolumeValence is the smallest valence with a non-zero volume.
const minVolumeValence = 4

// VolumeOperator returns the simplified volume of n. Every triple of incident
// slots contributes the same √|j³| term, since only the node spin is used.
func VolumeOperator(n core.Node) float64 {
	if n.Valence < minVolumeValence {
		return 0
	}

	j := n.JVal
	var acc float64
	for a := 0; a < n.Valence; a++ {
		for b := a + 1; b < n.Valence; b++ {
			for c := b + 1; c < n.Valence; c++ {
				acc += math.Sqrt(math.Abs(j * j * j))
			}
		}
	}

	return quanta.PlanckLength * quanta.PlanckLength * quanta.PlanckLength * math.Sqrt(math.Abs(acc))
}

// HamiltonianConstraint returns the simplified Hamiltonian of g. A nil graph yields 0.
func HamiltonianConstraint(g *core.Graph) complex128 {
	if g == nil {
		return 0
	}

	return HamiltonianOf(g.Nodes(), g.Edges())
}

// HamiltonianOf computes the Hamiltonian from node and edge snapshots.
func HamiltonianOf(nodes []core.Node, edges []core.Edge) complex128 {
	var h complex128
	for i := range nodes {
		v := complex(VolumeOperator(nodes[i]), 0)
		for e := range edges {
			if edges[e].Touches(nodes[i].ID) {
				h += (edges[e].Holonomy - 1) * v
			}
		}
	}

	return h
}
