// SPDX-License-Identifier: MIT
// Package: spinfoam/builder
//
// impl_platonic.go - table-driven constructor for the baked spin networks.
//
// Contract:
//   • Adds nodes 0..n-1 with valence and spin from the table.
//   • Emits edges in table order with j = 0.5·(code+1), the resolved
//     orientation and holonomy SU2Element(seed).
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Time: O(V+E) for the selected network (constants: V≤8, E≤12).

package builder

import (
	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

// platonicShell returns a Constructor for the network described by t.
func platonicShell(t networkTable) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Nodes in ascending id order.
		for i := 0; i < t.nodes; i++ {
			if _, err := g.AddNode(t.valence, t.nodeSpin(i)); err != nil {
				return builderErrorf(t.method, "AddNode(%d)", joinErr(err), i)
			}
		}

		// 2) One holonomy value shared by every edge.
		s := cfg.seedFor(t)
		h := quanta.SU2Element(s.Theta, s.Px, s.Py, s.Pz)

		// 3) Edges in table order; ids follow slice order.
		for _, e := range t.edges {
			if _, err := g.AddEdge(e.U, e.V, edgeSpin(e.Code), cfg.orientation, h); err != nil {
				return builderErrorf(t.method, "AddEdge(%d→%d)", joinErr(err), e.U, e.V)
			}
		}

		return nil
	}
}
