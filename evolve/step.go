// SPDX-License-Identifier: MIT
// Package: spinfoam/evolve
//
// step.go - one discrete evolution step.
//
// Complexity: O(E³) (two O(E²) curvature sums per edge).

package evolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/operators"
)

// Step advances g by dt. The update is computed on a working copy of the edge
// arena and committed with a single SetHolonomies call, so readers never see a
// half-updated network.
func Step(g *core.Graph, dt float64) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodStep, ErrNilGraph)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%s: dt=%g: %w", methodStep, dt, ErrBadTimeStep)
	}
	if !g.Sealed() {
		return fmt.Errorf("%s: %w", methodStep, core.ErrNotSealed)
	}

	nodes, edges := g.Nodes(), g.Edges()
	advance(edges, dt)

	hs := make([]complex128, len(edges))
	for i := range edges {
		hs[i] = edges[i].Holonomy
	}
	if err := g.SetHolonomies(hs); err != nil {
		return fmt.Errorf("%s: %w", methodStep, err)
	}
	g.SetCache(operators.AmplitudeOf(nodes, edges), operators.ActionOf(edges))

	return nil
}

// advance applies the update to edges in place, in id order.
func advance(edges []core.Edge, dt float64) {
	for i := range edges {
		cs := operators.CurvatureOf(edges, edges[i].Source)
		ct := operators.CurvatureOf(edges, edges[i].Target)
		update := 1 + complex(0, dt)*(cs+ct)/2
		if update != 1 {
			edges[i].Holonomy *= update
		}
	}
}
