// SPDX-License-Identifier: MIT
// Package: spinfoam/operators
//
// curvature.go - holonomy-pair curvature at a node, sequential and concurrent.
//
// Contract:
//   - Curvature(n) = Σ_{i<j} h_i·h_j over pairs where (e_i.src=n ∧ e_j.tgt=n) or
//     (e_i.tgt=n ∧ e_j.src=n).
//   - CurvatureField fans nodes out over an errgroup; each node keeps the
//     sequential accumulation order, so results match CurvatureOperator exactly.
//
// Complexity:
//   - CurvatureOperator O(E²); CurvatureField O(V·E²) work, bounded by the
//     concurrency limit.

package operators

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spinfoam/core"
)

// CurvatureOperator returns the curvature at nodeID.
func CurvatureOperator(g *core.Graph, nodeID int) (complex128, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodCurvature, ErrNilGraph)
	}
	if !g.HasNode(nodeID) {
		return 0, fmt.Errorf("%s: node %d: %w", methodCurvature, nodeID, core.ErrUnknownNode)
	}

	return CurvatureOf(g.Edges(), nodeID), nil
}

// CurvatureOf computes the curvature at nodeID over an edge snapshot.
// Unknown ids simply match no edge and yield 0.
func CurvatureOf(edges []core.Edge, nodeID int) complex128 {
	var curv complex128
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			inOut := edges[i].Source == nodeID && edges[j].Target == nodeID
			outIn := edges[i].Target == nodeID && edges[j].Source == nodeID
			if inOut || outIn {
				curv += edges[i].Holonomy * edges[j].Holonomy
			}
		}
	}

	return curv
}

// CurvatureField returns the curvature at every node, indexed by node id.
// The edge snapshot is taken once; ctx cancellation aborts pending nodes.
func CurvatureField(ctx context.Context, g *core.Graph) ([]complex128, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodCurvatureFld, ErrNilGraph)
	}

	edges := g.Edges()
	field := make([]complex128, g.NodeCount())

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for id := range field {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			field[id] = CurvatureOf(edges, id)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCurvatureFld, err)
	}

	return field, nil
}
