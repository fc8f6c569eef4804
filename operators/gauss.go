// SPDX-License-Identifier: MIT
package operators

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinfoam/core"
)

// GaussTolerance bounds |residual| for a node to satisfy the Gauss constraint.
const GaussTolerance = 1e-10

// GaussResidual returns Σ(+j for edges leaving nodeID, −j for edges entering it).
// An edge with both endpoints at nodeID contributes both terms.
func GaussResidual(g *core.Graph, nodeID int) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodGaussResidual, ErrNilGraph)
	}
	if !g.HasNode(nodeID) {
		return 0, fmt.Errorf("%s: node %d: %w", methodGaussResidual, nodeID, core.ErrUnknownNode)
	}

	return residualOf(g.Edges(), nodeID), nil
}

// CheckGaussConstraint reports whether the signed spin sum at nodeID vanishes
// within GaussTolerance.
func CheckGaussConstraint(g *core.Graph, nodeID int) (bool, error) {
	sum, err := GaussResidual(g, nodeID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", methodCheckGauss, err)
	}

	return math.Abs(sum) < GaussTolerance, nil
}

func residualOf(edges []core.Edge, nodeID int) float64 {
	var sum float64
	for i := range edges {
		if edges[i].Source == nodeID {
			sum += edges[i].J
		}
		if edges[i].Target == nodeID {
			sum -= edges[i].J
		}
	}

	return sum
}
