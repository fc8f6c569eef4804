// SPDX-License-Identifier: MIT
// Package matrix - oriented incidence view of a spin network.
//
// Signs: +1 at the source row, −1 at the target row. With this convention
// B·j reproduces the Gauss residual (+j outgoing, −j incoming) of every node.
// Self-loops cannot occur (core rejects them).
//
// Complexity:
//   - Incidence: O(|V|·|E|) space, O(|V|+|E|) fill.
//   - GaussResiduals: O(|V|·|E|).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/spinfoam/core"
)

// Incidence marks.
const (
	srcMark = +1.0
	dstMark = -1.0
)

// IncidenceMatrix wraps the |V|×|E| oriented incidence of a network together
// with the edge spins aligned to its columns.
type IncidenceMatrix struct {
	Mat   *Dense    // rows = node ids, cols = edge ids
	Spins []float64 // Spins[e] = J of edge e
}

// Incidence builds the oriented incidence matrix of g.
func Incidence(g *core.Graph) (*IncidenceMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("Incidence: %w", ErrGraphNil)
	}

	edges := g.Edges()
	m, err := NewDense(g.NodeCount(), len(edges))
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}
	spins := make([]float64, len(edges))
	for _, e := range edges {
		if err = m.Set(e.Source, e.ID, srcMark); err != nil {
			return nil, fmt.Errorf("Incidence: edge %d: %w", e.ID, err)
		}
		if err = m.Set(e.Target, e.ID, dstMark); err != nil {
			return nil, fmt.Errorf("Incidence: edge %d: %w", e.ID, err)
		}
		spins[e.ID] = e.J
	}

	return &IncidenceMatrix{Mat: m, Spins: spins}, nil
}

// GaussResiduals returns B·j: the signed spin sum at every node, indexed by node id.
func (im *IncidenceMatrix) GaussResiduals() ([]float64, error) {
	return im.Mat.MulVec(im.Spins)
}

// Laplacian returns B·Bᵀ: node valences on the diagonal and −1 per edge
// joining two distinct nodes off the diagonal.
func (im *IncidenceMatrix) Laplacian() (*Dense, error) {
	return Mul(im.Mat, im.Mat.T())
}
