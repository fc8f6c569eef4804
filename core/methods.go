// SPDX-License-Identifier: MIT
// Package: spinfoam/core
//
// methods.go - arena construction (AddNode/AddEdge/Seal) and read accessors.
//
// Determinism:
//   - Ids are assigned in call order; Seal scans edges in ascending id order.
//   - Getters return copies in id order.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinfoam/quanta"
)

const (
	methodAddNode       = "AddNode"
	methodAddEdge       = "AddEdge"
	methodSeal          = "Seal"
	methodSetHolonomies = "SetHolonomies"
)

// initialNodeAmplitude is the value every node's Amplitude starts from.
const initialNodeAmplitude = complex(1, 0)

// AddNode appends a node with the given valence and spin and returns its id.
// Returns ErrSealed after Seal, quanta.ErrInvalidSpin for jVal < 0 or NaN,
// ErrValenceMismatch for a negative valence.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(valence int, jVal float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return -1, fmt.Errorf("%s: %w", methodAddNode, ErrSealed)
	}
	if jVal < 0 || math.IsNaN(jVal) {
		return -1, fmt.Errorf("%s: j_val=%g: %w", methodAddNode, jVal, quanta.ErrInvalidSpin)
	}
	if valence < 0 {
		return -1, fmt.Errorf("%s: valence=%d: %w", methodAddNode, valence, ErrValenceMismatch)
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{
		ID:        id,
		Valence:   valence,
		Incident:  make([]int, 0, valence),
		JVal:      jVal,
		Amplitude: initialNodeAmplitude,
	})

	return id, nil
}

// AddEdge appends an edge source→target with spin j, orientation and initial
// holonomy, deriving Length and Area from j. Both endpoints must already exist.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target int, j float64, orientation int, holonomy complex128) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return -1, fmt.Errorf("%s: %w", methodAddEdge, ErrSealed)
	}
	if !g.hasNodeLocked(source) {
		return -1, fmt.Errorf("%s: source %d: %w", methodAddEdge, source, ErrUnknownNode)
	}
	if !g.hasNodeLocked(target) {
		return -1, fmt.Errorf("%s: target %d: %w", methodAddEdge, target, ErrUnknownNode)
	}
	if source == target {
		return -1, fmt.Errorf("%s: %d→%d: %w", methodAddEdge, source, target, ErrSelfLoop)
	}
	if orientation != 1 && orientation != -1 {
		return -1, fmt.Errorf("%s: orientation=%d: %w", methodAddEdge, orientation, ErrInvalidOrientation)
	}
	area, err := quanta.AreaEigenvalue(j)
	if err != nil {
		return -1, fmt.Errorf("%s: %d→%d: %w", methodAddEdge, source, target, err)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{
		ID:          id,
		Source:      source,
		Target:      target,
		J:           j,
		Length:      j * quanta.PlanckLength,
		Area:        area,
		Orientation: orientation,
		Holonomy:    holonomy,
	})

	return id, nil
}

// Seal freezes the topology: it fills every node's Incident list by scanning all
// edges (ascending id) against the node id, then checks each list against the
// declared valence. Sealing twice is a no-op.
// Complexity: O(V·E).
func (g *Graph) Seal() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return nil
	}

	for i := range g.nodes {
		incident := g.nodes[i].Incident[:0]
		for e := range g.edges {
			if g.edges[e].Touches(i) {
				incident = append(incident, e)
			}
		}
		if len(incident) != g.nodes[i].Valence {
			return fmt.Errorf("%s: node %d has %d incident edges, valence %d: %w",
				methodSeal, i, len(incident), g.nodes[i].Valence, ErrValenceMismatch)
		}
		g.nodes[i].Incident = incident
	}
	g.sealed = true

	return nil
}

// Sealed reports whether Seal has completed.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sealed
}

// Faces returns the declared (unvalidated) face count.
func (g *Graph) Faces() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.faces
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// HasNode reports whether id addresses a node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hasNodeLocked(id)
}

func (g *Graph) hasNodeLocked(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// Node returns a copy of node id, or ErrUnknownNode.
// The Incident slice is shared with the arena and must be treated as read-only.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	return g.nodes[id].detached(), nil
}

// Edge returns a copy of edge id, or ErrOutOfRangeEdgeID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("edge %d: %w", id, ErrOutOfRangeEdgeID)
	}
	return g.edges[id], nil
}

// Nodes returns a snapshot of all nodes in id order. Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.detached()
	}
	return out
}

// Edges returns a snapshot of all edges in id order. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Holonomies returns the edge holonomies in id order.
func (g *Graph) Holonomies() []complex128 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]complex128, len(g.edges))
	for i := range g.edges {
		out[i] = g.edges[i].Holonomy
	}
	return out
}

// Amplitude returns the cached amplitude. It is only as current as the last SetCache.
func (g *Graph) Amplitude() complex128 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.amplitude
}

// Action returns the cached action. It is only as current as the last SetCache.
func (g *Graph) Action() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.action
}

// SetCache overwrites the cached amplitude and action.
func (g *Graph) SetCache(amplitude complex128, action float64) {
	g.mu.Lock()
	g.amplitude = amplitude
	g.action = action
	g.mu.Unlock()
}

// SetHolonomies replaces every edge holonomy with hs[i] in one critical section.
// Returns ErrNotSealed before Seal and ErrHolonomyCount on a length mismatch.
// The cached amplitude/action are left untouched.
func (g *Graph) SetHolonomies(hs []complex128) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.sealed {
		return fmt.Errorf("%s: %w", methodSetHolonomies, ErrNotSealed)
	}
	if len(hs) != len(g.edges) {
		return fmt.Errorf("%s: got %d, want %d: %w", methodSetHolonomies, len(hs), len(g.edges), ErrHolonomyCount)
	}
	for i := range g.edges {
		g.edges[i].Holonomy = hs[i]
	}
	return nil
}
