// File: methods_clone.go
// Role: Deep copies of spin networks.
// Determinism:
//   - Ids, order, holonomies and cached scalars are carried over verbatim.
// Concurrency:
//   - Read lock on the source only; the clone shares no memory with it.

package core

import "slices"

// Clone returns a deep copy of g: arenas, incident lists, sealed flag and cached
// amplitude/action. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		faces:     g.faces,
		sealed:    g.sealed,
		nodes:     make([]Node, len(g.nodes)),
		edges:     make([]Edge, len(g.edges)),
		amplitude: g.amplitude,
		action:    g.action,
	}
	for i, n := range g.nodes {
		clone.nodes[i] = n.detached()
	}
	copy(clone.edges, g.edges)

	return clone
}

// detached returns n with its own copy of the incident list.
func (n Node) detached() Node {
	n.Incident = slices.Clone(n.Incident)
	return n
}
