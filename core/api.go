// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No algorithms here; operators live in package operators.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes     int
	Edges     int
	Faces     int
	Sealed    bool
	Amplitude complex128
	Action    float64

	// TotalEdgeSpin is Σ J over all edges.
	TotalEdgeSpin float64
	// MaxValence is the largest declared node valence (0 for an empty graph).
	MaxValence int
}

// Stats returns a consistent snapshot under a single read lock.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Nodes:     len(g.nodes),
		Edges:     len(g.edges),
		Faces:     g.faces,
		Sealed:    g.sealed,
		Amplitude: g.amplitude,
		Action:    g.action,
	}
	for i := range g.edges {
		s.TotalEdgeSpin += g.edges[i].J
	}
	for i := range g.nodes {
		if g.nodes[i].Valence > s.MaxValence {
			s.MaxValence = g.nodes[i].Valence
		}
	}
	return s
}
