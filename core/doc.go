// Package core defines the spin-network data model: Node, Edge and Graph.
//
// A Graph owns two arenas, one of nodes and one of edges. Cross references are
// plain integer ids (Edge.Source/Target, Node.Incident), never pointers, so ids
// remain stable public identifiers for Wilson-loop sequences, Gauss lookups and
// the evolution engine.
//
// Lifecycle:
//
//	g := core.NewGraph(faces)        // empty, unsealed
//	g.AddNode(valence, jVal)         // ids 0,1,2,... in call order
//	g.AddEdge(src, dst, j, orient, h) // ids 0,1,2,... in call order
//	g.Seal()                         // fills Incident lists, checks valence
//
// After Seal the topology is frozen. The only remaining mutations are the edge
// holonomies (SetHolonomies) and the two cached scalars (SetCache); both are
// reserved for the evolution engine and the builders. Cached amplitude/action are
// never recomputed implicitly: whoever mutates holonomies must refresh them.
//
// Derived fields:
//
//	Edge.Length = J · PlanckLength
//	Edge.Area   = AreaEigenvalue(J)
//	Node volume is NOT stored; see operators.VolumeOperator.
//
// Concurrency:
//
// A sync.RWMutex guards the arenas. Every getter returns copies (Node, Edge,
// []Node, []Edge), so read-only operators can run concurrently between
// evolution steps without observing a half-applied update.
//
// Errors:
//
//	ErrOutOfRangeEdgeID   – edge id outside [0, EdgeCount)
//	ErrUnknownNode        – node id outside [0, NodeCount)
//	ErrSelfLoop           – edge source equals target
//	ErrInvalidOrientation – orientation other than ±1
//	ErrValenceMismatch    – incident-edge count differs from declared valence
//	ErrSealed             – insertion after Seal
//	ErrNotSealed          – operation that needs a sealed graph
//	ErrHolonomyCount      – SetHolonomies length differs from EdgeCount
//
// Negative spins surface as quanta.ErrInvalidSpin.
package core
