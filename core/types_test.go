// SPDX-License-Identifier: MIT
// Package core_test verifies the arena lifecycle and derived edge fields.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinfoam/core"
	"github.com/katalvlaran/spinfoam/quanta"
)

func TestGraph_IdsAscendInCallOrder(t *testing.T) {
	g := core.NewGraph(0)
	for want := 0; want < 4; want++ {
		id, err := g.AddNode(0, SpinHalf)
		MustNoError(t, err, "AddNode")
		MustEqualInt(t, id, want, "node id")
	}
	MustEqualInt(t, g.NodeCount(), 4, "NodeCount")
}

func TestGraph_EdgeDerivedFields(t *testing.T) {
	g := NewTriangle(t)

	e, err := g.Edge(1)
	MustNoError(t, err, "Edge(1)")

	area, _ := quanta.AreaEigenvalue(SpinOne)
	MustTrue(t, e.Area == area, "Area == AreaEigenvalue(j)")
	MustTrue(t, e.Length == SpinOne*quanta.PlanckLength, "Length == j·l_P")
	MustTrue(t, e.Orientation == OrientPlus, "orientation")
}

func TestGraph_NodeAmplitudeStartsAtOne(t *testing.T) {
	g := NewTriangle(t)
	for _, n := range g.Nodes() {
		MustTrue(t, n.Amplitude == complex(1, 0), "node amplitude")
	}
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph(0)
	_, _ = g.AddNode(1, SpinHalf)
	_, _ = g.AddNode(1, SpinHalf)

	_, err := g.AddEdge(0, 5, SpinOne, OrientPlus, HolonomyUnit)
	MustErrorIs(t, err, core.ErrUnknownNode, "unknown target")

	_, err = g.AddEdge(-1, 1, SpinOne, OrientPlus, HolonomyUnit)
	MustErrorIs(t, err, core.ErrUnknownNode, "unknown source")

	_, err = g.AddEdge(1, 1, SpinOne, OrientPlus, HolonomyUnit)
	MustErrorIs(t, err, core.ErrSelfLoop, "self loop")

	_, err = g.AddEdge(0, 1, SpinOne, 0, HolonomyUnit)
	MustErrorIs(t, err, core.ErrInvalidOrientation, "orientation 0")

	_, err = g.AddEdge(0, 1, -SpinOne, OrientPlus, HolonomyUnit)
	MustErrorIs(t, err, quanta.ErrInvalidSpin, "negative spin")

	MustEqualInt(t, g.EdgeCount(), 0, "no edge accepted")
}

func TestGraph_AddNodeValidation(t *testing.T) {
	g := core.NewGraph(0)

	_, err := g.AddNode(3, -SpinHalf)
	MustErrorIs(t, err, quanta.ErrInvalidSpin, "negative j_val")

	_, err = g.AddNode(3, math.NaN())
	MustErrorIs(t, err, quanta.ErrInvalidSpin, "NaN j_val")

	_, err = g.AddNode(-1, SpinHalf)
	MustErrorIs(t, err, core.ErrValenceMismatch, "negative valence")
}

func TestGraph_SealFillsIncident(t *testing.T) {
	g := NewTriangle(t)

	want := [][]int{{0, 2}, {0, 1}, {1, 2}}
	for i, n := range g.Nodes() {
		MustEqualInt(t, len(n.Incident), n.Valence, "len(Incident) == Valence")
		for k := range want[i] {
			MustEqualInt(t, n.Incident[k], want[i][k], "incident order")
		}
	}
	MustTrue(t, g.Sealed(), "Sealed")
}

func TestGraph_SealRejectsValenceMismatch(t *testing.T) {
	g := core.NewGraph(0)
	_, _ = g.AddNode(3, SpinHalf)
	_, _ = g.AddNode(1, SpinHalf)
	_, _ = g.AddEdge(0, 1, SpinOne, OrientPlus, HolonomyUnit)

	MustErrorIs(t, g.Seal(), core.ErrValenceMismatch, "Seal")
	MustTrue(t, !g.Sealed(), "not sealed after failure")
}

func TestGraph_SealedRejectsInsertion(t *testing.T) {
	g := NewTriangle(t)

	_, err := g.AddNode(0, SpinHalf)
	MustErrorIs(t, err, core.ErrSealed, "AddNode after Seal")

	_, err = g.AddEdge(0, 1, SpinOne, OrientPlus, HolonomyUnit)
	MustErrorIs(t, err, core.ErrSealed, "AddEdge after Seal")

	MustNoError(t, g.Seal(), "second Seal is a no-op")
}

func TestGraph_LookupErrors(t *testing.T) {
	g := NewTriangle(t)

	_, err := g.Edge(3)
	MustErrorIs(t, err, core.ErrOutOfRangeEdgeID, "Edge(3)")
	_, err = g.Edge(-1)
	MustErrorIs(t, err, core.ErrOutOfRangeEdgeID, "Edge(-1)")
	_, err = g.Node(3)
	MustErrorIs(t, err, core.ErrUnknownNode, "Node(3)")
	MustTrue(t, !g.HasNode(-1), "HasNode(-1)")
}

func TestEdge_SharesEndpoint(t *testing.T) {
	a := core.Edge{Source: 0, Target: 1}
	b := core.Edge{Source: 2, Target: 1}
	c := core.Edge{Source: 2, Target: 3}

	MustTrue(t, a.SharesEndpoint(b), "a~b")
	MustTrue(t, !a.SharesEndpoint(c), "a!~c")
	MustTrue(t, a.Touches(1) && !a.Touches(2), "Touches")
}

func TestGraph_NodeSnapshotsDoNotAlias(t *testing.T) {
	g := NewTriangle(t)
	before, err := g.Node(0)
	MustNoError(t, err, "Node(0)")
	want := before.Incident[0]

	nodes := g.Nodes()
	nodes[0].Incident[0] = 99
	before.Incident[0] = 98

	after, err := g.Node(0)
	MustNoError(t, err, "Node(0)")
	MustEqualInt(t, after.Incident[0], want, "incident list after caller writes")
	MustEqualInt(t, g.Clone().Nodes()[0].Incident[0], want, "clone incident list")
}
