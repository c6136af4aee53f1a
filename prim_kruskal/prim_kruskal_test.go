package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dsu"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

// buildTriangle constructs A—B (1), B—C (2), A—C (3) with A=1, B=2, C=3.
// Its MST is {1—2, 2—3} with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges([]core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 1},
		{ID: 2, From: 2, To: 3, Weight: 2},
		{ID: 3, From: 1, To: 3, Weight: 3},
	})
	require.NoError(t, err)

	return g
}

// pairs renders tree edges as undirected "u-v" keys.
func pairs(tree prim_kruskal.Tree) map[string]bool {
	out := make(map[string]bool, tree.Len())
	for _, e := range tree.Edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return out
}

func TestValidation_NilGraph(t *testing.T) {
	_, errK := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, errK, prim_kruskal.ErrInvalidGraph)

	_, errP := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, errP, prim_kruskal.ErrInvalidGraph)
}

func TestValidation_StartNotFound(t *testing.T) {
	g := buildTriangle(t)

	tree, err := prim_kruskal.Prim(g, prim_kruskal.WithStart(42))
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)
	assert.Contains(t, err.Error(), "42")
	assert.Empty(t, tree.Edges)

	empty, err := core.NewGraph(nil, nil)
	require.NoError(t, err)
	_, err = prim_kruskal.Prim(empty, prim_kruskal.WithStart(1))
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)
}

func TestEmptyGraph(t *testing.T) {
	g, err := core.NewGraph(nil, nil)
	require.NoError(t, err)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, k.Edges)
	assert.True(t, k.Complete())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Empty(t, p.Edges)
	assert.True(t, p.Complete())
}

func TestSingleNodeGraph(t *testing.T) {
	g, err := core.NewGraph([]core.Node{{ID: 9}}, nil)
	require.NoError(t, err)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, k.Edges)
	assert.Zero(t, k.Total)
	assert.True(t, k.Complete())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Empty(t, p.Edges)
	assert.Zero(t, p.Total)
	assert.NoError(t, p.Err())
}

func TestTwoNodesOneEdge(t *testing.T) {
	edge := core.Edge{ID: 5, From: 1, To: 2, Weight: 7.5}
	g, err := core.FromEdges([]core.Edge{edge})
	require.NoError(t, err)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge}, k.Edges)
	assert.Equal(t, 7.5, k.Total)

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge}, p.Edges)

	p2, err := prim_kruskal.Prim(g, prim_kruskal.WithStart(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{ID: 5, From: 2, To: 1, Weight: 7.5}}, p2.Edges)
}

func TestKruskal_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tree.Total)
	assert.Equal(t, []int{1, 2}, tree.EdgeIDs())
	assert.True(t, pairs(tree)["1-2"])
	assert.True(t, pairs(tree)["2-3"])
}

func TestPrim_Triangle(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, tree.Total)
	assert.Len(t, tree.Edges, 2)
	assert.True(t, pairs(tree)["1-2"])
	assert.True(t, pairs(tree)["2-3"])
}

func TestSelfLoopsIgnored(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{ID: 1, From: 1, To: 1, Weight: 0},
		{ID: 2, From: 1, To: 2, Weight: 4},
		{ID: 3, From: 2, To: 2, Weight: 0},
	})
	require.NoError(t, err)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, k.EdgeIDs())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, p.EdgeIDs())
}

// TestParallelEdgesSelection verifies that both engines pick the lighter of two
// parallel edges, and the lower ID when the parallel edges tie.
func TestParallelEdgesSelection(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 5},
		{ID: 2, From: 1, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, k.EdgeIDs())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, p.EdgeIDs())

	tied, err := core.FromEdges([]core.Edge{
		{ID: 8, From: 1, To: 2, Weight: 3},
		{ID: 4, From: 2, To: 1, Weight: 3},
	})
	require.NoError(t, err)

	k, err = prim_kruskal.Kruskal(tied)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, k.EdgeIDs())

	p, err = prim_kruskal.Prim(tied)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, p.EdgeIDs())
}

// TestPrim_TieBreakByNodeThenEdge checks the frontier order on equal distance:
// the smaller node ID wins before the smaller edge ID is considered.
func TestPrim_TieBreakByNodeThenEdge(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{ID: 1, From: 1, To: 3, Weight: 2},
		{ID: 2, From: 1, To: 2, Weight: 2},
		{ID: 3, From: 2, To: 3, Weight: 2},
	})
	require.NoError(t, err)

	tree, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: 2, From: 1, To: 2, Weight: 2},
		{ID: 1, From: 1, To: 3, Weight: 2},
	}, tree.Edges)
}

func TestKruskal_DelhiForest(t *testing.T) {
	tree, err := prim_kruskal.Kruskal(delhiGraph(t))
	require.NoError(t, err)

	assert.Equal(t, 8, tree.Nodes)
	assert.Equal(t, []int{1, 4, 3, 9, 6, 8}, tree.EdgeIDs())
	assert.InDelta(t, delhiKruskalTotal, tree.Total, totalTolerance)
	assert.False(t, tree.Complete())
	assert.Equal(t, 1, tree.Missing())
	assert.ErrorIs(t, tree.Err(), prim_kruskal.ErrDisconnected)
}

func TestPrim_DelhiPartialTree(t *testing.T) {
	g := delhiGraph(t)

	tree, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 3.75432447162338},
		{ID: 4, From: 1, To: 4, Weight: 19.1877809458002},
		{ID: 3, From: 1, To: 3, Weight: 20.4871202876504},
		{ID: 6, From: 4, To: 5, Weight: 131.072874250845},
		{ID: 8, From: 5, To: 6, Weight: 1008.13308093641},
	}, tree.Edges)
	assert.InDelta(t, delhiPrimFrom1Total, tree.Total, totalTolerance)
	assert.Equal(t, 2, tree.Missing())

	other, err := prim_kruskal.Prim(g, prim_kruskal.WithStart(8))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{ID: 9, From: 8, To: 7, Weight: 113.853447528611}}, other.Edges)
}

func TestDelhiConnected_BothEnginesAgree(t *testing.T) {
	g := delhiConnectedGraph(t)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 9, 6, 11, 8}, k.EdgeIDs())
	assert.InDelta(t, delhiConnectedTotal, k.Total, totalTolerance)
	assert.True(t, k.Complete())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 6, 8, 11, 9}, p.EdgeIDs())
	assert.InDelta(t, delhiConnectedTotal, p.Total, totalTolerance)

	from5, err := prim_kruskal.Prim(g, prim_kruskal.WithStart(5))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 4, 1, 3, 8, 11, 9}, from5.EdgeIDs())

	for _, start := range g.NodeIDs() {
		tree, err := prim_kruskal.Prim(g, prim_kruskal.WithStart(start))
		require.NoError(t, err)
		assert.Len(t, tree.Edges, 7, "start %d", start)
		assert.InDelta(t, k.Total, tree.Total, totalTolerance, "start %d", start)
	}
}

func TestDeterminism_RepeatedRuns(t *testing.T) {
	g := randomConnected(t, rand.New(rand.NewSource(7)), 60, 240)

	k1, _ := prim_kruskal.Kruskal(g)
	k2, _ := prim_kruskal.Kruskal(g)
	assert.Equal(t, k1, k2)

	p1, _ := prim_kruskal.Prim(g)
	p2, _ := prim_kruskal.Prim(g)
	assert.Equal(t, p1, p2)
}

func TestEnginesDoNotMutateGraph(t *testing.T) {
	g := delhiConnectedGraph(t)
	before := g.Edges()

	_, _ = prim_kruskal.Kruskal(g)
	_, _ = prim_kruskal.Prim(g)

	assert.Equal(t, before, g.Edges())
}

func TestCompute_Dispatch(t *testing.T) {
	g := delhiConnectedGraph(t)

	k, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	direct, _ := prim_kruskal.Kruskal(g)
	assert.Equal(t, direct, k)

	p, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithStart(7))
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(7), p.Edges[0].From)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	m, err := prim_kruskal.ParseMethod(" Prim ")
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, m)

	m, err = prim_kruskal.ParseMethod("KRUSKAL")
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodKruskal, m)

	_, err = prim_kruskal.ParseMethod("dijkstra")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// assertSpanningTree checks that tree's edges are acyclic and join every node of g.
func assertSpanningTree(t *testing.T, g *core.Graph, tree prim_kruskal.Tree) {
	t.Helper()
	set := dsu.New(g.Len())
	for _, e := range tree.Edges {
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		assert.True(t, set.Union(u, v), "edge %d closes a cycle", e.ID)
	}
	assert.Equal(t, 1, set.Sets())
}

func TestComparison_MediumGraph(t *testing.T) {
	g := randomConnected(t, rand.New(rand.NewSource(42)), 10, 20)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, k.Edges, g.Len()-1)
	assertSpanningTree(t, g, k)

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Len(t, p.Edges, g.Len()-1)
	assertSpanningTree(t, g, p)

	assert.InDelta(t, k.Total, p.Total, 1e-10)
}

func TestComponents(t *testing.T) {
	comps, err := prim_kruskal.Components(delhiGraph(t))
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{{1, 2, 3, 4, 5, 6}, {7, 8}}, comps)

	comps, err = prim_kruskal.Components(delhiConnectedGraph(t))
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{{1, 2, 3, 4, 5, 6, 7, 8}}, comps)

	g, err := core.NewGraph([]core.Node{{ID: 9}, {ID: 2}}, nil)
	require.NoError(t, err)
	comps, err = prim_kruskal.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.NodeID{{2}, {9}}, comps)

	_, err = prim_kruskal.Components(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}
