package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/core"
)

// delhiEdges is the reference Delhi road-candidate set with mirrored rows
// folded into one edge per ID. Components: {1..6} and {7,8}.
func delhiEdges() []core.Edge {
	return []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 3.75432447162338},
		{ID: 2, From: 1, To: 2, Weight: 3.75432447162338},
		{ID: 3, From: 1, To: 3, Weight: 20.4871202876504},
		{ID: 4, From: 1, To: 4, Weight: 19.1877809458002},
		{ID: 5, From: 4, To: 5, Weight: 201.987464765257},
		{ID: 6, From: 4, To: 5, Weight: 131.072874250845},
		{ID: 7, From: 4, To: 5, Weight: 131.072874250845},
		{ID: 8, From: 5, To: 6, Weight: 1008.13308093641},
		{ID: 9, From: 7, To: 8, Weight: 113.853447528611},
		{ID: 10, From: 7, To: 8, Weight: 113.853447528611},
	}
}

// Pinned regression baselines for the Delhi data.
const (
	delhiKruskalTotal   = 1296.48862842094
	delhiPrimFrom1Total = 1182.635180892329
	delhiBridgeWeight   = 500.0
	delhiConnectedTotal = delhiKruskalTotal + delhiBridgeWeight
	totalTolerance      = 1e-9
)

func delhiGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(delhiEdges())
	require.NoError(t, err)

	return g
}

// delhiConnectedGraph bridges the two Delhi components with edge 11 (6–7).
func delhiConnectedGraph(t testing.TB) *core.Graph {
	t.Helper()
	edges := append(delhiEdges(), core.Edge{ID: 11, From: 6, To: 7, Weight: delhiBridgeWeight})
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

// randomConnected builds a connected graph with n nodes: a shuffled chain
// plus extra random edges. Weights are drawn from a small integer range so
// that ties are frequent and totals are exact.
func randomConnected(t testing.TB, r *rand.Rand, n, extra int) *core.Graph {
	t.Helper()
	perm := r.Perm(n)
	edges := make([]core.Edge, 0, n-1+extra)
	id := 0
	for i := 1; i < n; i++ {
		id++
		edges = append(edges, core.Edge{
			ID:     id,
			From:   core.NodeID(perm[i-1] * 3),
			To:     core.NodeID(perm[i] * 3),
			Weight: float64(1 + r.Intn(6)),
		})
	}
	for i := 0; i < extra; i++ {
		id++
		edges = append(edges, core.Edge{
			ID:     id,
			From:   core.NodeID(r.Intn(n) * 3),
			To:     core.NodeID(r.Intn(n) * 3),
			Weight: float64(1 + r.Intn(6)),
		})
	}
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: core.NodeID(i * 3)}
	}
	g, err := core.NewGraph(nodes, edges)
	require.NoError(t, err)

	return g
}
