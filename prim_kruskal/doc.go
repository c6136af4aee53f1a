// SPDX-License-Identifier: MIT

// Package prim_kruskal computes Minimum Spanning Trees (MST) of a *core.Graph
// road network with two classical greedy algorithms: Kruskal's (edge-oriented)
// and Prim's (vertex-oriented).
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with |V|−1 edges, contains no cycle, and minimizes Σ w(e) over T.
//
//   - Road planning: nodes are city locations, edges are candidate road segments weighted by
//     length. The MST is the cheapest set of roads that keeps every location reachable.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (Tree, error)
//
//   - Strategy: sort all edges by (Weight, ID) ascending, then accept every edge whose endpoints
//     are still in different components of a dsu.DSU. Stop at |V|−1 accepted edges.
//
//   - Complexity: O(E log E) time dominated by the sort; O(V + E) space.
//
//   - Prim(g *core.Graph, opts ...Option) (Tree, error)
//
//   - Strategy: grow one tree from a start node (default: the smallest NodeID) using a
//     min-priority frontier with lazy deletion: stale entries stay in the heap and are discarded
//     when popped for an already visited node.
//
//   - Complexity: O(E log E) time (every arc may be pushed once), O(V + E) space.
//
// Determinism
//
//   - Kruskal breaks equal weights by ascending edge ID.
//   - Prim orders frontier entries by (distance, node ID, edge ID). The seed entry carries an
//     explicit sentinel edge ID and a seed flag instead of an absent parent, so the ordering is
//     total and never depends on heap internals.
//   - Re-running either engine on the same Graph yields the same edges in the same order.
//
// Disconnected Graphs
//
//	Neither engine fails on a disconnected graph. Kruskal returns a spanning forest of every
//	component; Prim returns the tree of the start node's component. Tree.Complete reports
//	whether |V|−1 edges were found, and Tree.Err converts an incomplete tree into ErrDisconnected
//	for callers that want to treat it as an error.
//
// Error Conditions
//
//   - ErrInvalidGraph  : graph is nil.
//   - ErrStartNotFound : Prim was given an explicit start node that is not in the graph.
//     Checked before any working structure is allocated.
//   - ErrUnknownMethod : Compute was asked for a method other than MethodKruskal/MethodPrim.
//
// Purity
//
//	Both engines are pure functions of their input: they do not read clocks, log, or retain
//	state between calls. Every call allocates its own sort buffer, DSU and frontier, so
//	concurrent calls on a shared Graph are safe. Timing belongs to the caller (see package
//	compare).
package prim_kruskal
