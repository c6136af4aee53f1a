// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

// Prim computes the Minimum Spanning Tree of g by growing outwards from a
// start node. Pass WithStart to choose it; the default is the smallest NodeID.
//
// Error Conditions:
//   - ErrInvalidGraph  : if g is nil.
//   - ErrStartNotFound : if WithStart names a node that is not in g.
//
// Steps:
//  1. Validate g and resolve the start node before allocating anything.
//  2. Push a seed entry for the start node: distance 0, seed flag set.
//  3. While the frontier is non-empty and not every node is visited:
//     a. Pop the minimum (distance, node, edge ID) entry.
//     b. If its node is already visited, discard it (lazy deletion).
//     c. Mark the node visited; unless it is the seed, accept the arc
//     parent→node and add its weight.
//     d. Push an entry for every arc to an unvisited neighbour.
//  4. Return the tree. A disconnected graph ends with an empty frontier and
//     yields the tree of the start node's component, without error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (Tree, error) {
	// 1. Validate input and resolve the start node.
	if g == nil {
		return Tree{}, ErrInvalidGraph
	}
	cfg := resolve(opts)
	start := cfg.Start
	if cfg.HasStart {
		if !g.HasNode(start) {
			return Tree{}, fmt.Errorf("Prim: start %d: %w", start, ErrStartNotFound)
		}
	} else {
		var ok bool
		if start, ok = g.MinNodeID(); !ok {
			// Empty graph: nothing to span.
			return Tree{Edges: []core.Edge{}}, nil
		}
	}

	n := g.Len()
	tree := Tree{Nodes: n, Edges: make([]core.Edge, 0, n-1)}
	visited := make([]bool, n)
	seen := 0

	// 2. Seed the frontier.
	pq := &frontier{}
	heap.Push(pq, frontierItem{node: start, parent: start, edgeID: seedEdgeID, seed: true})

	// 3. Main loop.
	for pq.Len() > 0 && seen < n {
		item := heap.Pop(pq).(frontierItem)
		idx, _ := g.Index(item.node)
		if visited[idx] {
			// Stale entry: a cheaper arc already reached this node.
			continue
		}
		visited[idx] = true
		seen++

		if !item.seed {
			tree.Edges = append(tree.Edges, core.Edge{
				ID:     item.edgeID,
				From:   item.parent,
				To:     item.node,
				Weight: item.dist,
			})
			tree.Total += item.dist
		}

		arcs, err := g.Neighbors(item.node)
		if err != nil {
			return Tree{}, err
		}
		for _, a := range arcs {
			j, _ := g.Index(a.To)
			if visited[j] {
				continue
			}
			heap.Push(pq, frontierItem{
				dist:   a.Weight,
				node:   a.To,
				parent: item.node,
				edgeID: a.EdgeID,
			})
		}
	}

	// 4. Partial or complete, the tree is returned as-is.
	return tree, nil
}
