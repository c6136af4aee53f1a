// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dsu"
)

// Kruskal computes the Minimum Spanning Tree of g with a disjoint-set union
// (path compression + union by rank).
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//
// Steps:
//  1. Validate g; graphs with ≤ 1 node yield an empty tree.
//  2. Copy the edge list and sort it by (Weight asc, ID asc).
//  3. Address nodes by their dense index (rank among sorted NodeIDs).
//  4. Initialize a DSU over all |V| nodes.
//  5. For each edge: skip self-loops; if Union(u, v) merges two components,
//     accept the edge and add its weight.
//  6. Stop as soon as |V|−1 edges are accepted. If edges run out first the
//     graph is disconnected and the partial forest is returned without error.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g *core.Graph) (Tree, error) {
	// 1. Validate input.
	if g == nil {
		return Tree{}, ErrInvalidGraph
	}
	n := g.Len()
	tree := Tree{Nodes: n, Edges: make([]core.Edge, 0, max(n-1, 0))}
	if n <= 1 {
		return tree, nil
	}

	// 2. Fresh sort buffer; ties on weight fall back to the edge ID.
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		return edges[i].ID < edges[j].ID
	})

	// 3-4. Dense universe for the DSU.
	set := dsu.New(n)

	// 5. Greedy acceptance.
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		if !set.Union(u, v) {
			// Endpoints already connected: the edge would close a cycle.
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.Total += e.Weight

		// 6. Early exit once the tree spans every node.
		if len(tree.Edges) == n-1 {
			break
		}
	}

	return tree, nil
}
