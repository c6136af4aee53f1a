// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dsu"
)

// Components partitions the nodes of g into connected components.
// Each component lists node IDs in ascending order; components are ordered
// by their smallest node ID. A connected graph yields a single component.
//
// Complexity: O(V + E·α(V)) plus O(C log C) to order C components.
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}

	ids := g.NodeIDs()
	set := dsu.New(len(ids))
	for _, e := range g.Edges() {
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		set.Union(u, v)
	}

	// Groups lists dense indices in ascending order, and the dense index
	// follows ascending node ID.
	groups := set.Groups()
	out := make([][]core.NodeID, 0, len(groups))
	for _, members := range groups {
		comp := make([]core.NodeID, len(members))
		for i, m := range members {
			comp[i] = ids[m]
		}
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}
