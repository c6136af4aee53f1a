// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction (NewGraph, FromEdges) and read-only accessors.
// Determinism:
//   - Nodes()/NodeIDs() sorted by ID asc; Edges() in input order.
//   - Neighbors(id) in input order of incident edges.

package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// NewGraph validates nodes and edges and builds an immutable Graph.
//
// Steps:
//  1. Collect every violation (duplicate node, duplicate edge ID, unknown
//     endpoint, bad weight) into a single multierror; fail before building.
//  2. Sort nodes by ID and assign dense indices 0..n-1.
//  3. Copy edges and build the undirected adjacency lists
//     (one Arc per endpoint, a single Arc for self-loops).
//
// Inputs are copied; later changes to the caller's slices do not leak in.
// Complexity: O(V log V + E) time, O(V + E) memory.
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	var errs error

	// 1) Validate nodes and remember the declared set.
	declared := make(map[NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := declared[n.ID]; dup {
			errs = multierror.Append(errs, fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNode))
			continue
		}
		declared[n.ID] = struct{}{}
	}

	// 1b) Validate edges against the declared node set.
	seen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.ID]; dup {
			errs = multierror.Append(errs, fmt.Errorf("edge %d: %w", e.ID, ErrDuplicateEdge))
		}
		seen[e.ID] = struct{}{}

		if _, ok := declared[e.From]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("edge %d: endpoint %d: %w", e.ID, e.From, ErrUnknownNode))
		}
		if _, ok := declared[e.To]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("edge %d: endpoint %d: %w", e.ID, e.To, ErrUnknownNode))
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			errs = multierror.Append(errs, fmt.Errorf("edge %d: weight %v: %w", e.ID, e.Weight, ErrBadWeight))
		}
	}
	if errs != nil {
		return nil, errs
	}

	// 2) Sorted, deep-copied node list and dense index.
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		index: make(map[NodeID]int, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		g.nodes[i] = copyNode(n)
	}
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i].ID < g.nodes[j].ID })
	for i, n := range g.nodes {
		g.index[n.ID] = i
	}

	// 3) Edges and adjacency.
	copy(g.edges, edges)
	g.adj = make([][]Arc, len(g.nodes))
	for _, e := range g.edges {
		g.addArc(e.From, e)
		if e.To != e.From {
			g.addArc(e.To, e)
		}
	}

	return g, nil
}

// addArc records e in the adjacency list of its endpoint at.
func (g *Graph) addArc(at NodeID, e Edge) {
	i := g.index[at]
	g.adj[i] = append(g.adj[i], Arc{To: e.Other(at), EdgeID: e.ID, Weight: e.Weight})
}

// FromEdges builds a Graph whose node set is exactly the set of edge
// endpoints. Nodes carry no coordinates.
func FromEdges(edges []Edge) (*Graph, error) {
	ids := make(map[NodeID]struct{}, 2*len(edges))
	nodes := make([]Node, 0, 2*len(edges))
	for _, e := range edges {
		for _, id := range [2]NodeID{e.From, e.To} {
			if _, ok := ids[id]; ok {
				continue
			}
			ids[id] = struct{}{}
			nodes = append(nodes, Node{ID: id})
		}
	}

	return NewGraph(nodes, edges)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Size returns the number of edges, self-loops and parallel edges included.
func (g *Graph) Size() int { return len(g.edges) }

// Nodes returns a copy of all nodes sorted by ID.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = copyNode(n)
	}

	return out
}

// NodeIDs returns all node IDs in ascending order.
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}

	return out
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return copyNode(g.nodes[i]), true
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the dense 0-based index of id: its rank among the sorted
// node IDs. Engines use it to address array-backed working structures.
func (g *Graph) Index(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// MinNodeID returns the smallest node ID; ok is false for an empty graph.
func (g *Graph) MinNodeID() (id NodeID, ok bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}

	return g.nodes[0].ID, true
}

// Edges returns a copy of all edges in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of the arcs leaving id, in input order.
// Returns ErrUnknownNode if id is not part of the graph.
func (g *Graph) Neighbors(id NodeID) ([]Arc, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrUnknownNode)
	}
	out := make([]Arc, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// copyNode detaches the coordinate pointer from the source node.
func copyNode(n Node) Node {
	if n.Coord != nil {
		p := *n.Coord
		n.Coord = &p
	}

	return n
}
