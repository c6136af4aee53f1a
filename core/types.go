// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Arc, Graph value types and core sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrUnknownNode indicates an edge endpoint or a query references a node
	// that is not part of the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateNode indicates the same NodeID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates the same edge ID was used twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge id")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")
)

// NodeID identifies a location in the road network.
type NodeID int

// Point is a planar coordinate attached to a node for reporting purposes.
type Point struct {
	X float64
	Y float64
}

// Node is a location. Coord is nil when the input carried no coordinate.
type Node struct {
	ID    NodeID
	Coord *Point
}

// Edge is an undirected candidate road segment between From and To.
type Edge struct {
	// ID is the caller-assigned identifier; unique within a Graph.
	ID int

	// From and To are the endpoints. Orientation carries no meaning for
	// traversal; engines report accepted edges in the orientation they used.
	From NodeID
	To   NodeID

	// Weight is the segment length; finite and ≥ 0.
	Weight float64
}

// Other returns the endpoint of e opposite to n. For a self-loop it returns n.
func (e Edge) Other(n NodeID) NodeID {
	if e.From == n {
		return e.To
	}

	return e.From
}

// Arc is one half of an undirected edge as seen from a node's adjacency list.
type Arc struct {
	To     NodeID
	EdgeID int
	Weight float64
}

// Graph is an immutable, undirected, weighted multigraph.
//
// nodes is sorted by ID and index maps an ID to its position there, which is
// also the node's dense index used by the engines. adj is indexed the same way.
type Graph struct {
	nodes []Node
	index map[NodeID]int
	edges []Edge
	adj   [][]Arc
}
