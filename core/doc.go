// SPDX-License-Identifier: MIT

// Package core defines the immutable road-network Graph consumed by the MST
// engines, together with its Node, Edge and Arc value types.
//
// A Graph G = (V, E) is undirected and weighted:
//
//   - Nodes carry an integer NodeID and an optional planar coordinate (Point).
//     Coordinates are passthrough metadata for reporting; no algorithm reads them.
//   - Edges carry a caller-assigned integer ID, two endpoints and a finite,
//     non-negative Weight (a road-segment length). Parallel edges between the
//     same endpoints are distinct candidates as long as their IDs differ.
//   - Self-loops are stored but can never join two components, so both MST
//     engines ignore them.
//
// Construction
//
//	NewGraph(nodes, edges) validates the whole input before anything is built:
//	  - every endpoint must be a declared node   → ErrUnknownNode
//	  - node IDs must be unique                   → ErrDuplicateNode
//	  - edge IDs must be unique                   → ErrDuplicateEdge
//	  - weights must be finite and ≥ 0            → ErrBadWeight
//	All violations are reported together in one error (go-multierror), each one
//	wrapping its sentinel so callers can branch with errors.Is.
//
//	FromEdges(edges) derives the node set from the edge endpoints.
//
// Immutability
//
//	A Graph never changes after construction. Nodes(), Edges() and Neighbors()
//	return fresh copies, so two engines (or two goroutines) reading the same
//	Graph cannot observe each other.
//
// Determinism
//
//	Nodes() and NodeIDs() are sorted by ID; Edges() keeps input order;
//	Neighbors(id) keeps input order of the incident edges.
package core
