// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadmst/core"
)

// ErrInvalidGraph indicates that a nil graph was passed to an engine.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrStartNotFound indicates that Prim's explicit start node is not in the graph.
var ErrStartNotFound = errors.New("prim_kruskal: start node not found")

// ErrUnknownMethod indicates an unsupported Method value.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrDisconnected is returned by Tree.Err when the tree does not span all nodes.
// Engines themselves never return it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Method names an MST algorithm.
type Method string

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal Method = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a start node using a min-heap).
const MethodPrim Method = "prim"

// Methods lists the supported algorithms in canonical order.
var Methods = []Method{MethodKruskal, MethodPrim}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }

// ParseMethod converts a case-insensitive name into a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodKruskal, MethodPrim:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Tree is the result of one engine run.
//
// Fields:
//
//	Edges — accepted edges in acceptance order (Kruskal) or visitation order (Prim).
//	Total — sum of accepted edge weights.
//	Nodes — |V| of the input graph, kept so completeness can be judged later.
type Tree struct {
	Edges []core.Edge
	Total float64
	Nodes int
}

// Len returns the number of accepted edges.
func (t Tree) Len() int { return len(t.Edges) }

// Complete reports whether the tree spans every node of the input graph:
// exactly |V|−1 edges, or no edges for graphs with at most one node.
func (t Tree) Complete() bool {
	if t.Nodes <= 1 {
		return len(t.Edges) == 0
	}

	return len(t.Edges) == t.Nodes-1
}

// Missing returns how many edges short of a spanning tree the result is.
func (t Tree) Missing() int {
	if t.Nodes <= 1 {
		return 0
	}

	return t.Nodes - 1 - len(t.Edges)
}

// EdgeIDs returns the IDs of the accepted edges in result order.
func (t Tree) EdgeIDs() []int {
	ids := make([]int, len(t.Edges))
	for i, e := range t.Edges {
		ids[i] = e.ID
	}

	return ids
}

// Err returns nil for a complete tree, otherwise an error wrapping
// ErrDisconnected that states how many edges were found.
func (t Tree) Err() error {
	if t.Complete() {
		return nil
	}

	return fmt.Errorf("%d of %d edges: %w", len(t.Edges), t.Nodes-1, ErrDisconnected)
}

// MSTOptions configures which MST algorithm to run and, for Prim, where to start.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method   — one of MethodKruskal or MethodPrim.
//	Start    — start node for Prim; meaningful only when HasStart is true.
//	HasStart — false means "start from the smallest NodeID".
type MSTOptions struct {
	Method   Method
	Start    core.NodeID
	HasStart bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithStart returns an Option that sets Prim's start node. Kruskal ignores it.
func WithStart(id core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Start = id
		opts.HasStart = true
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no explicit start node.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

func resolve(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Compute selects and runs the MST algorithm chosen by the options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, opts...).
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Tree, error) {
	cfg := resolve(opts)
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return Tree{}, fmt.Errorf("Compute(%q): %w", cfg.Method, ErrUnknownMethod)
	}
}
