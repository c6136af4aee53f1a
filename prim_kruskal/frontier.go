// SPDX-License-Identifier: MIT

package prim_kruskal

import "github.com/katalvlaran/roadmst/core"

// seedEdgeID marks the frontier entry for Prim's start node, which reaches
// the tree without crossing an edge. Real edge IDs may be any int, so the
// seed flag, not this value, is what identifies the entry.
const seedEdgeID = -1

// frontierItem is a candidate arc from the tree (parent) to node.
type frontierItem struct {
	dist   float64
	node   core.NodeID
	parent core.NodeID
	edgeID int
	seed   bool
}

// less defines the frontier order: distance, then node ID, then edge ID.
// parent and seed never take part in the comparison.
func (a frontierItem) less(b frontierItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.node != b.node {
		return a.node < b.node
	}

	return a.edgeID < b.edgeID
}

// frontier implements heap.Interface as a min-heap of frontierItem.
type frontier []frontierItem

// Len returns the number of entries in the frontier.
func (f frontier) Len() int { return len(f) }

// Less reports whether entry i should be popped before entry j.
func (f frontier) Less(i, j int) bool { return f[i].less(f[j]) }

// Swap swaps entries at indices i and j.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a new entry; called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
