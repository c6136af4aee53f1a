// SPDX-License-Identifier: MIT

package dsu

// DSU is a disjoint-set forest over 0..n-1.
type DSU struct {
	parent []int
	rank   []uint8
	sets   int
}

// New creates n singleton sets. n ≤ 0 yields an empty universe.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set and compresses the path from x.
//
// Steps:
//  1. Walk parent pointers until a self-parented root is reached.
//  2. Walk the same chain again, re-pointing each node at the root.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y. It reports false, and changes
// nothing, when x and y were already in the same set; for Kruskal that means
// the candidate edge would close a cycle.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a representative.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Len returns the size of the universe.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Groups returns the members of every set keyed by representative.
// Members are listed in ascending order.
func (d *DSU) Groups() map[int][]int {
	groups := make(map[int][]int, d.sets)
	for x := range d.parent {
		r := d.Find(x)
		groups[r] = append(groups[r], x)
	}

	return groups
}
