// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set union (union-find) over the dense
// universe 0..n-1.
//
// What & Why
//
//   - Kruskal needs to know, for every candidate edge, whether its endpoints
//     already belong to the same component. A DSU answers that in near-constant
//     amortized time: O(α(n)) per operation with both heuristics below.
//
// Heuristics
//
//   - Union by rank: the root of the lower-rank tree is attached under the
//     root of the higher-rank tree. On a rank tie the second argument's root
//     goes under the first argument's root and the surviving rank grows by one.
//
//   - Path compression: Find walks to the root, then re-points every node it
//     passed directly at that root. Both passes are loops, so arbitrarily deep
//     chains never grow the call stack.
//
// Lifecycle
//
//	A DSU is write-once-grow-only: there is no split or remove. Each algorithm
//	run allocates its own instance with New.
//
// Indices outside 0..Len()-1 panic, exactly like out-of-range slice access.
package dsu
