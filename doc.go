// Package roadmst plans road networks as minimum spanning trees and checks
// two classic engines against each other.
//
// Given candidate road segments between city locations, each weighted by
// distance, roadmst selects the subset that connects every location at the
// lowest total length. Two engines compute it independently:
//
//   - Kruskal (edge-oriented): sort all segments, accept each one that joins
//     two separate components of a disjoint-set forest.
//   - Prim (vertex-oriented): grow one tree from a start location, always
//     taking the cheapest segment leaving the tree.
//
// On a connected network both yield the same total weight; the comparison
// harness verifies that and reports their timings.
//
// Packages, leaves first:
//
//	core/         — immutable Graph of locations and weighted segments
//	dsu/          — disjoint-set union with rank and path compression
//	prim_kruskal/ — Kruskal and Prim engines returning a Tree
//	compare/      — timed runs, equivalence check, repeated trials, metrics
//	dataset/      — YAML/JSON road-candidate tables → core.Graph
//	builder/      — seeded random road networks for benchmarks
//	report/       — text tables for runs, comparisons and trials
//	cmd/roadmst/  — command-line front end
//
// Quick start:
//
//	g, _ := dataset.LoadGraph("dataset/testdata/delhi.yaml")
//	h, _ := compare.New(compare.Config{})
//	c, _ := h.Compare(g)
//	fmt.Println(c.Kruskal.Tree.Total, c.Prim.Tree.Total, c.Passed)
//
// A disconnected network is not an error: each engine returns what it could
// span, and the comparison reports Connected=false.
package roadmst
