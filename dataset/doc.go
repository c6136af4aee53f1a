// Package dataset loads road-candidate tables into a core.Graph.
//
// A payload is a YAML (or JSON) document with a name and a list of rows.
// Each row describes one candidate road segment as seen from its start
// location:
//
//	name: delhi
//	rows:
//	  - {x: 712537.658923, y: 3144490.8587764, start: 1, end: 2, edge: 1, distance: 3.75432447162338}
//
// Tables are commonly written with every segment listed once from each
// endpoint. Rows that share an edge ID, connect the same pair of locations
// (in either orientation) and carry the same distance fold into one edge.
// Two rows with the same edge ID that disagree on endpoints or distance are
// a conflict and the payload is rejected with ErrConflictingEdge.
//
// Location coordinates are taken from the first row that starts at that
// location. They are passed through to core.Node and never influence the
// spanning tree.
//
// Row fields are checked with go-playground/validator struct tags before
// folding; core.NewGraph then enforces the graph invariants.
package dataset
