// SPDX-License-Identifier: MIT

// Package compare runs the Kruskal and Prim engines side by side on the same
// road network, checks that they agree, and aggregates their timings over
// repeated trials.
//
// The engines in package prim_kruskal are pure; this package owns everything
// around them: the clock used for elapsed-time measurement, structured
// logging, prometheus metrics, and the verification verdict.
//
// Verification
//
//	A Comparison passes when both trees span the whole graph (the graph is
//	connected) and their totals differ by less than Config.Tolerance
//	(DefaultTolerance = 1e-2). A disconnected graph or a divergence beyond the
//	tolerance is reported through Comparison.Passed and the metrics, never as
//	an error.
//
// Trials
//
//	Harness.Trials calls a Loader once per trial so that every trial works on
//	a freshly constructed graph, runs the trials sequentially and
//	summarizes per-engine mean/min/max,
//	the faster engine and the speedup factor max(mean)/min(mean).
package compare
