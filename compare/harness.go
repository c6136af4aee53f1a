// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

// Run is one timed engine invocation: the tree plus its elapsed wall time.
type Run struct {
	Method  prim_kruskal.Method
	Tree    prim_kruskal.Tree
	Elapsed time.Duration
}

// Comparison is the outcome of running both engines on the same graph.
type Comparison struct {
	Kruskal Run
	Prim    Run

	// Delta is |Kruskal.Tree.Total − Prim.Tree.Total|.
	Delta float64

	// Connected is true when both trees span every node.
	Connected bool

	// Passed is true when Connected and Delta < tolerance.
	Passed bool

	// Faster is the engine with the lower elapsed time; Prim on a tie.
	Faster prim_kruskal.Method

	// Speedup is the slower elapsed time over the faster one, with the
	// same zero conventions as TrialReport.Speedup.
	Speedup float64

	// CandidateWeight is the summed weight of every candidate segment.
	CandidateWeight float64

	// Components lists the connected components of the graph when it is
	// not connected; nil otherwise.
	Components [][]core.NodeID
}

// Outcome names the verification result: OutcomePassed, OutcomeDiverged or
// OutcomeDisconnected.
func (c Comparison) Outcome() string {
	switch {
	case !c.Connected:
		return OutcomeDisconnected
	case !c.Passed:
		return OutcomeDiverged
	default:
		return OutcomePassed
	}
}

// Harness times and compares MST engine runs.
type Harness struct {
	cfg Config
}

// New returns a Harness for the given configuration.
func New(cfg Config) (*Harness, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("compare: config validation failed: %w", err)
	}

	return &Harness{cfg: cfg}, nil
}

// Tolerance returns the effective verification tolerance.
func (h *Harness) Tolerance() float64 { return h.cfg.Tolerance }

// Run executes one engine on g and measures its elapsed time around the call.
// Engine precondition errors (nil graph, unknown start node, unknown method)
// are returned wrapped; no metrics are recorded for them.
func (h *Harness) Run(g *core.Graph, method prim_kruskal.Method) (Run, error) {
	opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method)}
	if h.cfg.Start != nil {
		opts = append(opts, prim_kruskal.WithStart(*h.cfg.Start))
	}

	begin := h.cfg.Clock.Now()
	tree, err := prim_kruskal.Compute(g, opts...)
	elapsed := h.cfg.Clock.Now().Sub(begin)
	if err != nil {
		return Run{}, fmt.Errorf("Run(%s): %w", method, err)
	}

	h.cfg.Metrics.observeRun(method, tree, elapsed)
	logger := h.cfg.Logger.WithFields(logrus.Fields{
		"method":  method.String(),
		"edges":   tree.Len(),
		"total":   tree.Total,
		"elapsed": elapsed,
	})
	if tree.Complete() {
		logger.Debug("mst run complete")
	} else {
		logger.WithField("missing", tree.Missing()).Debug("mst run did not span the graph")
	}

	return Run{Method: method, Tree: tree, Elapsed: elapsed}, nil
}

// Compare runs Kruskal and then Prim on g and checks that both produced
// spanning trees of equal total weight within the configured tolerance.
func (h *Harness) Compare(g *core.Graph) (Comparison, error) {
	if g == nil {
		return Comparison{}, fmt.Errorf("Compare: %w", prim_kruskal.ErrInvalidGraph)
	}
	if h.cfg.Start != nil && !g.HasNode(*h.cfg.Start) {
		return Comparison{}, fmt.Errorf("Compare: start %d: %w", *h.cfg.Start, prim_kruskal.ErrStartNotFound)
	}

	k, err := h.Run(g, prim_kruskal.MethodKruskal)
	if err != nil {
		return Comparison{}, err
	}
	p, err := h.Run(g, prim_kruskal.MethodPrim)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{
		Kruskal:   k,
		Prim:      p,
		Delta:     math.Abs(k.Tree.Total - p.Tree.Total),
		Connected: k.Tree.Complete() && p.Tree.Complete(),

		CandidateWeight: g.TotalWeight(),
	}
	c.Passed = c.Connected && c.Delta < h.cfg.Tolerance
	c.Faster, c.Speedup = speedup(k.Elapsed, p.Elapsed)
	if !c.Connected {
		if c.Components, err = prim_kruskal.Components(g); err != nil {
			return Comparison{}, err
		}
	}

	h.cfg.Metrics.observeVerification(c.Outcome())
	logger := h.cfg.Logger.WithFields(logrus.Fields{
		"kruskal_total": k.Tree.Total,
		"prim_total":    p.Tree.Total,
		"delta":         c.Delta,
		"outcome":       c.Outcome(),
		"faster":        c.Faster.String(),
	})
	if c.Passed {
		logger.Info("engines agree")
	} else {
		logger.WithFields(logrus.Fields{
			"err":        errors.Join(k.Tree.Err(), p.Tree.Err()),
			"components": len(c.Components),
		}).Warn("verification failed")
	}

	return c, nil
}
