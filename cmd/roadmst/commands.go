// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/roadmst/builder"
	"github.com/katalvlaran/roadmst/compare"
	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dataset"
	"github.com/katalvlaran/roadmst/prim_kruskal"
	"github.com/katalvlaran/roadmst/report"
)

// harness builds a compare.Harness wired to the CLI logger and registry.
func (g *Globals) harness(start *int, tolerance float64) (*compare.Harness, error) {
	cfg := compare.Config{
		Tolerance: tolerance,
		Logger:    g.logger,
		Metrics:   compare.NewMetrics(g.registry),
	}
	if start != nil {
		id := core.NodeID(*start)
		cfg.Start = &id
	}

	return compare.New(cfg)
}

type mstCmd struct {
	Data   string `required:"" type:"existingfile" placeholder:"FILE" help:"Dataset file (YAML or JSON rows)."`
	Method string `default:"kruskal" enum:"kruskal,prim" help:"Engine to run (${enum})."`
	Start  *int   `placeholder:"ID" help:"Start node for Prim; defaults to the smallest node ID."`
}

func (c *mstCmd) Run(g *Globals) error {
	method, err := prim_kruskal.ParseMethod(c.Method)
	if err != nil {
		return err
	}
	p, err := dataset.Load(c.Data)
	if err != nil {
		return err
	}
	graph, err := p.Graph()
	if err != nil {
		return err
	}
	h, err := g.harness(c.Start, 0)
	if err != nil {
		return err
	}

	run, err := h.Run(graph, method)
	if err != nil {
		return err
	}
	if err := run.Tree.Err(); err != nil {
		g.logger.WithField("err", err).Warn("tree does not span the graph")
	}

	title := "Optimal road network"
	if p.Name != "" {
		title = fmt.Sprintf("Optimal road network for %s", p.Name)
	}

	return report.Tree(g.out, title, run)
}

type compareCmd struct {
	Data      string  `required:"" type:"existingfile" placeholder:"FILE" help:"Dataset file (YAML or JSON rows)."`
	Start     *int    `placeholder:"ID" help:"Start node for Prim; defaults to the smallest node ID."`
	Tolerance float64 `default:"0.01" help:"Largest total-weight difference that still counts as agreement."`
}

func (c *compareCmd) Run(g *Globals) error {
	graph, err := dataset.LoadGraph(c.Data)
	if err != nil {
		return err
	}
	h, err := g.harness(c.Start, c.Tolerance)
	if err != nil {
		return err
	}

	cmp, err := h.Compare(graph)
	if err != nil {
		return err
	}
	for _, run := range []compare.Run{cmp.Kruskal, cmp.Prim} {
		if err := report.Tree(g.out, "Optimal road network", run); err != nil {
			return err
		}
	}
	if err := report.Comparison(g.out, cmp); err != nil {
		return err
	}
	if !cmp.Passed {
		return fmt.Errorf("%s: %w", cmp.Outcome(), errVerification)
	}

	return nil
}

type trialsCmd struct {
	Data      string  `required:"" type:"existingfile" placeholder:"FILE" help:"Dataset file (YAML or JSON rows)."`
	Trials    int     `default:"10" help:"Number of trials; each reloads the file."`
	Start     *int    `placeholder:"ID" help:"Start node for Prim; defaults to the smallest node ID."`
	Tolerance float64 `default:"0.01" help:"Largest total-weight difference that still counts as agreement."`
}

func (c *trialsCmd) Run(g *Globals) error {
	h, err := g.harness(c.Start, c.Tolerance)
	if err != nil {
		return err
	}
	load := func() (*core.Graph, error) { return dataset.LoadGraph(c.Data) }

	return runTrials(g, h, load, c.Trials)
}

type benchCmd struct {
	Nodes     int     `default:"1000" help:"Number of locations."`
	Extra     int     `default:"4000" help:"Random segments on top of the connecting chain."`
	Seed      int64   `default:"1" help:"Generator seed."`
	Trials    int     `default:"5" help:"Number of trials; each regenerates the network."`
	Tolerance float64 `default:"0.01" help:"Largest total-weight difference that still counts as agreement."`
}

func (c *benchCmd) Run(g *Globals) error {
	h, err := g.harness(nil, c.Tolerance)
	if err != nil {
		return err
	}
	load := func() (*core.Graph, error) {
		return builder.RandomRoads(c.Nodes, c.Extra, builder.WithSeed(c.Seed))
	}

	return runTrials(g, h, load, c.Trials)
}

func runTrials(g *Globals, h *compare.Harness, load compare.Loader, n int) error {
	r, err := h.Trials(g.ctx, load, n)
	if err != nil {
		return err
	}
	if err := report.Comparison(g.out, r.Last); err != nil {
		return err
	}
	if err := report.Trials(g.out, r); err != nil {
		return err
	}
	if !r.Passed {
		return fmt.Errorf("%d of %d trials: %w", r.Failures, r.Trials, errVerification)
	}

	return nil
}
