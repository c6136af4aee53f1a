// SPDX-License-Identifier: MIT

// Command roadmst computes minimum spanning trees over road-candidate tables
// with Kruskal and Prim, verifies that both agree and compares their timings.
//
//	roadmst mst --data testdata/delhi.yaml --method prim --start 1
//	roadmst compare --data testdata/delhi.yaml
//	roadmst trials --data testdata/delhi.yaml --trials 100
//	roadmst bench --nodes 5000 --extra 20000 --seed 42 --trials 10
//
// The exit status is 1 on errors and 2 when the engines fail verification.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	appName = "roadmst"
	appSHA  = "latest-app-git-sha" // Populated by the compiler at the linking stage.
)

// errVerification marks runs whose Kruskal and Prim results disagree or do
// not span the graph.
var errVerification = errors.New("verification failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// execute parses args, runs the selected subcommand and returns the exit status.
func execute(ctx context.Context, args []string, stdout io.Writer) int {
	var app cli
	parser, err := kong.New(&app,
		kong.Name(appName),
		kong.Description("Minimum spanning trees for road networks: Kruskal vs Prim."),
		kong.UsageOnError(),
	)
	if err != nil {
		logrus.WithField("err", err).Error("building command line")
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	g := &app.Globals
	if err := g.setup(ctx, stdout); err != nil {
		logrus.WithField("err", err).Error("invalid flags")
		return 1
	}

	err = kctx.Run(g)
	if ferr := g.flushMetrics(); ferr != nil {
		g.logger.WithField("err", ferr).Error("writing metrics file")
		if err == nil {
			err = ferr
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errVerification):
		g.logger.WithField("err", err).Warn("engines failed verification")
		return 2
	default:
		g.logger.WithField("err", err).Error("shutting down due to an error")
		return 1
	}
}

type cli struct {
	Globals

	MST     mstCmd     `cmd:"" name:"mst" help:"Compute one spanning tree from a dataset file."`
	Compare compareCmd `cmd:"" help:"Run Kruskal and Prim on a dataset file and verify they agree."`
	Trials  trialsCmd  `cmd:"" help:"Repeat the comparison on a dataset file and summarize timings."`
	Bench   benchCmd   `cmd:"" help:"Repeat the comparison on a generated road network."`
}

// Globals carries the flags shared by every subcommand plus the state built
// from them.
type Globals struct {
	LogLevel    string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (${enum})."`
	LogJSON     bool   `name:"log-json" help:"Emit logs as JSON."`
	MetricsFile string `name:"metrics-file" type:"path" placeholder:"PATH" help:"Write prometheus metrics in text format to PATH on exit."`

	ctx      context.Context
	out      io.Writer
	logger   *logrus.Entry
	registry *prometheus.Registry
}

func (g *Globals) setup(ctx context.Context, out io.Writer) error {
	level, err := logrus.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}

	host, _ := os.Hostname()
	rootLogger := logrus.New()
	rootLogger.SetLevel(level)
	rootLogger.SetOutput(os.Stderr)
	if g.LogJSON {
		rootLogger.SetFormatter(new(logrus.JSONFormatter))
	}
	g.logger = rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSHA,
		"host": host,
	})
	g.ctx = ctx
	g.out = out
	g.registry = prometheus.NewRegistry()

	return nil
}

func (g *Globals) flushMetrics() error {
	if g.MetricsFile == "" || g.registry == nil {
		return nil
	}

	return prometheus.WriteToTextfile(g.MetricsFile, g.registry)
}
