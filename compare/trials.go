// SPDX-License-Identifier: MIT

package compare

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

var (
	// ErrNoTrials is returned when Trials is asked for fewer than one trial.
	ErrNoTrials = errors.New("compare: number of trials must be >= 1")

	// ErrNilLoader is returned when Trials is given no Loader.
	ErrNilLoader = errors.New("compare: loader is nil")
)

// Loader constructs a fresh graph for one trial.
type Loader func() (*core.Graph, error)

// Stats summarizes a series of elapsed times.
type Stats struct {
	Mean time.Duration
	Min  time.Duration
	Max  time.Duration
}

// Summarize computes mean, min and max of samples. Empty input yields zero Stats.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{Min: samples[0], Max: samples[0]}
	var sum time.Duration
	for _, d := range samples {
		sum += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
	s.Mean = sum / time.Duration(len(samples))

	return s
}

// TrialReport aggregates repeated comparisons.
type TrialReport struct {
	ID     uuid.UUID
	Trials int

	// Per-trial elapsed times, in trial order.
	Kruskal []time.Duration
	Prim    []time.Duration

	KruskalStats Stats
	PrimStats    Stats

	// Faster is the engine with the lower mean; Prim on a tie.
	Faster prim_kruskal.Method

	// Speedup is max(mean)/min(mean): 1 when both means are zero and +Inf
	// when only the faster mean is zero.
	Speedup float64

	// Failures counts trials whose Comparison did not pass.
	Failures int

	// Passed is true when every trial passed verification.
	Passed bool

	// Last is the comparison from the final trial.
	Last Comparison
}

// Trials runs n sequential comparisons, each on a graph freshly returned by
// load, and summarizes the timings. ctx is checked between trials.
func (h *Harness) Trials(ctx context.Context, load Loader, n int) (TrialReport, error) {
	if n < 1 {
		return TrialReport{}, fmt.Errorf("Trials(%d): %w", n, ErrNoTrials)
	}
	if load == nil {
		return TrialReport{}, ErrNilLoader
	}

	report := TrialReport{
		ID:      uuid.New(),
		Trials:  n,
		Kruskal: make([]time.Duration, 0, n),
		Prim:    make([]time.Duration, 0, n),
	}
	logger := h.cfg.Logger.WithField("report", report.ID.String())

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return TrialReport{}, err
		}

		g, err := load()
		if err != nil {
			return TrialReport{}, fmt.Errorf("trial %d: load graph: %w", i+1, err)
		}
		c, err := h.Compare(g)
		if err != nil {
			return TrialReport{}, fmt.Errorf("trial %d: %w", i+1, err)
		}

		report.Kruskal = append(report.Kruskal, c.Kruskal.Elapsed)
		report.Prim = append(report.Prim, c.Prim.Elapsed)
		if !c.Passed {
			report.Failures++
		}
		report.Last = c

		logger.WithFields(logrus.Fields{
			"trial":   i + 1,
			"kruskal": c.Kruskal.Elapsed,
			"prim":    c.Prim.Elapsed,
		}).Debug("trial complete")
	}

	report.KruskalStats = Summarize(report.Kruskal)
	report.PrimStats = Summarize(report.Prim)
	report.Faster, report.Speedup = speedup(report.KruskalStats.Mean, report.PrimStats.Mean)
	report.Passed = report.Failures == 0

	logger.WithFields(logrus.Fields{
		"trials":       n,
		"kruskal_mean": report.KruskalStats.Mean,
		"prim_mean":    report.PrimStats.Mean,
		"faster":       report.Faster.String(),
		"speedup":      report.Speedup,
		"failures":     report.Failures,
	}).Info("trials complete")

	return report, nil
}

// speedup picks the faster of two timings (Prim on a tie) and the ratio of the
// slower timing to the faster one.
func speedup(kruskal, prim time.Duration) (prim_kruskal.Method, float64) {
	faster, slow, fast := prim_kruskal.MethodPrim, kruskal, prim
	if kruskal < prim {
		faster, slow, fast = prim_kruskal.MethodKruskal, prim, kruskal
	}

	switch {
	case slow == 0:
		return faster, 1
	case fast == 0:
		return faster, math.Inf(1)
	default:
		return faster, float64(slow) / float64(fast)
	}
}
