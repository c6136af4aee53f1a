// SPDX-License-Identifier: MIT

package compare

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/roadmst/prim_kruskal"
)

// Verification outcomes used as the "outcome" label.
const (
	OutcomePassed       = "passed"
	OutcomeDiverged     = "diverged"
	OutcomeDisconnected = "disconnected"
)

// Metrics holds the prometheus collectors updated by a Harness.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RunDuration   *prometheus.HistogramVec
	TotalWeight   *prometheus.GaugeVec
	TreeEdges     *prometheus.GaugeVec
	Verifications *prometheus.CounterVec
}

// NewMetrics creates the harness collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roadmst_mst_run_duration_seconds",
				Help:    "Wall-clock duration of a single MST engine run",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
			},
			[]string{"method"},
		),
		TotalWeight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roadmst_mst_total_weight",
				Help: "Total weight of the most recent tree per engine",
			},
			[]string{"method"},
		),
		TreeEdges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roadmst_mst_tree_edges",
				Help: "Number of edges in the most recent tree per engine",
			},
			[]string{"method"},
		),
		Verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadmst_verification_total",
				Help: "Kruskal/Prim equivalence checks by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) observeRun(method prim_kruskal.Method, tree prim_kruskal.Tree, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RunDuration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
	m.TotalWeight.WithLabelValues(method.String()).Set(tree.Total)
	m.TreeEdges.WithLabelValues(method.String()).Set(float64(tree.Len()))
}

func (m *Metrics) observeVerification(outcome string) {
	if m == nil {
		return
	}
	m.Verifications.WithLabelValues(outcome).Inc()
}
