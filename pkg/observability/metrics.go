// Package observability bridges navigator lifecycle hooks to Prometheus
// collectors, for long exhaustive walks monitored in CI.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/scenic/pkg/domain"
)

// Metrics holds the collectors a navigator run feeds.
type Metrics struct {
	Hops          *prometheus.CounterVec
	GuardTimeouts *prometheus.CounterVec
	BackEdges     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg (pass nil to
// skip registration, e.g. when composing registries yourself).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Hops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenic_hops_total",
				Help: "Total number of hops executed between scenes",
			},
			[]string{"from", "to"},
		),
		GuardTimeouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenic_guard_timeouts_total",
				Help: "Arrival guards that did not become observable in time",
			},
			[]string{"scene"},
		),
		BackEdges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scenic_back_edges_total",
				Help: "Back-edges grafted onto and pruned from the route graph",
			},
			[]string{"scene", "op"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Hops, m.GuardTimeouts, m.BackEdges)
	}
	return m
}

// Hooks returns lifecycle hooks that update the collectors. Pass them to the
// graph via scenic.WithHooks, or merge them with your own hooks first.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnArrive: func(_ context.Context, e *domain.HopEvent) {
			m.Hops.WithLabelValues(e.From, e.To).Inc()
		},
		OnGuardTimeout: func(_ context.Context, e *domain.GuardEvent) {
			m.GuardTimeouts.WithLabelValues(e.Scene).Inc()
		},
		OnBackEdge: func(_ context.Context, e *domain.BackEdgeEvent) {
			op := "graft"
			if e.Pruned {
				op = "prune"
			}
			m.BackEdges.WithLabelValues(e.Scene, op).Inc()
		},
	}
}
