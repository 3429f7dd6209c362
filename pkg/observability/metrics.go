// Package observability exposes Prometheus collectors for the navigation
// loop and bridges them onto the domain hooks, so embedders get metrics
// without threading collectors through the core.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// Metrics holds the collectors for the evaluation loop.
type Metrics struct {
	decisions     *prometheus.CounterVec
	stale         prometheus.Counter
	authCallbacks *prometheus.CounterVec
	evalDuration  prometheus.Histogram
}

// NewMetrics creates and registers the collectors. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navauth_decisions_total",
				Help: "Navigation decisions by outcome and rule",
			},
			[]string{"kind", "rule"},
		),
		stale: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "navauth_stale_decisions_total",
				Help: "Decisions discarded because a newer one was already applied",
			},
		),
		authCallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navauth_auth_callbacks_total",
				Help: "External auth provider callbacks handed off",
			},
			[]string{"provider"},
		),
		evalDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "navauth_evaluation_duration_seconds",
				Help:    "Duration of one decision evaluation",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.decisions, m.stale, m.authCallbacks, m.evalDuration)
	}
	return m
}

// Stale returns the stale-decision counter, mainly for tests.
func (m *Metrics) Stale() prometheus.Counter {
	return m.stale
}

// Hooks returns domain hooks feeding these collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnDecision: func(_ context.Context, e *domain.DecisionEvent) {
			if e.Stale {
				m.stale.Inc()
				return
			}
			m.decisions.WithLabelValues(string(e.Decision.Kind), string(e.Decision.Rule)).Inc()
			m.evalDuration.Observe(e.Duration.Seconds())
		},
		OnAuthCallback: func(_ context.Context, e *domain.AuthCallbackEvent) {
			m.authCallbacks.WithLabelValues(e.Provider).Inc()
		},
	}
}
