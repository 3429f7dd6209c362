package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnDecision(ctx, &domain.DecisionEvent{
		Decision: domain.Redirect("/login", domain.RuleLoginGate),
		Duration: 50 * time.Microsecond,
	})
	hooks.OnDecision(ctx, &domain.DecisionEvent{
		Decision: domain.Allow(domain.RuleAllow),
		Duration: 10 * time.Microsecond,
	})
	hooks.OnDecision(ctx, &domain.DecisionEvent{
		Decision: domain.Allow(domain.RuleAllow),
		Stale:    true,
	})
	hooks.OnAuthCallback(ctx, &domain.AuthCallbackEvent{Provider: "google"})

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["navauth_decisions_total"])
	assert.True(t, names["navauth_stale_decisions_total"])
	assert.True(t, names["navauth_auth_callbacks_total"])
	assert.True(t, names["navauth_evaluation_duration_seconds"])

	// Stale decisions count separately, never as applied outcomes.
	applied := testutil.ToFloat64(m.Stale())
	assert.Equal(t, 1.0, applied)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		m := observability.NewMetrics(nil)
		m.Hooks().OnDecision(context.Background(), &domain.DecisionEvent{
			Decision: domain.Stay(domain.RuleSplash),
		})
	})
}
