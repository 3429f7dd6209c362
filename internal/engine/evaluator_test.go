package engine_test

import (
	"context"
	"testing"

	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// panicStore blows up on every call, simulating a collaborator violating
// its contract.
type panicStore struct{}

func (panicStore) Set(context.Context, domain.Route) error {
	panic("store corrupted")
}

func (panicStore) Consume(context.Context) (*domain.Route, error) {
	panic("store corrupted")
}

func TestEvaluator_PanicMapsToLogin(t *testing.T) {
	ev := engine.NewEvaluator(engine.New(paths), logging.NewNop())

	// Unauthenticated deep link forces a store.Set, which panics.
	snap := domain.Snapshot{
		Identity:      domain.IdentityUnauthenticated,
		Onboarding:    domain.OnboardingResolved(true),
		RequestedPath: "/home",
	}
	link := domain.RouteDeepLink(domain.Route{ID: "plans", Path: "/plans"})

	d := ev.Evaluate(context.Background(), snap, link, panicStore{})
	if d.Kind != domain.DecisionRedirect || d.Target != paths.Login {
		t.Fatalf("expected login fallback, got %s -> %s", d.Kind, d.Target)
	}
	if d.Rule != domain.RuleFallback {
		t.Errorf("expected fallback rule attribution, got %s", d.Rule)
	}
}

func TestEvaluator_PassThrough(t *testing.T) {
	ev := engine.NewEvaluator(engine.New(paths), logging.NewNop())

	snap := domain.Snapshot{
		Identity:       domain.IdentityAuthenticated,
		Onboarding:     domain.OnboardingResolved(true),
		QuickSetupDone: true,
		RequestedPath:  "/settings",
	}
	d := ev.Evaluate(context.Background(), snap, domain.NoDeepLink(), panicStore{})
	if d.Kind != domain.DecisionAllow {
		t.Errorf("expected allow untouched by the wrapper, got %s -> %s", d.Kind, d.Target)
	}
}
