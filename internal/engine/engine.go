// Package engine implements the navigation authorization decision core: a
// pure, total function from one state snapshot to one routing decision,
// evaluated against an ordered, first-match-wins rule table.
package engine

import (
	"context"
	"log/slog"

	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

// Engine evaluates snapshots against the precedence rules. It holds no
// mutable state of its own; the only mutable state it touches is the
// pending-route store passed to Decide.
type Engine struct {
	paths  domain.Paths
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine gating on the given canonical paths.
func New(paths domain.Paths, opts ...Option) *Engine {
	e := &Engine{
		paths:  paths,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Paths returns the canonical path set the engine gates on.
func (e *Engine) Paths() domain.Paths {
	return e.paths
}

// Decide maps one snapshot and its accompanying deep link to a Decision.
// Rules are evaluated top to bottom; the first match wins. The store is
// only touched by the deep-link staging rule and the post-auth settle
// logic, and store failures degrade to safe redirects rather than errors.
func (e *Engine) Decide(ctx context.Context, snap domain.Snapshot, link domain.DeepLink, store ports.PendingRouteStore) domain.Decision {
	p := e.paths

	// Rule 1: splash suppression. Never redirect away from splash while
	// foundational state is unresolved; once both sources settle, splash
	// hands off to the root path so the remaining rules pick the real
	// destination.
	if snap.RequestedPath == p.Splash {
		if snap.Identity == domain.IdentityLoading || !snap.Onboarding.Resolved {
			return domain.Stay(domain.RuleSplash)
		}
		return domain.Redirect(p.Root, domain.RuleSplash)
	}

	// Rule 2: external auth callback. Not routed as a path change; the
	// decision carries the callback so the trigger invokes the external
	// handler, whose own state transition drives the next evaluation.
	if link.Kind == domain.DeepLinkAuthCallback && link.Callback != nil {
		var d domain.Decision
		if snap.RequestedPath == "" || snap.RequestedPath == p.Root {
			d = domain.Redirect(p.Login, domain.RuleAuthCallback)
		} else {
			d = domain.Allow(domain.RuleAuthCallback)
		}
		d.ExternalAuth = link.Callback
		return d
	}

	// Rule 3: deep link resolving to an internal route. Must run before
	// the generic gates: an authenticated deep link is never forced back
	// through onboarding, and an unauthenticated one is staged before the
	// login gate would otherwise lose it.
	if link.Kind == domain.DeepLinkRoute && link.Route != nil {
		switch snap.Identity {
		case domain.IdentityUnauthenticated:
			if err := store.Set(ctx, *link.Route); err != nil {
				e.logger.Error("staging pending route failed", "route", link.Route.ID, "err", err)
			}
			return domain.Redirect(p.Login, domain.RuleDeepLink)
		case domain.IdentityAuthenticated:
			return domain.Redirect(link.Route.Path, domain.RuleDeepLink)
		}
		// Identity still loading: fall through. The trigger re-evaluates
		// with the same link once identity resolves.
	}

	// Rule 4: onboarding incomplete.
	if snap.Onboarding.Resolved && !snap.Onboarding.Completed && snap.RequestedPath != p.Onboarding {
		return domain.Redirect(p.Onboarding, domain.RuleOnboardingGate)
	}

	// Rule 5: unauthenticated, off the auth family and onboarding.
	if snap.Identity == domain.IdentityUnauthenticated &&
		!p.IsAuthFamily(snap.RequestedPath) && snap.RequestedPath != p.Onboarding {
		return domain.Redirect(p.Login, domain.RuleLoginGate)
	}

	// Rule 6: authenticated but still on an auth-family or onboarding
	// screen. The onboarding arm only fires once onboarding is complete,
	// otherwise rule 4 would bounce the user straight back.
	onboardingDone := snap.Onboarding.Resolved && snap.Onboarding.Completed
	if snap.Identity == domain.IdentityAuthenticated &&
		(p.IsAuthFamily(snap.RequestedPath) || (snap.RequestedPath == p.Onboarding && onboardingDone)) {
		return e.settle(ctx, snap, store, domain.RulePostAuth)
	}

	// Rule 7: authenticated on the root path.
	if snap.Identity == domain.IdentityAuthenticated && snap.RequestedPath == p.Root {
		return e.settle(ctx, snap, store, domain.RuleRootLanding)
	}

	// Rule 8: nothing matched, the requested path stands.
	return domain.Allow(domain.RuleAllow)
}

// settle decides where an authenticated user lands: the quick-setup gate
// first, then a staged pending route, then the default home path.
func (e *Engine) settle(ctx context.Context, snap domain.Snapshot, store ports.PendingRouteStore, rule domain.Rule) domain.Decision {
	p := e.paths

	if !snap.QuickSetupDone && snap.RequestedPath != p.QuickSetup {
		return domain.Redirect(p.QuickSetup, rule)
	}

	route, err := store.Consume(ctx)
	if err != nil {
		e.logger.Error("consuming pending route failed", "err", err)
		return domain.Redirect(p.Home, rule)
	}
	if route != nil {
		return domain.Redirect(route.Path, rule)
	}
	return domain.Redirect(p.Home, rule)
}
