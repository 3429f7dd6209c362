package ports

import (
	"context"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// IdentitySource exposes the authentication state. Current never blocks;
// it returns the latest known value, including IdentityLoading before the
// first resolution.
type IdentitySource interface {
	Current() domain.IdentityStatus

	// Subscribe returns a channel signaled on every state change. The
	// channel carries no payload; subscribers re-read Current. It is
	// closed when ctx is canceled.
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}

// OnboardingSource exposes the first-run onboarding completion state.
type OnboardingSource interface {
	Current() domain.Onboarding
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}

// QuickSetupSource exposes the first-login quick-setup completion flag.
// It is derived from persisted state and is never in a loading state once
// the app has started, so it is read synchronously per evaluation rather
// than subscribed.
type QuickSetupSource interface {
	Completed() bool
}
