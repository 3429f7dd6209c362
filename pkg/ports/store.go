package ports

import (
	"context"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// PendingRouteStore holds at most one deferred internal route across the
// authentication hand-off. There is deliberately no Peek: every caller
// consumes or ignores, so a staged route can never be applied twice.
type PendingRouteStore interface {
	// Set unconditionally overwrites any existing pending route. Last
	// write wins; there is no queue.
	Set(ctx context.Context, route domain.Route) error

	// Consume returns the stored route and clears the slot in the same
	// call. It returns (nil, nil) when the slot is empty. Set followed by
	// Consume must behave as a single atomic read-modify-clear even under
	// concurrent evaluations.
	Consume(ctx context.Context) (*domain.Route, error)
}
