package engine

import (
	"context"
	"log/slog"

	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

// Evaluator wraps Decide with the outer defense-in-depth layer: any panic
// escaping an evaluation is logged and mapped to the single safest
// universal fallback, the login redirect. Decide itself is written to be
// non-throwing; this is containment, not a first line of handling.
type Evaluator struct {
	engine *Engine
	logger *slog.Logger
}

// NewEvaluator creates the catch-all wrapper around an engine.
func NewEvaluator(engine *Engine, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Evaluator{engine: engine, logger: logger}
}

// Engine returns the wrapped engine.
func (ev *Evaluator) Engine() *Engine {
	return ev.engine
}

// Evaluate runs one decision and contains any failure. The worst case a
// user can observe is landing on the login screen, never a crash.
func (ev *Evaluator) Evaluate(ctx context.Context, snap domain.Snapshot, link domain.DeepLink, store ports.PendingRouteStore) (decision domain.Decision) {
	defer func() {
		if r := recover(); r != nil {
			ev.logger.Error("navigation decision panicked",
				"panic", r,
				"path", snap.RequestedPath,
				"identity", snap.Identity,
			)
			decision = domain.Redirect(ev.engine.Paths().Login, domain.RuleFallback)
		}
	}()
	return ev.engine.Decide(ctx, snap, link, store)
}
