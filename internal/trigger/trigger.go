// Package trigger glues the asynchronous state sources to the decision
// engine: it re-evaluates the current navigation request on every source
// emission and applies the resulting decision to the screen stack.
package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

// Deps are the collaborators a Trigger needs. All fields except
// AuthHandler are required; construction is explicit dependency
// injection, never ambient lookup.
type Deps struct {
	Identity    ports.IdentitySource
	Onboarding  ports.OnboardingSource
	QuickSetup  ports.QuickSetupSource
	Store       ports.PendingRouteStore
	Stack       ports.NavStack
	Evaluator   *engine.Evaluator
	Interpreter *deeplink.Interpreter
	AuthHandler ports.ExternalAuthHandler
}

// Option configures the Trigger.
type Option func(*Trigger)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trigger) {
		t.logger = logger
	}
}

// WithHooks sets observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(t *Trigger) {
		t.hooks = hooks
	}
}

// Trigger owns the evaluation loop. It keeps the current requested path
// and deep link, subscribes to the push sources, coalesces bursts of
// emissions into single evaluations, and guarantees decisions are applied
// in evaluation order.
type Trigger struct {
	deps   Deps
	logger *slog.Logger
	hooks  domain.Hooks

	mu        sync.Mutex
	requested string
	link      domain.DeepLink

	// notify has capacity 1: requests arriving while an evaluation is
	// pending collapse into one wake-up.
	notify chan struct{}

	seq     atomic.Uint64
	applied atomic.Uint64

	startOnce sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a trigger. Start must be called before it reacts to
// anything.
func New(deps Deps, opts ...Option) *Trigger {
	t := &Trigger{
		deps:   deps,
		logger: logging.NewNop(),
		link:   domain.NoDeepLink(),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start subscribes to the sources and launches the evaluation loop. The
// loop runs until ctx is canceled or Close is called, and performs one
// initial evaluation immediately.
func (t *Trigger) Start(ctx context.Context) error {
	var startErr error
	t.startOnce.Do(func() {
		runCtx, cancel := context.WithCancel(ctx)

		idCh, err := t.deps.Identity.Subscribe(runCtx)
		if err != nil {
			cancel()
			startErr = err
			return
		}
		obCh, err := t.deps.Onboarding.Subscribe(runCtx)
		if err != nil {
			cancel()
			startErr = err
			return
		}

		t.cancel = cancel
		t.wake()
		go t.run(runCtx, idCh, obCh)
	})
	return startErr
}

// Close stops the evaluation loop and waits for it to exit.
func (t *Trigger) Close() {
	t.closeOnce.Do(func() {
		if t.cancel != nil {
			t.cancel()
			<-t.done
		}
	})
}

// Request issues a navigation request for path. Any deep link from a
// previous request is discarded; the next evaluation decides against the
// new path.
func (t *Trigger) Request(path string) {
	t.mu.Lock()
	t.requested = path
	t.link = domain.NoDeepLink()
	t.mu.Unlock()
	t.wake()
}

// OpenURI feeds an externally-issued URI into the loop. The current
// requested path stands; the parsed link rides along with subsequent
// evaluations until it is acted on.
func (t *Trigger) OpenURI(raw string) {
	link := t.deps.Interpreter.Parse(raw)
	t.mu.Lock()
	t.link = link
	t.mu.Unlock()
	t.wake()
}

// Requested returns the path the loop currently evaluates against.
func (t *Trigger) Requested() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.requested
}

func (t *Trigger) wake() {
	select {
	case t.notify <- struct{}{}:
	default:
	}
}

func (t *Trigger) run(ctx context.Context, idCh, obCh <-chan struct{}) {
	defer close(t.done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-idCh:
			if !ok {
				idCh = nil
				continue
			}
		case _, ok := <-obCh:
			if !ok {
				obCh = nil
				continue
			}
		case <-t.notify:
		}

		// Collapse emissions that raced in during the same tick; the
		// snapshot reads the latest value of every source anyway.
		drain(idCh, obCh, t.notify)

		if ctx.Err() != nil {
			return
		}
		t.evaluate(ctx)
	}
}

func drain(idCh, obCh, notify <-chan struct{}) {
	for {
		select {
		case _, ok := <-idCh:
			if !ok {
				idCh = nil
			}
		case _, ok := <-obCh:
			if !ok {
				obCh = nil
			}
		case <-notify:
		default:
			return
		}
	}
}

// evaluate runs one decision pass against the current request and applies
// the result.
func (t *Trigger) evaluate(ctx context.Context) {
	start := time.Now()

	t.mu.Lock()
	requested := t.requested
	link := t.link
	t.mu.Unlock()

	snap := domain.Snapshot{
		Identity:       t.deps.Identity.Current(),
		Onboarding:     t.deps.Onboarding.Current(),
		QuickSetupDone: t.deps.QuickSetup.Completed(),
		RequestedPath:  requested,
	}

	seq := t.seq.Inc()
	decision := t.deps.Evaluator.Evaluate(ctx, snap, link, t.deps.Store)

	// A link is single-shot: once a decision acted on it (hand-off,
	// staging or direct follow), later evaluations run without it. Only
	// the evaluated link is removed; one installed by OpenURI while the
	// decision ran must survive for the next pass, last write wins.
	if link.Kind != domain.DeepLinkNone {
		switch decision.Rule {
		case domain.RuleAuthCallback, domain.RuleDeepLink, domain.RuleFallback:
			t.clearLink(link)
		}
	}

	t.apply(ctx, seq, snap, decision, time.Since(start))
}

// clearLink removes the evaluated link unless a newer one replaced it
// while the evaluation was in flight. Every parse allocates fresh Route
// and Callback values, so equality identifies the evaluated link.
func (t *Trigger) clearLink(evaluated domain.DeepLink) {
	t.mu.Lock()
	if t.link == evaluated {
		t.link = domain.NoDeepLink()
	}
	t.mu.Unlock()
}

// apply commits a decision to the stack unless a newer one already won.
func (t *Trigger) apply(ctx context.Context, seq uint64, snap domain.Snapshot, decision domain.Decision, took time.Duration) {
	stale := true
	for {
		cur := t.applied.Load()
		if seq <= cur {
			break
		}
		if t.applied.CompareAndSwap(cur, seq) {
			stale = false
			break
		}
	}

	evalID := uuid.NewString()
	if t.hooks.OnDecision != nil {
		t.hooks.OnDecision(ctx, &domain.DecisionEvent{
			Timestamp: time.Now(),
			EvalID:    evalID,
			Sequence:  seq,
			Path:      snap.RequestedPath,
			Decision:  decision,
			Duration:  took,
			Stale:     stale,
		})
	}
	if stale {
		t.logger.Debug("discarding stale decision", "eval_id", evalID, "seq", seq)
		return
	}

	if decision.ExternalAuth != nil {
		cb := *decision.ExternalAuth
		if t.hooks.OnAuthCallback != nil {
			t.hooks.OnAuthCallback(ctx, &domain.AuthCallbackEvent{
				Timestamp: time.Now(),
				Provider:  cb.Provider,
			})
		}
		if t.deps.AuthHandler != nil {
			// Fire and forget; the handler's own state transitions drive
			// the next evaluation.
			go t.deps.AuthHandler.HandleCallback(ctx, cb)
		} else {
			t.logger.Warn("auth callback with no handler configured", "provider", cb.Provider)
		}
	}

	t.logger.Debug("decision",
		"eval_id", evalID,
		"path", snap.RequestedPath,
		"kind", decision.Kind,
		"target", decision.Target,
		"rule", decision.Rule,
	)

	switch decision.Kind {
	case domain.DecisionStay:
		// Splash keeps the screen; nothing to apply.
	case domain.DecisionAllow:
		if t.deps.Stack.Current() != snap.RequestedPath {
			t.deps.Stack.Push(snap.RequestedPath)
		}
	case domain.DecisionRedirect:
		t.deps.Stack.ReplaceTop(decision.Target)
		// The user now stands on the redirect target; source changes
		// re-evaluate from there, not from the original request. The
		// target itself must pass through the rules, so schedule another
		// pass. The rule table has no redirect cycles, so this settles.
		// A request issued while this evaluation ran takes precedence
		// over the target.
		t.mu.Lock()
		if t.requested == snap.RequestedPath {
			t.requested = decision.Target
		}
		t.mu.Unlock()
		t.wake()
	}
}
