package navigator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Beep206/CyberVPN-sub013/internal/engine"
	"github.com/Beep206/CyberVPN-sub013/internal/logging"
	"github.com/Beep206/CyberVPN-sub013/internal/trigger"
	"github.com/Beep206/CyberVPN-sub013/pkg/adapters/memory"
	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
	"github.com/Beep206/CyberVPN-sub013/pkg/navstack"
	"github.com/Beep206/CyberVPN-sub013/pkg/ports"
)

// Navigator is the assembled navigation authorization subsystem: engine,
// deep-link interpreter, pending-route store and re-evaluation trigger.
type Navigator struct {
	trigger *trigger.Trigger
	stack   ports.NavStack
	store   ports.PendingRouteStore
	paths   domain.Paths
}

type options struct {
	paths       domain.Paths
	table       *deeplink.Table
	store       ports.PendingRouteStore
	stack       ports.NavStack
	authHandler ports.ExternalAuthHandler
	hooks       domain.Hooks
	logger      *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithPaths overrides the canonical path set.
func WithPaths(paths domain.Paths) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithTable overrides the routing table.
func WithTable(table *deeplink.Table) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithPendingStore overrides the in-memory pending-route store, e.g. with
// the Redis adapter.
func WithPendingStore(store ports.PendingRouteStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithStack overrides the navigation stack implementation.
func WithStack(stack ports.NavStack) Option {
	return func(o *options) {
		o.stack = stack
	}
}

// WithExternalAuthHandler sets the receiver for provider callbacks.
func WithExternalAuthHandler(handler ports.ExternalAuthHandler) Option {
	return func(o *options) {
		o.authHandler = handler
	}
}

// WithHooks sets observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New assembles a Navigator over the three state sources. Defaults: the
// built-in routing table and paths, an in-memory pending store, a fresh
// stack and a no-op logger.
func New(identity ports.IdentitySource, onboarding ports.OnboardingSource, quickSetup ports.QuickSetupSource, opts ...Option) (*Navigator, error) {
	if identity == nil || onboarding == nil || quickSetup == nil {
		return nil, fmt.Errorf("navigator: all three state sources are required")
	}

	o := options{
		paths:  domain.DefaultPaths(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = memory.NewPendingStore()
	}
	if o.stack == nil {
		o.stack = navstack.New()
	}

	eng := engine.New(o.paths, engine.WithLogger(o.logger))
	trig := trigger.New(trigger.Deps{
		Identity:    identity,
		Onboarding:  onboarding,
		QuickSetup:  quickSetup,
		Store:       o.store,
		Stack:       o.stack,
		Evaluator:   engine.NewEvaluator(eng, o.logger),
		Interpreter: deeplink.NewInterpreter(o.table),
		AuthHandler: o.authHandler,
	}, trigger.WithLogger(o.logger), trigger.WithHooks(o.hooks))

	return &Navigator{
		trigger: trig,
		stack:   o.stack,
		store:   o.store,
		paths:   o.paths,
	}, nil
}

// Start launches the evaluation loop with an initial request for the
// splash screen.
func (n *Navigator) Start(ctx context.Context) error {
	n.trigger.Request(n.paths.Splash)
	return n.trigger.Start(ctx)
}

// Navigate issues a navigation request for path.
func (n *Navigator) Navigate(path string) {
	n.trigger.Request(path)
}

// OpenURI feeds an externally-issued URI (notification tap, OS intent,
// browser hand-off) into the loop.
func (n *Navigator) OpenURI(raw string) {
	n.trigger.OpenURI(raw)
}

// Current returns the path of the visible screen, or "" before anything
// was applied.
func (n *Navigator) Current() string {
	return n.stack.Current()
}

// Stack returns the screen stack.
func (n *Navigator) Stack() ports.NavStack {
	return n.stack
}

// Close stops the evaluation loop.
func (n *Navigator) Close() {
	n.trigger.Close()
}
