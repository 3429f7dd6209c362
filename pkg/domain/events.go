package domain

import (
	"context"
	"time"
)

// DecisionEvent is emitted after every evaluation, whether or not the
// decision was applied to the stack.
type DecisionEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	EvalID    string        `json:"eval_id"`
	Sequence  uint64        `json:"sequence"`
	Path      string        `json:"path"`
	Decision  Decision      `json:"decision"`
	Duration  time.Duration `json:"duration"`
	// Stale marks decisions discarded because a newer one was already
	// applied.
	Stale bool `json:"stale,omitempty"`
}

// AuthCallbackEvent is emitted when the engine signals that an external
// auth provider callback should be handed off.
type AuthCallbackEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Provider  string    `json:"provider"`
}

// Hooks defines optional callbacks for observability of the trigger loop.
// Nil callbacks are skipped. Callbacks run synchronously on the trigger
// goroutine and must not block.
type Hooks struct {
	OnDecision     func(context.Context, *DecisionEvent)
	OnAuthCallback func(context.Context, *AuthCallbackEvent)
}
