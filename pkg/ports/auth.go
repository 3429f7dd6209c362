package ports

import (
	"context"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// ExternalAuthHandler receives intercepted provider callbacks. The engine
// only signals that the handler should run; invocation is fire-and-forget
// and the handler's own state transitions drive the next evaluation.
type ExternalAuthHandler interface {
	HandleCallback(ctx context.Context, cb domain.AuthCallback)
}
