package memory

import (
	"context"
	"sync"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// broadcaster fans out change notifications to subscribers. Sends are
// non-blocking: each subscriber channel has capacity 1 and coalesces
// bursts, matching the trigger's "latest value wins" model.
type broadcaster struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func (b *broadcaster) subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	if b.subs == nil {
		b.subs = make(map[chan struct{}]struct{})
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
	}()
	return ch
}

func (b *broadcaster) notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// IdentitySource is a settable in-memory identity source. It starts in
// the loading state.
type IdentitySource struct {
	mu     sync.RWMutex
	status domain.IdentityStatus
	bc     broadcaster
}

// NewIdentitySource creates a source in the loading state.
func NewIdentitySource() *IdentitySource {
	return &IdentitySource{status: domain.IdentityLoading}
}

// Current returns the latest identity status.
func (s *IdentitySource) Current() domain.IdentityStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Subscribe registers for change notifications until ctx is canceled.
func (s *IdentitySource) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	return s.bc.subscribe(ctx), nil
}

// SetStatus updates the status and notifies subscribers.
func (s *IdentitySource) SetStatus(status domain.IdentityStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.bc.notify()
}

// OnboardingSource is a settable in-memory onboarding source. It starts
// unresolved.
type OnboardingSource struct {
	mu    sync.RWMutex
	state domain.Onboarding
	bc    broadcaster
}

// NewOnboardingSource creates a source in the loading state.
func NewOnboardingSource() *OnboardingSource {
	return &OnboardingSource{}
}

// Current returns the latest onboarding state.
func (s *OnboardingSource) Current() domain.Onboarding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers for change notifications until ctx is canceled.
func (s *OnboardingSource) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	return s.bc.subscribe(ctx), nil
}

// Resolve marks onboarding as resolved with the given completion flag and
// notifies subscribers.
func (s *OnboardingSource) Resolve(completed bool) {
	s.mu.Lock()
	s.state = domain.OnboardingResolved(completed)
	s.mu.Unlock()
	s.bc.notify()
}

// QuickSetupSource is a settable in-memory quick-setup flag. Reads are
// synchronous; there is no loading state and no subscription.
type QuickSetupSource struct {
	mu        sync.RWMutex
	completed bool
}

// NewQuickSetupSource creates a source with the given initial flag.
func NewQuickSetupSource(completed bool) *QuickSetupSource {
	return &QuickSetupSource{completed: completed}
}

// Completed returns the flag.
func (s *QuickSetupSource) Completed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

// SetCompleted updates the flag.
func (s *QuickSetupSource) SetCompleted(completed bool) {
	s.mu.Lock()
	s.completed = completed
	s.mu.Unlock()
}
