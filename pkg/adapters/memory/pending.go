// Package memory provides in-process implementations of the navigation
// ports: the single-slot pending-route store and settable state sources.
// These are the defaults for embedding and the workhorses of the test
// suites.
package memory

import (
	"context"
	"sync"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// PendingStore implements ports.PendingRouteStore as a mutex-guarded
// single slot. It is process-lifetime and deliberately unpersisted: a lost
// slot on restart is acceptable because the OS would have to re-deliver
// the triggering deep link anyway.
type PendingStore struct {
	mu    sync.Mutex
	route *domain.Route
}

// NewPendingStore creates an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

// Set overwrites the slot. Last write wins.
func (s *PendingStore) Set(ctx context.Context, route domain.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := route
	s.route = &r
	return nil
}

// Consume returns the slot content and clears it atomically. Returns
// (nil, nil) when empty.
func (s *PendingStore) Consume(ctx context.Context) (*domain.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	route := s.route
	s.route = nil
	return route, nil
}
