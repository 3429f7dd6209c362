// Package redis provides a Redis-backed pending-route store for
// deployments where the navigation core runs in a backend-for-frontend
// and the staged route must survive process restarts or be shared across
// replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

const defaultKey = "navauth:pending-route"

// PendingStore implements ports.PendingRouteStore on a single Redis key.
// Consume uses GETDEL, so read-and-clear is atomic on the server even
// with concurrent evaluations from multiple replicas.
type PendingStore struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

// Option configures the store.
type Option func(*PendingStore)

// WithKey overrides the Redis key holding the slot.
func WithKey(key string) Option {
	return func(s *PendingStore) {
		s.key = key
	}
}

// WithTTL sets an expiry on staged routes. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *PendingStore) {
		s.ttl = ttl
	}
}

// NewFromClient creates a store on an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *PendingStore {
	s := &PendingStore{
		client: client,
		key:    defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set overwrites the slot. Last write wins.
func (s *PendingStore) Set(ctx context.Context, route domain.Route) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("pending store: marshal route: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("pending store: set: %w", err)
	}
	return nil
}

// Consume atomically reads and clears the slot. Returns (nil, nil) when
// the slot is empty or expired.
func (s *PendingStore) Consume(ctx context.Context) (*domain.Route, error) {
	data, err := s.client.GetDel(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("pending store: getdel: %w", err)
	}
	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, fmt.Errorf("pending store: unmarshal route: %w", err)
	}
	return &route, nil
}
