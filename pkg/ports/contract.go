package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// RunPendingStoreContract verifies that a PendingRouteStore implementation
// adheres to the single-slot, read-once contract. Every adapter test runs
// this suite against its own backend.
func RunPendingStoreContract(t *testing.T, store PendingRouteStore) {
	ctx := context.Background()

	t.Run("Consume Empty", func(t *testing.T) {
		route, err := store.Consume(ctx)
		require.NoError(t, err, "Consume on an empty slot should not error")
		assert.Nil(t, route)
	})

	t.Run("Set And Consume", func(t *testing.T) {
		staged := domain.Route{ID: "plans", Path: "/plans"}
		require.NoError(t, store.Set(ctx, staged))

		route, err := store.Consume(ctx)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, staged.ID, route.ID)
		assert.Equal(t, staged.Path, route.Path)

		// Consume clears the slot in the same call.
		route, err = store.Consume(ctx)
		require.NoError(t, err)
		assert.Nil(t, route, "second Consume should find an empty slot")
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.Route{ID: "plans", Path: "/plans"}))
		require.NoError(t, store.Set(ctx, domain.Route{ID: "referral", Path: "/referral"}))

		route, err := store.Consume(ctx)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, "referral", route.ID, "a later Set must overwrite an earlier one")

		route, err = store.Consume(ctx)
		require.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("Params Survive", func(t *testing.T) {
		staged := domain.Route{
			ID:     "promo/{code}",
			Path:   "/plans?promo=SUMMER",
			Params: map[string]string{"code": "SUMMER"},
		}
		require.NoError(t, store.Set(ctx, staged))

		route, err := store.Consume(ctx)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.Equal(t, "SUMMER", route.Params["code"])
	})
}
