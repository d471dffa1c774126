//go:build unit || e2e

package kvstore_test

import (
	"context"
	"sync"
	"testing"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour every driver must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key reads as version 0", func(t *testing.T) {
		s := newStore(t)
		e, err := s.Get(ctx, "cartItems")
		require.NoError(t, err)
		assert.Zero(t, e.Version)
		assert.Empty(t, e.Value)
	})

	t.Run("set bumps the version", func(t *testing.T) {
		s := newStore(t)
		v1, err := s.Set(ctx, "cartItems", []byte(`[]`))
		require.NoError(t, err)
		v2, err := s.Set(ctx, "cartItems", []byte(`[{"productId":"a"}]`))
		require.NoError(t, err)
		assert.Equal(t, int64(1), v1)
		assert.Equal(t, int64(2), v2)

		e, err := s.Get(ctx, "cartItems")
		require.NoError(t, err)
		assert.Equal(t, `[{"productId":"a"}]`, string(e.Value))
		assert.Equal(t, int64(2), e.Version)
	})

	t.Run("compare and set succeeds on the current version", func(t *testing.T) {
		s := newStore(t)
		v, err := s.CompareAndSet(ctx, "cartItems", 0, []byte(`[]`))
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)

		v, err = s.CompareAndSet(ctx, "cartItems", 1, []byte(`["x"]`))
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)
	})

	t.Run("compare and set rejects a stale version", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Set(ctx, "cartItems", []byte(`["first"]`))
		require.NoError(t, err)

		_, err = s.CompareAndSet(ctx, "cartItems", 0, []byte(`["stale"]`))
		assert.True(t, infra.IsKind(err, infra.KindVersionConflict), "got %v", err)

		_, err = s.CompareAndSet(ctx, "cartItems", 7, []byte(`["stale"]`))
		assert.True(t, infra.IsKind(err, infra.KindVersionConflict), "got %v", err)

		e, err := s.Get(ctx, "cartItems")
		require.NoError(t, err)
		assert.Equal(t, `["first"]`, string(e.Value))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Set(ctx, "cartItems", []byte(`["a"]`))
		require.NoError(t, err)
		e, err := s.Get(ctx, "wishlist")
		require.NoError(t, err)
		assert.Zero(t, e.Version)
	})

	t.Run("only one concurrent compare and set wins", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Set(ctx, "cartItems", []byte(`[]`))
		require.NoError(t, err)

		const writers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.CompareAndSet(ctx, "cartItems", 1, []byte(`["w"]`)); err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, wins)
	})
}
