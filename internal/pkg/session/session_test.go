//go:build unit

package session_test

import (
	"testing"
	"time"

	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/session"
	"storefront-cart/tests/common/authtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder(t *testing.T) {
	tokens := authtest.NewJWTHelper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("anonymous session yields empty bearer", func(t *testing.T) {
		h := session.NewHolder(clock.NewMockClock(now))
		token, err := h.Bearer()
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("valid token is returned with its claims", func(t *testing.T) {
		h := session.NewHolder(clock.NewMockClock(now))
		raw := tokens.GenerateToken(t, "user-1", now.Add(time.Hour))
		require.NoError(t, h.Set(raw))

		token, err := h.Bearer()
		require.NoError(t, err)
		assert.Equal(t, raw, token)

		claims, ok := h.Claims()
		require.True(t, ok)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("expired token fails fast", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		h := session.NewHolder(clk)
		require.NoError(t, h.Set(tokens.GenerateToken(t, "user-1", now.Add(time.Minute))))

		clk.Add(time.Minute)
		_, err := h.Bearer()
		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("malformed token is refused", func(t *testing.T) {
		h := session.NewHolder(clock.NewMockClock(now))
		err := h.Set("not-a-jwt")
		require.Error(t, err)
		assert.True(t, errs.Is(err, session.ErrInvalidToken))
	})

	t.Run("clear drops the token", func(t *testing.T) {
		h := session.NewHolder(clock.NewMockClock(now))
		require.NoError(t, h.Set(tokens.GenerateToken(t, "user-1", now.Add(time.Hour))))
		h.Clear()

		token, err := h.Bearer()
		require.NoError(t, err)
		assert.Empty(t, token)
		_, ok := h.Claims()
		assert.False(t, ok)
	})
}
