//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront-cart/internal/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// The backend owns the signing key; the client never verifies signatures.
const signingSecret = "test-secret"

type JWTHelper struct {
	role string
}

func NewJWTHelper() *JWTHelper {
	return &JWTHelper{role: "customer"}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := session.Claims{
		UserID: userID,
		Role:   h.role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, now time.Time) string {
	t.Helper()
	return h.GenerateToken(t, userID, now.Add(-time.Minute))
}
