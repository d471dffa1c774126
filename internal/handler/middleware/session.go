package middleware

import (
	"storefront-cart/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

const ctxSessionClaimsKey = "session_claims"

// ClaimsSource exposes the claims of the token the UI shell handed over.
type ClaimsSource interface {
	Claims() (session.Claims, bool)
}

// SessionContext tags the request with the signed-in shopper, if any. It
// never rejects a request: the backend decides what a session may do.
func SessionContext(sessions ClaimsSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := sessions.Claims(); ok {
			c.Set(ctxSessionClaimsKey, map[string]any{
				"user_id": claims.UserID,
				"role":    claims.Role,
			})
		}
		c.Next()
	}
}
