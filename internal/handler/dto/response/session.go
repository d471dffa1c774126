package response

import (
	"time"

	"storefront-cart/internal/pkg/session"
)

type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"userId,omitempty"`
	Role          string     `json:"role,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

func FromClaims(claims session.Claims, ok bool) *SessionResponse {
	if !ok {
		return &SessionResponse{}
	}
	res := &SessionResponse{Authenticated: true, UserID: claims.UserID, Role: claims.Role}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		res.ExpiresAt = &exp
	}
	return res
}
