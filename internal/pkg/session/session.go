package session

import (
	"errors"
	"sync"

	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors what the marketplace backend puts into access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Holder keeps the bearer token handed over by the UI shell. The signature is
// never checked here (the backend does that); the claims are only read so an
// expired session fails fast instead of costing a round-trip.
type Holder struct {
	mu     sync.RWMutex
	token  string
	claims *Claims
	clock  clock.Clock
	parser *jwt.Parser
}

func NewHolder(clk clock.Clock) *Holder {
	return &Holder{
		clock:  clk,
		parser: jwt.NewParser(),
	}
}

func (h *Holder) Set(token string) error {
	claims := &Claims{}
	if _, _, err := h.parser.ParseUnverified(token, claims); err != nil {
		return errs.Mark(errs.Wrap(err, "parse session token"), ErrInvalidToken)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.claims = claims
	return nil
}

func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	h.claims = nil
}

// Bearer returns the current token, or "" for an anonymous session.
func (h *Holder) Bearer() (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token == "" {
		return "", nil
	}
	if h.claims.ExpiresAt != nil && !h.clock.Now().Before(h.claims.ExpiresAt.Time) {
		return "", errs.ErrSessionExpired
	}
	return h.token, nil
}

func (h *Holder) Claims() (Claims, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.claims == nil {
		return Claims{}, false
	}
	return *h.claims, true
}
