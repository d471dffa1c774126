package api

import (
	"net/http"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionStore holds the shopper's bearer token for backend calls.
type SessionStore interface {
	Set(token string) error
	Clear()
	Claims() (session.Claims, bool)
}

type SessionHandler struct {
	sessions SessionStore
}

func NewSessionHandler(sessions SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// @Summary Get session
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromClaims(h.sessions.Claims()))
}

// @Summary Set session
// @Description Hand over the bearer token issued at sign-in
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.SetSessionRequest true "Token"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/session [put]
func (h *SessionHandler) Set(c *gin.Context) {
	var req reqdto.SetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.sessions.Set(req.Token); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid token", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaims(h.sessions.Claims()))
}

// @Summary Clear session
// @Tags session
// @Success 204 "No Content"
// @Router /api/session [delete]
func (h *SessionHandler) Clear(c *gin.Context) {
	h.sessions.Clear()
	c.Status(http.StatusNoContent)
}
