package api

import (
	"net/http"

	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	q queries.AlertQueries
}

func NewAlertHandler(q queries.AlertQueries) *AlertHandler {
	return &AlertHandler{q: q}
}

// @Summary Current alert
// @Description The banner on display, or null once it expired
// @Tags alert
// @Produce json
// @Success 200 {object} resdto.AlertEnvelope
// @Router /api/alert [get]
func (h *AlertHandler) Get(c *gin.Context) {
	view, err := h.q.GetCurrent(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load alert", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAlertView(view))
}
