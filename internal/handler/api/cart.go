package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const eventBuffer = 16

type CartHandler struct {
	cmds      commands.CartCommands
	q         queries.CartQueries
	logger    *slog.Logger
	keepAlive time.Duration
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries, logger *slog.Logger) *CartHandler {
	return &CartHandler{cmds: cmds, q: q, logger: logger, keepAlive: 30 * time.Second}
}

// @Summary Get cart
// @Description Current line items with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respondWithCart(c)
}

// @Summary Set item quantity
// @Description Add a product or change its quantity. Any discount on the item is dropped.
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.SetQuantityRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.AddOrUpdateItem(c.Request.Context(), c.Param("productId"), req.Quantity); err != nil {
		abortWithCommandError(c, err)
		return
	}
	h.respondWithCart(c)
}

// @Summary Increase quantity
// @Description Adds one unit unless the item is already at stock
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /api/cart/items/{productId}/increase [post]
func (h *CartHandler) Increase(c *gin.Context) {
	h.step(c, func(item *queries.CartItemView) (int, bool) {
		return h.cmds.IncreaseQuantity(item.ProductID, item.Quantity, item.Stock)
	})
}

// @Summary Decrease quantity
// @Description Removes one unit unless the item is at one
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /api/cart/items/{productId}/decrease [post]
func (h *CartHandler) Decrease(c *gin.Context) {
	h.step(c, func(item *queries.CartItemView) (int, bool) {
		return h.cmds.DecreaseQuantity(item.ProductID, item.Quantity)
	})
}

// @Summary Remove item
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	if _, err := h.cmds.RemoveItem(c.Request.Context(), c.Param("productId")); err != nil {
		abortWithCommandError(c, err)
		return
	}
	h.respondWithCart(c)
}

// @Summary Cart events
// @Description Server-sent events, one per ledger change. The first event is the current cart.
// @Tags cart
// @Produce text/event-stream
// @Router /api/cart/events [get]
func (h *CartHandler) Events(c *gin.Context) {
	events := make(chan commands.CartEvent, eventBuffer)
	unsubscribe := h.cmds.Subscribe(func(e commands.CartEvent) {
		select {
		case events <- e:
		default:
			h.logger.Warn("Dropping cart event for slow subscriber", slog.String("kind", string(e.Kind)))
		}
	})
	defer unsubscribe()

	view, err := h.q.GetCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	snapshot, err := resdto.FromCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return
	}
	initial := resdto.CartEventResponse{Kind: "snapshot", Cart: snapshot}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent(initial.Kind, initial)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			// Flush what was committed before the client went away.
			for {
				select {
				case e := <-events:
					h.writeEvent(c, e)
				default:
					return false
				}
			}
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case e := <-events:
			h.writeEvent(c, e)
			return true
		}
	})
}

func (h *CartHandler) writeEvent(c *gin.Context, e commands.CartEvent) {
	payload, err := resdto.FromCartEvent(e)
	if err != nil {
		h.logger.Error("Failed to render cart event", slog.String("error", err.Error()))
		return
	}
	c.SSEvent(payload.Kind, payload)
}

// step applies a quantity guard and only calls the ledger when it allows a change.
func (h *CartHandler) step(c *gin.Context, guard func(*queries.CartItemView) (int, bool)) {
	item, err := h.q.GetItem(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errs.Is(err, queries.ErrCartItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not in cart", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}

	next, changed := guard(item)
	if changed {
		if _, err := h.cmds.AddOrUpdateItem(c.Request.Context(), item.ProductID, next); err != nil {
			abortWithCommandError(c, err)
			return
		}
	}
	h.respondWithCart(c)
}

func (h *CartHandler) respondWithCart(c *gin.Context) {
	view, err := h.q.GetCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render cart", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
