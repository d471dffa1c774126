package api

import (
	"net/http"

	reqdto "storefront-cart/internal/handler/dto/request"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	coupons commands.CouponCommands
	carts   commands.CartCommands
	q       queries.CouponQueries
}

func NewCouponHandler(coupons commands.CouponCommands, carts commands.CartCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{coupons: coupons, carts: carts, q: q}
}

// @Summary Apply coupon
// @Description Validate a XXXX-XXXX-XXXX code for one cart item and write the discount onto it
// @Tags coupon
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.ApplyCouponRequest true "Code as three segments or joined"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/cart/items/{productId}/coupon [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	code, err := req.ToDomain()
	if err != nil {
		abortWithCommandError(c, err)
		return
	}

	target, ok := h.carts.Items().Find(c.Param("productId"))
	if !ok {
		abortWithCommandError(c, errs.Mark(errs.New("coupon target missing"), errs.ErrItemNotInCart))
		return
	}

	applied, err := h.coupons.ApplyCoupon(c.Request.Context(), code, target)
	if err != nil {
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(applied))
}

// @Summary Coupon state
// @Description Phase of the latest apply attempt and the most recent coupon
// @Tags coupon
// @Produce json
// @Success 200 {object} resdto.CouponStateResponse
// @Router /api/coupon [get]
func (h *CouponHandler) State(c *gin.Context) {
	view, err := h.q.GetState(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load coupon state", nil)
		return
	}
	res, err := resdto.FromCouponStateView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render coupon state", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
