package api

import (
	"net/http"

	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/infra/backend"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// abortWithCommandError maps a command failure to a status. The message is
// the same text the banner shows.
func abortWithCommandError(c *gin.Context, err error) {
	httperr.AbortWithError(c, statusFor(err), err, commands.DisplayMessage(err), nil)
}

func statusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrSessionExpired):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrInvalidQuantity), errs.Is(err, errs.ErrInvalidCart), errs.Is(err, coupon.ErrInvalidCouponCode):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrItemNotInCart):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrOutOfStock), errs.Is(err, errs.ErrCartChanged):
		return http.StatusConflict
	case errs.Is(err, errs.ErrCouponRejected):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrProductLookup):
		var apiErr *backend.APIError
		if errs.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
