package commands

import (
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/pkg/errs"
)

// userMessager is implemented by errors that carry text meant for the shopper,
// such as backend rejections.
type userMessager interface {
	UserMessage() string
}

// DisplayMessage turns an operation error into banner text. Backend messages
// pass through verbatim, attempt counters included.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}

	var um userMessager
	if errs.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}

	switch {
	case errs.Is(err, errs.ErrSessionExpired):
		return "Your session has expired. Please sign in again"
	case errs.Is(err, errs.ErrInvalidQuantity):
		return "Quantity must be at least 1"
	case errs.Is(err, errs.ErrInvalidCart):
		return "The cart lists the same product twice"
	case errs.Is(err, errs.ErrOutOfStock):
		return "This product is out of stock"
	case errs.Is(err, coupon.ErrInvalidCouponCode):
		return "Coupon codes look like XXXX-XXXX-XXXX"
	case errs.Is(err, errs.ErrItemNotInCart):
		return "This product is no longer in your cart"
	case errs.Is(err, errs.ErrCartChanged):
		return "Your cart changed while the coupon was applied. Please try again"
	case errs.Is(err, errs.ErrProductLookup):
		return "Could not load the product"
	case errs.Is(err, errs.ErrCouponRejected):
		return "The coupon could not be applied"
	case errs.Is(err, errs.ErrStorageOperationFailed):
		return "Your cart could not be saved"
	}
	return "Something went wrong"
}
