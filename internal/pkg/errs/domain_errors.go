package errs

import "errors"

// Domain-specific sentinel errors shared across layers
var (
	// Cart errors
	ErrProductLookup   = errors.New("product lookup failed")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrInvalidCart     = errors.New("invalid cart")

	// Coupon errors
	ErrCouponRejected = errors.New("coupon rejected")
	ErrCartChanged    = errors.New("cart changed during coupon application")

	// Session errors
	ErrSessionExpired = errors.New("session expired")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
