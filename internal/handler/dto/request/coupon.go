package request

import (
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/pkg/patch"
)

// ApplyCouponRequest takes either the three input segments or the joined code.
type ApplyCouponRequest struct {
	Segments []string `json:"segments" binding:"omitempty,len=3"`
	Code     *string  `json:"code" binding:"omitempty,max=32"`
}

func (r *ApplyCouponRequest) ToDomain() (coupon.Code, error) {
	if len(r.Segments) > 0 {
		return coupon.JoinSegments(r.Segments...)
	}
	return coupon.ParseCode(patch.Coalesce(r.Code, ""))
}
