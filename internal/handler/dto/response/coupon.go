package response

import (
	"time"

	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	DiscountType   string    `json:"discountType"`
	DiscountValue  string    `json:"discountValue"`
	NumOfCoupons   int       `json:"numOfCoupons"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpirationDate time.Time `json:"expirationDate"`
}

type CouponStateResponse struct {
	Phase     string          `json:"phase"`
	Loading   bool            `json:"loading"`
	ProductID string          `json:"productId,omitempty"`
	Message   string          `json:"message,omitempty"`
	Coupon    *CouponResponse `json:"coupon,omitempty" copier:"-"`
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return &CouponResponse{
		Code:           c.Code(),
		Name:           c.Name(),
		DiscountType:   c.DiscountType().String(),
		DiscountValue:  c.DiscountValue().String(),
		NumOfCoupons:   c.NumOfCoupons(),
		CreatedAt:      c.CreatedAt(),
		ExpirationDate: c.ExpirationDate(),
	}
}

func FromCouponStateView(v *queries.CouponStateView) (*CouponStateResponse, error) {
	var res CouponStateResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if v.Coupon != nil {
		res.Coupon = &CouponResponse{
			Code:           v.Coupon.Code,
			Name:           v.Coupon.Name,
			DiscountType:   v.Coupon.DiscountType,
			DiscountValue:  v.Coupon.DiscountValue.String(),
			NumOfCoupons:   v.Coupon.NumOfCoupons,
			CreatedAt:      v.Coupon.CreatedAt,
			ExpirationDate: v.Coupon.ExpirationDate,
		}
	}
	return &res, nil
}
