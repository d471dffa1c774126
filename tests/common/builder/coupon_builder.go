//go:build unit || e2e

package builder

import (
	"time"

	"storefront-cart/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Code           string
	Name           string
	DiscountType   coupon.DiscountType
	DiscountValue  decimal.Decimal
	NumOfCoupons   int
	CreatedAt      time.Time
	ExpirationDate time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		Code:           "SAVE-2026-MUGS",
		Name:           "Mug week",
		DiscountType:   coupon.DiscountAmount,
		DiscountValue:  decimal.NewFromInt(5),
		NumOfCoupons:   10,
		CreatedAt:      now,
		ExpirationDate: now.Add(30 * 24 * time.Hour),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) Percentage(value string) *CouponBuilder {
	b.DiscountType = coupon.DiscountPercentage
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *CouponBuilder) Amount(value string) *CouponBuilder {
	b.DiscountType = coupon.DiscountAmount
	b.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *CouponBuilder) Capacity(n int) *CouponBuilder {
	b.NumOfCoupons = n
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	c, err := coupon.NewCoupon(b.Code, b.Name, b.DiscountType, b.DiscountValue, b.NumOfCoupons, b.CreatedAt, b.ExpirationDate)
	if err != nil {
		panic("invalid coupon builder state: " + err.Error())
	}
	return c
}

// BuildPayload is the JSON body the backend returns for a successful validation.
func (b *CouponBuilder) BuildPayload() map[string]any {
	return map[string]any{
		"coupon": map[string]any{
			"code":           b.Code,
			"name":           b.Name,
			"discountType":   string(b.DiscountType),
			"discountValue":  b.DiscountValue.InexactFloat64(),
			"numOfCoupons":   b.NumOfCoupons,
			"createdAt":      b.CreatedAt.Format(time.RFC3339),
			"expirationDate": b.ExpirationDate.Format(time.RFC3339),
		},
	}
}
