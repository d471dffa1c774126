package backend

import (
	"context"
	"log/slog"
	"time"

	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type couponPayload struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	DiscountType   string          `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	NumOfCoupons   int             `json:"numOfCoupons"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpirationDate time.Time       `json:"expirationDate"`
}

type couponEnvelope struct {
	Coupon *couponPayload `json:"coupon"`
}

type CouponClient struct {
	client *HTTPClient
	path   string
	logger *slog.Logger
}

func NewCouponClient(client *HTTPClient, path string, logger *slog.Logger) *CouponClient {
	return &CouponClient{client: client, path: path, logger: logger}
}

// Validate asks the backend whether code applies to productID. The backend
// counts attempts, so the call is never retried.
func (c *CouponClient) Validate(ctx context.Context, productID string, code coupon.Code) (*coupon.Coupon, error) {
	var env couponEnvelope
	err := c.client.GetJSON(ctx, c.path, &env,
		WithQueryParam("productId", productID),
		WithQueryParam("code", code.String()),
		WithoutRetry(),
	)
	if err != nil {
		var apiErr *APIError
		if errs.As(err, &apiErr) || errs.Is(err, errs.ErrSessionExpired) {
			return nil, err
		}
		return nil, infra.WrapErr(c.logger, infra.KindBackendFailure, "coupon validation", err)
	}
	if env.Coupon == nil {
		return nil, infra.WrapErr(c.logger, infra.KindBackendFailure, "coupon validation returned no coupon", nil)
	}

	p := env.Coupon
	discountType, err := coupon.ParseDiscountType(p.DiscountType)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindBackendFailure, "coupon validation returned unknown discount type "+p.DiscountType, err)
	}
	result, err := coupon.NewCoupon(p.Code, p.Name, discountType, p.DiscountValue, p.NumOfCoupons, p.CreatedAt, p.ExpirationDate)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindBackendFailure, "coupon validation returned invalid coupon", err)
	}
	return result, nil
}
