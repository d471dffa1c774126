package queries

import (
	"context"
	"time"

	"storefront-cart/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type AppliedCouponView struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	DiscountType   string          `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	NumOfCoupons   int             `json:"numOfCoupons"`
	CreatedAt      time.Time       `json:"createdAt"`
	ExpirationDate time.Time       `json:"expirationDate"`
}

type CouponStateView struct {
	Phase     string             `json:"phase"`
	Loading   bool               `json:"loading"`
	ProductID string             `json:"productId,omitempty"`
	Message   string             `json:"message,omitempty"`
	Coupon    *AppliedCouponView `json:"coupon,omitempty"`
}

type CouponStateSource interface {
	State() commands.CouponState
}

type CouponQueries interface {
	GetState(ctx context.Context) (*CouponStateView, error)
}

type couponQueriesImpl struct {
	source CouponStateSource
}

func NewCouponQueries(source CouponStateSource) CouponQueries {
	return &couponQueriesImpl{source: source}
}

func (q *couponQueriesImpl) GetState(_ context.Context) (*CouponStateView, error) {
	st := q.source.State()
	view := &CouponStateView{
		Phase:     string(st.Phase),
		Loading:   st.Phase == commands.CouponValidating,
		ProductID: st.ProductID,
		Message:   st.Message,
	}
	if c := st.Coupon; c != nil {
		view.Coupon = &AppliedCouponView{
			Code:           c.Code(),
			Name:           c.Name(),
			DiscountType:   c.DiscountType().String(),
			DiscountValue:  c.DiscountValue(),
			NumOfCoupons:   c.NumOfCoupons(),
			CreatedAt:      c.CreatedAt(),
			ExpirationDate: c.ExpirationDate(),
		}
	}
	return view, nil
}
