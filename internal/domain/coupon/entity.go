package coupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidCapacity        = errors.New("coupon capacity cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// Coupon is what the backend returns for a successful validation. It is only
// kept around long enough to show the confirmation.
type Coupon struct {
	code           string
	name           string
	discountType   DiscountType
	discountValue  decimal.Decimal
	numOfCoupons   int
	createdAt      time.Time
	expirationDate time.Time
}

func NewCoupon(
	code, name string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	numOfCoupons int,
	createdAt, expirationDate time.Time,
) (*Coupon, error) {
	if _, err := ParseDiscountType(string(discountType)); err != nil {
		return nil, err
	}
	if discountValue.IsNegative() {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == DiscountPercentage && discountValue.GreaterThan(hundred) {
		return nil, ErrInvalidDiscountPercent
	}
	if numOfCoupons < 0 {
		return nil, ErrInvalidCapacity
	}

	return &Coupon{
		code:           code,
		name:           name,
		discountType:   discountType,
		discountValue:  discountValue,
		numOfCoupons:   numOfCoupons,
		createdAt:      createdAt,
		expirationDate: expirationDate,
	}, nil
}

func (c *Coupon) Code() string                   { return c.code }
func (c *Coupon) Name() string                   { return c.name }
func (c *Coupon) DiscountType() DiscountType     { return c.discountType }
func (c *Coupon) DiscountValue() decimal.Decimal { return c.discountValue }
func (c *Coupon) NumOfCoupons() int              { return c.numOfCoupons }
func (c *Coupon) CreatedAt() time.Time           { return c.createdAt }
func (c *Coupon) ExpirationDate() time.Time      { return c.expirationDate }
