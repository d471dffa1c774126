package coupon

import "github.com/shopspring/decimal"

// ItemDiscount is the discount granted to a single line item.
type ItemDiscount struct {
	Amount       decimal.Decimal // total for all covered units, 2 places
	UnitsCovered int
}

// CalculateItemDiscount prorates the coupon over at most NumOfCoupons units.
// Eligibility is the backend's call; a zero capacity simply yields a zero discount.
func (c *Coupon) CalculateItemDiscount(unitPrice decimal.Decimal, quantity int) ItemDiscount {
	units := min(quantity, c.numOfCoupons)
	if units < 0 {
		units = 0
	}
	n := decimal.NewFromInt(int64(units))

	var amount decimal.Decimal
	switch c.discountType {
	case DiscountAmount:
		amount = c.discountValue.Mul(n)
	case DiscountPercentage:
		amount = c.discountValue.Mul(unitPrice).Mul(n).Div(hundred)
	}

	return ItemDiscount{
		Amount:       amount.Round(2),
		UnitsCovered: units,
	}
}
