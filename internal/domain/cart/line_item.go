package cart

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and stock")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
)

// Product is the authoritative server view of a product at lookup time.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
}

// Discount is set on a line item only after a coupon was applied to it.
type Discount struct {
	CouponCode   string
	Amount       decimal.Decimal // total over all covered units
	UnitsCovered int
}

type LineItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Stock     int
	Quantity  int
	Discount  *Discount
}

// NewLineItem builds a fresh entry from server data. Any earlier discount is
// gone: a new quantity invalidates it.
func NewLineItem(p Product, quantity int) (LineItem, error) {
	if strings.TrimSpace(p.ID) == "" {
		return LineItem{}, ErrEmptyProductID
	}
	if p.Price.IsNegative() {
		return LineItem{}, ErrNegativePrice
	}
	if quantity < 1 || quantity > p.Stock {
		return LineItem{}, ErrQuantityOutOfRange
	}
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price.Round(2),
		ImageURL:  p.ImageURL,
		Stock:     p.Stock,
		Quantity:  quantity,
	}, nil
}

func (li LineItem) HasDiscount() bool {
	return li.Discount != nil
}

// Subtotal is the undiscounted price of the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) DiscountAmount() decimal.Decimal {
	if li.Discount == nil {
		return decimal.Zero
	}
	return li.Discount.Amount
}

func (li LineItem) WithDiscount(d Discount) LineItem {
	li.Discount = &d
	return li
}

// lineItemJSON is the persisted shape. The three discount fields travel flat
// and are either all present or all absent.
type lineItemJSON struct {
	ProductID          string           `json:"productId"`
	Name               string           `json:"name"`
	UnitPrice          decimal.Decimal  `json:"unitPrice"`
	ImageURL           string           `json:"imageUrl"`
	Stock              int              `json:"stock"`
	Quantity           int              `json:"quantity"`
	CouponCode         *string          `json:"couponCode,omitempty"`
	DiscountValue      *decimal.Decimal `json:"discountValue,omitempty"`
	ProductsDiscounted *int             `json:"productsDiscounted,omitempty"`
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	out := lineItemJSON{
		ProductID: li.ProductID,
		Name:      li.Name,
		UnitPrice: li.UnitPrice,
		ImageURL:  li.ImageURL,
		Stock:     li.Stock,
		Quantity:  li.Quantity,
	}
	if d := li.Discount; d != nil {
		code, amount, units := d.CouponCode, d.Amount, d.UnitsCovered
		out.CouponCode = &code
		out.DiscountValue = &amount
		out.ProductsDiscounted = &units
	}
	return json.Marshal(out)
}

// UnmarshalJSON drops a partial discount annotation instead of failing, so a
// half-written entry degrades to an undiscounted line.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var in lineItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*li = LineItem{
		ProductID: in.ProductID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		ImageURL:  in.ImageURL,
		Stock:     in.Stock,
		Quantity:  in.Quantity,
	}
	if in.CouponCode != nil && in.DiscountValue != nil && in.ProductsDiscounted != nil {
		li.Discount = &Discount{
			CouponCode:   *in.CouponCode,
			Amount:       *in.DiscountValue,
			UnitsCovered: *in.ProductsDiscounted,
		}
	}
	return nil
}
