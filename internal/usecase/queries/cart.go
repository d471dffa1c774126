package queries

import (
	"context"
	"errors"

	"storefront-cart/internal/domain/cart"

	"github.com/shopspring/decimal"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartItemView struct {
	ProductID          string           `json:"productId"`
	Name               string           `json:"name"`
	UnitPrice          decimal.Decimal  `json:"unitPrice"`
	ImageURL           string           `json:"imageUrl"`
	Stock              int              `json:"stock"`
	Quantity           int              `json:"quantity"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	CouponCode         string           `json:"couponCode,omitempty"`
	DiscountValue      *decimal.Decimal `json:"discountValue,omitempty"`
	ProductsDiscounted int              `json:"productsDiscounted,omitempty"`
	CanIncrease        bool             `json:"canIncrease"`
	CanDecrease        bool             `json:"canDecrease"`
}

type CartView struct {
	Items    []CartItemView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Units    int             `json:"units"`
	Version  int64           `json:"version"`
}

// CartReader is satisfied by the ledger.
type CartReader interface {
	Items() cart.Collection
	Version() int64
}

type CartQueries interface {
	GetCart(ctx context.Context) (*CartView, error)
	GetItem(ctx context.Context, productID string) (*CartItemView, error)
}

type cartQueriesImpl struct {
	reader CartReader
}

func NewCartQueries(reader CartReader) CartQueries {
	return &cartQueriesImpl{reader: reader}
}

func (q *cartQueriesImpl) GetCart(_ context.Context) (*CartView, error) {
	return BuildCartView(q.reader.Items(), q.reader.Version()), nil
}

// BuildCartView renders items with their totals. Used for event payloads too.
func BuildCartView(items cart.Collection, version int64) *CartView {
	totals := items.Totals()
	view := &CartView{
		Items:    make([]CartItemView, 0, len(items)),
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Total:    totals.Total,
		Units:    totals.Units,
		Version:  version,
	}
	for _, item := range items {
		view.Items = append(view.Items, toCartItemView(item))
	}
	return view
}

func (q *cartQueriesImpl) GetItem(_ context.Context, productID string) (*CartItemView, error) {
	item, ok := q.reader.Items().Find(productID)
	if !ok {
		return nil, ErrCartItemNotFound
	}
	view := toCartItemView(item)
	return &view, nil
}

func toCartItemView(item cart.LineItem) CartItemView {
	_, canIncrease := cart.IncreaseQuantity(item.Quantity, item.Stock)
	_, canDecrease := cart.DecreaseQuantity(item.Quantity)
	view := CartItemView{
		ProductID:   item.ProductID,
		Name:        item.Name,
		UnitPrice:   item.UnitPrice,
		ImageURL:    item.ImageURL,
		Stock:       item.Stock,
		Quantity:    item.Quantity,
		Subtotal:    item.Subtotal().Round(2),
		CanIncrease: canIncrease,
		CanDecrease: canDecrease,
	}
	if item.Discount != nil {
		amount := item.Discount.Amount
		view.CouponCode = item.Discount.CouponCode
		view.DiscountValue = &amount
		view.ProductsDiscounted = item.Discount.UnitsCovered
	}
	return view
}
