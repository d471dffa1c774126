//go:build unit || e2e

package builder

import (
	"storefront-cart/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
	Quantity int
	Discount *cart.Discount
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:       uuid.NewString(),
		Name:     "Handmade Mug",
		Price:    decimal.RequireFromString("10.00"),
		Stock:    5,
		ImageURL: "https://cdn.example.com/mug.png",
		Quantity: 1,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

func (b *ProductBuilder) WithQuantity(quantity int) *ProductBuilder {
	b.Quantity = quantity
	return b
}

func (b *ProductBuilder) WithDiscount(code, amount string, units int) *ProductBuilder {
	b.Discount = &cart.Discount{
		CouponCode:   code,
		Amount:       decimal.RequireFromString(amount),
		UnitsCovered: units,
	}
	return b
}

// Build methods
func (b *ProductBuilder) BuildProduct() cart.Product {
	return cart.Product{
		ID:       b.ID,
		Name:     b.Name,
		Price:    b.Price,
		Stock:    b.Stock,
		ImageURL: b.ImageURL,
	}
}

func (b *ProductBuilder) BuildLineItem() cart.LineItem {
	item := cart.LineItem{
		ProductID: b.ID,
		Name:      b.Name,
		UnitPrice: b.Price,
		ImageURL:  b.ImageURL,
		Stock:     b.Stock,
		Quantity:  b.Quantity,
	}
	if b.Discount != nil {
		d := *b.Discount
		item.Discount = &d
	}
	return item
}

// BuildProductPayload is the JSON body the backend returns for a product lookup.
func (b *ProductBuilder) BuildProductPayload() map[string]any {
	return map[string]any{
		"id":     b.ID,
		"name":   b.Name,
		"price":  b.Price.InexactFloat64(),
		"stock":  b.Stock,
		"images": []map[string]any{{"url": b.ImageURL}},
	}
}
