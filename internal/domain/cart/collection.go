package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrDuplicateProduct = errors.New("duplicate product in cart")

// Collection is ordered by insertion; that order is the display order.
type Collection []LineItem

func DecodeCollection(data []byte) (Collection, error) {
	if len(data) == 0 {
		return Collection{}, nil
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = Collection{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode always yields a JSON array, "[]" for an empty cart.
func (c Collection) Encode() ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return json.Marshal(c)
}

func (c Collection) Validate() error {
	seen := make(map[string]struct{}, len(c))
	for _, item := range c {
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProduct, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, item := range c {
		if item.Discount != nil {
			d := *item.Discount
			item.Discount = &d
		}
		out[i] = item
	}
	return out
}

func (c Collection) IndexOf(productID string) int {
	for i, item := range c {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c Collection) Find(productID string) (LineItem, bool) {
	if i := c.IndexOf(productID); i >= 0 {
		return c[i], true
	}
	return LineItem{}, false
}

// Upsert replaces the entry for item.ProductID in place, or appends it.
// The receiver is not modified.
func (c Collection) Upsert(item LineItem) (Collection, bool) {
	out := c.Clone()
	if i := out.IndexOf(item.ProductID); i >= 0 {
		out[i] = item
		return out, true
	}
	return append(out, item), false
}

// Remove drops the entry for productID. Removing an absent product is a no-op.
func (c Collection) Remove(productID string) (Collection, bool) {
	i := c.IndexOf(productID)
	if i < 0 {
		return c.Clone(), false
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i].Clone()...)
	out = append(out, c[i+1:].Clone()...)
	return out, true
}

// ApplyDiscount annotates only the matching entry; the rest is left untouched.
func (c Collection) ApplyDiscount(productID string, d Discount) (Collection, bool) {
	out := c.Clone()
	i := out.IndexOf(productID)
	if i < 0 {
		return out, false
	}
	out[i] = out[i].WithDiscount(d)
	return out, true
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Units    int
}

func (c Collection) Totals() Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}
	for _, item := range c {
		t.Subtotal = t.Subtotal.Add(item.Subtotal())
		t.Discount = t.Discount.Add(item.DiscountAmount())
		t.Units += item.Quantity
	}
	t.Total = t.Subtotal.Sub(t.Discount)
	if t.Total.IsNegative() {
		t.Total = decimal.Zero
	}
	t.Subtotal = t.Subtotal.Round(2)
	t.Discount = t.Discount.Round(2)
	t.Total = t.Total.Round(2)
	return t
}
