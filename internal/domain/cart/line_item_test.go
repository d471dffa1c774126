//go:build unit

package cart_test

import (
	"encoding/json"
	"testing"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name     string
	mutate   func(*builder.ProductBuilder)
	quantity int
	errIs    error
}

func TestNewLineItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewProductBuilder()
		actual, err := cart.NewLineItem(b.BuildProduct(), 2)
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ProductID)
		assert.Equal(t, 2, actual.Quantity)
		assert.Equal(t, b.Stock, actual.Stock)
		assert.False(t, actual.HasDiscount())
		assert.Equal(t, "20", actual.Subtotal().String())
	})

	cases := []testCase{
		{name: "quantity at stock", quantity: 5},
		{name: "quantity of one", quantity: 1},
		{name: "zero quantity", quantity: 0, errIs: cart.ErrQuantityOutOfRange},
		{name: "above stock", quantity: 6, errIs: cart.ErrQuantityOutOfRange},
		{name: "out of stock", mutate: func(b *builder.ProductBuilder) { b.Stock = 0 }, quantity: 1, errIs: cart.ErrQuantityOutOfRange},
		{name: "empty product id", mutate: func(b *builder.ProductBuilder) { b.ID = " " }, quantity: 1, errIs: cart.ErrEmptyProductID},
		{name: "negative price", mutate: func(b *builder.ProductBuilder) { b.WithPrice("-1") }, quantity: 1, errIs: cart.ErrNegativePrice},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}
			_, err := cart.NewLineItem(b.BuildProduct(), c.quantity)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestLineItemJSON(t *testing.T) {
	t.Run("discount fields travel together", func(t *testing.T) {
		item := builder.NewProductBuilder().WithID("p-1").WithDiscount("AAAA-BBBB-CCCC", "4.50", 1).BuildLineItem()

		data, err := json.Marshal(item)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, "AAAA-BBBB-CCCC", raw["couponCode"])
		assert.Equal(t, "4.5", raw["discountValue"])
		assert.EqualValues(t, 1, raw["productsDiscounted"])

		var decoded cart.LineItem
		require.NoError(t, json.Unmarshal(data, &decoded))
		if diff := cmp.Diff(item, decoded, testutil.CartCmpOpts...); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("undiscounted item omits discount fields", func(t *testing.T) {
		data, err := json.Marshal(builder.NewProductBuilder().BuildLineItem())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "couponCode")
		assert.NotContains(t, string(data), "discountValue")
		assert.NotContains(t, string(data), "productsDiscounted")
	})

	t.Run("partial discount annotation is dropped", func(t *testing.T) {
		data := []byte(`{"productId":"p-1","name":"Mug","unitPrice":"10","stock":3,"quantity":1,"couponCode":"AAAA-BBBB-CCCC"}`)
		var decoded cart.LineItem
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Nil(t, decoded.Discount)
	})

	t.Run("numeric unit price is accepted", func(t *testing.T) {
		data := []byte(`{"productId":"p-1","name":"Mug","unitPrice":12.5,"stock":3,"quantity":1}`)
		var decoded cart.LineItem
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "12.5", decoded.UnitPrice.String())
	})
}

func TestQuantityGuards(t *testing.T) {
	t.Run("increase", func(t *testing.T) {
		next, ok := cart.IncreaseQuantity(2, 5)
		assert.True(t, ok)
		assert.Equal(t, 3, next)

		next, ok = cart.IncreaseQuantity(5, 5)
		assert.False(t, ok)
		assert.Equal(t, 5, next)
	})

	t.Run("decrease", func(t *testing.T) {
		next, ok := cart.DecreaseQuantity(2)
		assert.True(t, ok)
		assert.Equal(t, 1, next)

		next, ok = cart.DecreaseQuantity(1)
		assert.False(t, ok)
		assert.Equal(t, 1, next)
	})

	t.Run("bounds hold over repeated steps", func(t *testing.T) {
		const stock = 4
		q := 1
		for range 10 {
			q, _ = cart.IncreaseQuantity(q, stock)
			assert.LessOrEqual(t, q, stock)
		}
		for range 10 {
			q, _ = cart.DecreaseQuantity(q)
			assert.GreaterOrEqual(t, q, 1)
		}
		assert.Equal(t, 1, q)
	})
}
