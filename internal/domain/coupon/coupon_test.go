//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront-cart/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoupon(t *testing.T, typ coupon.DiscountType, value string, capacity int) *coupon.Coupon {
	t.Helper()
	now := time.Now()
	c, err := coupon.NewCoupon("ABCD-EFGH-1234", "Spring sale", typ, decimal.RequireFromString(value), capacity, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	return c
}

func TestCalculateItemDiscount(t *testing.T) {
	testCases := []struct {
		name         string
		typ          coupon.DiscountType
		value        string
		capacity     int
		unitPrice    string
		quantity     int
		expectAmount string
		expectUnits  int
	}{
		{
			name: "amount type covers every unit when capacity allows",
			typ:  coupon.DiscountAmount, value: "5", capacity: 10,
			unitPrice: "30", quantity: 2,
			expectAmount: "10.00", expectUnits: 2,
		},
		{
			name: "percentage type limited by capacity",
			typ:  coupon.DiscountPercentage, value: "20", capacity: 1,
			unitPrice: "10", quantity: 3,
			expectAmount: "2.00", expectUnits: 1,
		},
		{
			name: "percentage rounds to cents",
			typ:  coupon.DiscountPercentage, value: "15", capacity: 5,
			unitPrice: "9.99", quantity: 1,
			expectAmount: "1.50", expectUnits: 1,
		},
		{
			name: "amount with fractional value",
			typ:  coupon.DiscountAmount, value: "2.335", capacity: 3,
			unitPrice: "10", quantity: 3,
			expectAmount: "7.01", expectUnits: 3,
		},
		{
			name: "zero capacity yields zero discount",
			typ:  coupon.DiscountAmount, value: "5", capacity: 0,
			unitPrice: "10", quantity: 4,
			expectAmount: "0", expectUnits: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCoupon(t, tc.typ, tc.value, tc.capacity)

			actual := c.CalculateItemDiscount(decimal.RequireFromString(tc.unitPrice), tc.quantity)

			assert.True(t, decimal.RequireFromString(tc.expectAmount).Equal(actual.Amount),
				"expected %s but got %s", tc.expectAmount, actual.Amount)
			assert.Equal(t, tc.expectUnits, actual.UnitsCovered)
		})
	}
}

func TestNewCoupon(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name  string
		typ   coupon.DiscountType
		value string
		cap   int
		errIs error
	}{
		{name: "valid percentage", typ: coupon.DiscountPercentage, value: "100", cap: 1},
		{name: "valid amount", typ: coupon.DiscountAmount, value: "250", cap: 1},
		{name: "unknown type", typ: "bogo", value: "1", cap: 1, errIs: coupon.ErrUnknownDiscountType},
		{name: "negative value", typ: coupon.DiscountAmount, value: "-1", cap: 1, errIs: coupon.ErrInvalidDiscountValue},
		{name: "percentage above 100", typ: coupon.DiscountPercentage, value: "100.01", cap: 1, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "negative capacity", typ: coupon.DiscountAmount, value: "1", cap: -1, errIs: coupon.ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := coupon.NewCoupon("ABCD-EFGH-1234", "x", tc.typ, decimal.RequireFromString(tc.value), tc.cap, now, now)
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				assert.Equal(t, tc.typ, actual.DiscountType())
			} else {
				require.ErrorIs(t, err, tc.errIs)
				require.Nil(t, actual)
			}
		})
	}
}

func TestCode(t *testing.T) {
	t.Run("joins three segments", func(t *testing.T) {
		code, err := coupon.JoinSegments("AB12", " cd34", "EF56 ")
		require.NoError(t, err)
		assert.Equal(t, "AB12-cd34-EF56", code.String())
		assert.Equal(t, []string{"AB12", "cd34", "EF56"}, code.Segments())
	})

	t.Run("parses the joined form", func(t *testing.T) {
		code, err := coupon.ParseCode("AB12-CD34-EF56")
		require.NoError(t, err)
		assert.Equal(t, coupon.Code("AB12-CD34-EF56"), code)
	})

	invalid := []struct {
		name     string
		segments []string
	}{
		{name: "too few segments", segments: []string{"AB12", "CD34"}},
		{name: "too many segments", segments: []string{"AB12", "CD34", "EF56", "GH78"}},
		{name: "short segment", segments: []string{"AB1", "CD34", "EF56"}},
		{name: "long segment", segments: []string{"AB123", "CD34", "EF56"}},
		{name: "symbol in segment", segments: []string{"AB1!", "CD34", "EF56"}},
		{name: "empty segment", segments: []string{"", "CD34", "EF56"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coupon.JoinSegments(tc.segments...)
			assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
		})
	}

	t.Run("ungrouped code is rejected", func(t *testing.T) {
		_, err := coupon.ParseCode("AB12CD34EF56")
		assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
	})
}

func TestParseDiscountType(t *testing.T) {
	typ, err := coupon.ParseDiscountType("percentage")
	require.NoError(t, err)
	assert.Equal(t, coupon.DiscountPercentage, typ)

	_, err = coupon.ParseDiscountType("PERCENTAGE")
	assert.ErrorIs(t, err, coupon.ErrUnknownDiscountType)
}
