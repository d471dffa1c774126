//go:build unit || e2e

package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// CartCmpOpts compares decimals by value so "10" and "10.00" are equal.
var CartCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}
