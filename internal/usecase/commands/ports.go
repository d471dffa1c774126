package commands

import (
	"context"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/usecase/alert"
)

// Collaborators the commands depend on. Implementations live in internal/infra.

type ProductLookup interface {
	Lookup(ctx context.Context, productID string) (cart.Product, error)
}

type CouponValidator interface {
	Validate(ctx context.Context, productID string, code coupon.Code) (*coupon.Coupon, error)
}

// CartStore is the versioned key-value cell the cart is mirrored into.
type CartStore interface {
	Get(ctx context.Context, key string) (kvstore.Entry, error)
	Set(ctx context.Context, key string, value []byte) (int64, error)
	CompareAndSet(ctx context.Context, key string, expected int64, value []byte) (int64, error)
}

type Notifier interface {
	Show(severity alert.Severity, message string, onClear func()) bool
}

// CartCommitter is the part of the ledger the coupon engine writes through.
type CartCommitter interface {
	Snapshot(ctx context.Context) (cart.Collection, int64, error)
	ReplaceCollectionIfUnchanged(ctx context.Context, items cart.Collection, version int64) (cart.Collection, error)
}
