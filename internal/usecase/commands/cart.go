package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/pkg/patch"
	"storefront-cart/internal/usecase/alert"

	"github.com/google/uuid"
)

const DefaultCartKey = "cartItems"

type CartEventKind string

const (
	CartEventAdded    CartEventKind = "added"
	CartEventUpdated  CartEventKind = "updated"
	CartEventRemoved  CartEventKind = "removed"
	CartEventReplaced CartEventKind = "replaced"
	CartEventReloaded CartEventKind = "reloaded"
)

// CartEvent is delivered to subscribers after every change. Items is a copy.
type CartEvent struct {
	Kind      CartEventKind
	ProductID string
	Items     cart.Collection
	Version   int64
}

type CartCommands interface {
	AddOrUpdateItem(ctx context.Context, productID string, quantity int) (cart.Collection, error)
	RemoveItem(ctx context.Context, productID string) (cart.Collection, error)
	IncreaseQuantity(productID string, current, stock int) (int, bool)
	DecreaseQuantity(productID string, current int) (int, bool)
	ReplaceCollection(ctx context.Context, items cart.Collection) (cart.Collection, error)
	ReplaceCollectionIfUnchanged(ctx context.Context, items cart.Collection, version int64) (cart.Collection, error)
	Snapshot(ctx context.Context) (cart.Collection, int64, error)
	Items() cart.Collection
	Reload(ctx context.Context) (cart.Collection, error)
	Subscribe(fn func(CartEvent)) (unsubscribe func())
}

// Ledger owns the in-memory cart and mirrors it into the store after every
// mutation. Lookups run outside the lock; mutations are last-write-wins.
type Ledger struct {
	mu      sync.Mutex
	items   cart.Collection
	version int64

	// emitMu keeps subscribers seeing events in commit order.
	emitMu sync.Mutex
	subMu  sync.RWMutex
	subs   map[uuid.UUID]func(CartEvent)

	store    CartStore
	key      string
	products ProductLookup
	notifier Notifier
	logger   *slog.Logger
}

// NewLedger loads the persisted cart. Unreadable data starts an empty cart.
func NewLedger(ctx context.Context, store CartStore, products ProductLookup, notifier Notifier, key string, logger *slog.Logger) (*Ledger, error) {
	l := &Ledger{
		items:    cart.Collection{},
		subs:     make(map[uuid.UUID]func(CartEvent)),
		store:    store,
		key:      patch.OrDefault(key, DefaultCartKey),
		products: products,
		notifier: notifier,
		logger:   logger,
	}
	if _, err := l.Reload(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// AddOrUpdateItem rebuilds the entry for productID from fresh product data.
// An existing entry keeps its position and loses any discount.
func (l *Ledger) AddOrUpdateItem(ctx context.Context, productID string, quantity int) (cart.Collection, error) {
	if quantity < 1 {
		return nil, l.fail(errs.Mark(fmt.Errorf("quantity %d for %s", quantity, productID), errs.ErrInvalidQuantity))
	}

	product, err := l.products.Lookup(ctx, productID)
	if err != nil {
		return nil, l.fail(errs.Mark(errs.Wrapf(err, "lookup product %s", productID), errs.ErrProductLookup))
	}
	if product.Stock <= 0 {
		return nil, l.fail(errs.Mark(fmt.Errorf("product %s has no stock", productID), errs.ErrOutOfStock))
	}
	if quantity > product.Stock {
		l.logger.Debug("Clamping quantity to stock",
			slog.String("product_id", productID),
			slog.Int("requested", quantity),
			slog.Int("stock", product.Stock))
		quantity = product.Stock
	}
	item, err := cart.NewLineItem(product, quantity)
	if err != nil {
		return nil, l.fail(errs.Mark(errs.Wrapf(err, "build line item %s", productID), errs.ErrProductLookup))
	}

	l.mu.Lock()
	next, replaced := l.items.Upsert(item)
	kind := CartEventAdded
	if replaced {
		kind = CartEventUpdated
	}
	out, err := l.commitLocked(ctx, next, kind, item.ProductID)
	if err != nil {
		return nil, l.fail(err)
	}

	msg := fmt.Sprintf("%s added to cart", item.Name)
	if replaced {
		msg = fmt.Sprintf("%s quantity set to %d", item.Name, item.Quantity)
	}
	l.notify(alert.SeveritySuccess, msg)
	return out, nil
}

// RemoveItem drops productID. Removing an absent product is not an error.
func (l *Ledger) RemoveItem(ctx context.Context, productID string) (cart.Collection, error) {
	l.mu.Lock()
	next, removed := l.items.Remove(productID)
	out, err := l.commitLocked(ctx, next, CartEventRemoved, productID)
	if err != nil {
		return nil, l.fail(err)
	}
	if removed {
		l.notify(alert.SeveritySuccess, "Item removed from cart")
	}
	return out, nil
}

func (l *Ledger) IncreaseQuantity(_ string, current, stock int) (int, bool) {
	return cart.IncreaseQuantity(current, stock)
}

func (l *Ledger) DecreaseQuantity(_ string, current int) (int, bool) {
	return cart.DecreaseQuantity(current)
}

// ReplaceCollection overwrites memory and store with exactly items.
func (l *Ledger) ReplaceCollection(ctx context.Context, items cart.Collection) (cart.Collection, error) {
	if err := items.Validate(); err != nil {
		return nil, l.fail(errs.Mark(errs.Wrap(err, "validate cart"), errs.ErrInvalidCart))
	}
	l.mu.Lock()
	return l.commitLocked(ctx, items.Clone(), CartEventReplaced, "")
}

// ReplaceCollectionIfUnchanged commits items only if the stored cart is still
// at version. Otherwise it fails with infra.KindVersionConflict and nothing changes.
func (l *Ledger) ReplaceCollectionIfUnchanged(ctx context.Context, items cart.Collection, version int64) (cart.Collection, error) {
	// The coupon engine reports failures of its own commits.
	if err := items.Validate(); err != nil {
		err = errs.Mark(errs.Wrap(err, "validate cart"), errs.ErrInvalidCart)
		l.logger.Warn("Cart commit refused", slog.String("error", err.Error()))
		return nil, err
	}
	data, err := items.Encode()
	if err != nil {
		return nil, errs.Wrap(err, "encode cart")
	}

	l.mu.Lock()
	newVersion, err := l.store.CompareAndSet(ctx, l.key, version, data)
	if err != nil {
		l.mu.Unlock()
		if infra.IsKind(err, infra.KindVersionConflict) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrap(err, "commit cart"), errs.ErrStorageOperationFailed)
	}
	return l.publishLocked(items.Clone(), newVersion, CartEventReplaced, ""), nil
}

// Snapshot re-reads the persisted cart, bypassing the in-memory copy.
func (l *Ledger) Snapshot(ctx context.Context) (cart.Collection, int64, error) {
	entry, err := l.store.Get(ctx, l.key)
	if err != nil {
		if infra.IsKind(err, infra.KindCorrupt) {
			l.logger.Warn("Stored cart is unreadable, treating it as empty",
				slog.String("key", l.key),
				slog.String("error", err.Error()))
			return cart.Collection{}, 0, nil
		}
		return nil, 0, errs.Mark(errs.Wrap(err, "read cart"), errs.ErrStorageOperationFailed)
	}

	items, err := cart.DecodeCollection(entry.Value)
	if err != nil {
		l.logger.Warn("Stored cart is unreadable, treating it as empty",
			slog.String("key", l.key),
			slog.Int64("version", entry.Version),
			slog.String("error", err.Error()))
		return cart.Collection{}, entry.Version, nil
	}
	return items, entry.Version, nil
}

func (l *Ledger) Items() cart.Collection {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items.Clone()
}

// Version is the store version the in-memory cart was last synced with.
func (l *Ledger) Version() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version
}

// Reload replaces the in-memory cart with the persisted one.
func (l *Ledger) Reload(ctx context.Context) (cart.Collection, error) {
	items, version, err := l.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	return l.publishLocked(items, version, CartEventReloaded, ""), nil
}

// Subscribe registers fn for every later change. fn runs on the mutating
// goroutine and must not call mutating Ledger methods.
func (l *Ledger) Subscribe(fn func(CartEvent)) (unsubscribe func()) {
	id := uuid.New()
	l.subMu.Lock()
	l.subs[id] = fn
	l.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.subMu.Lock()
			delete(l.subs, id)
			l.subMu.Unlock()
		})
	}
}

// commitLocked must be called with mu held; it always releases it.
func (l *Ledger) commitLocked(ctx context.Context, next cart.Collection, kind CartEventKind, productID string) (cart.Collection, error) {
	data, err := next.Encode()
	if err != nil {
		l.mu.Unlock()
		return nil, errs.Wrap(err, "encode cart")
	}
	version, err := l.store.Set(ctx, l.key, data)
	if err != nil {
		l.mu.Unlock()
		return nil, errs.Mark(errs.Wrap(err, "write cart"), errs.ErrStorageOperationFailed)
	}
	return l.publishLocked(next, version, kind, productID), nil
}

// publishLocked swaps in next, releases mu and notifies subscribers in order.
func (l *Ledger) publishLocked(next cart.Collection, version int64, kind CartEventKind, productID string) cart.Collection {
	l.items = next
	l.version = version
	event := CartEvent{Kind: kind, ProductID: productID, Items: next.Clone(), Version: version}
	out := next.Clone()

	l.emitMu.Lock()
	l.mu.Unlock()
	defer l.emitMu.Unlock()

	l.subMu.RLock()
	subs := make([]func(CartEvent), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.subMu.RUnlock()

	for _, fn := range subs {
		fn(CartEvent{Kind: event.Kind, ProductID: event.ProductID, Items: event.Items.Clone(), Version: event.Version})
	}
	return out
}

func (l *Ledger) fail(err error) error {
	l.logger.Warn("Cart operation failed", slog.String("error", err.Error()))
	l.notify(alert.SeverityError, DisplayMessage(err))
	return err
}

func (l *Ledger) notify(severity alert.Severity, message string) {
	if l.notifier != nil {
		l.notifier.Show(severity, message, nil)
	}
}
