package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/alert"

	"github.com/cenkalti/backoff/v4"
)

type CouponPhase string

const (
	CouponIdle       CouponPhase = "idle"
	CouponValidating CouponPhase = "validating"
	CouponApplied    CouponPhase = "applied"
	CouponRejected   CouponPhase = "rejected"
)

// CouponState is what the coupon form renders.
type CouponState struct {
	Phase     CouponPhase
	ProductID string
	Coupon    *coupon.Coupon
	Message   string
}

type CouponCommands interface {
	ApplyCoupon(ctx context.Context, code coupon.Code, target cart.LineItem) (*coupon.Coupon, error)
	State() CouponState
}

type CouponEngineConfig struct {
	CommitMaxRetries int
	CommitBackoff    time.Duration
}

type CouponEngine struct {
	mu      sync.Mutex
	state   CouponState
	attempt uint64

	validator CouponValidator
	ledger    CartCommitter
	notifier  Notifier
	cfg       CouponEngineConfig
	logger    *slog.Logger
}

func NewCouponEngine(validator CouponValidator, ledger CartCommitter, notifier Notifier, cfg CouponEngineConfig, logger *slog.Logger) *CouponEngine {
	if cfg.CommitBackoff <= 0 {
		cfg.CommitBackoff = 25 * time.Millisecond
	}
	if cfg.CommitMaxRetries < 0 {
		cfg.CommitMaxRetries = 0
	}
	return &CouponEngine{
		state:     CouponState{Phase: CouponIdle},
		validator: validator,
		ledger:    ledger,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// ApplyCoupon validates code for target and writes the prorated discount onto
// the matching persisted line item. The commit is compare-and-set: if the cart
// moved underneath, the patch is recomputed from a fresh read.
func (e *CouponEngine) ApplyCoupon(ctx context.Context, code coupon.Code, target cart.LineItem) (*coupon.Coupon, error) {
	attempt := e.begin(target.ProductID)

	validated, err := e.validator.Validate(ctx, target.ProductID, code)
	if err != nil {
		if !errs.Is(err, errs.ErrSessionExpired) {
			err = errs.Mark(errs.Wrapf(err, "validate coupon %s", code), errs.ErrCouponRejected)
		}
		return nil, e.reject(attempt, err)
	}

	discount := validated.CalculateItemDiscount(target.UnitPrice, target.Quantity)
	patch := cart.Discount{
		CouponCode:   code.String(),
		Amount:       discount.Amount,
		UnitsCovered: discount.UnitsCovered,
	}

	if err := e.commit(ctx, target.ProductID, patch); err != nil {
		return nil, e.reject(attempt, err)
	}

	e.logger.Info("Coupon applied",
		slog.String("product_id", target.ProductID),
		slog.String("code", code.String()),
		slog.String("discount", patch.Amount.StringFixed(2)),
		slog.Int("units", patch.UnitsCovered))
	e.finish(attempt, CouponApplied, validated, fmt.Sprintf("Coupon %s applied", couponLabel(validated)), alert.SeveritySuccess)
	return validated, nil
}

func (e *CouponEngine) State() CouponState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *CouponEngine) commit(ctx context.Context, productID string, patch cart.Discount) error {
	conflicts := 0
	operation := func() error {
		items, version, err := e.ledger.Snapshot(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		patched, found := items.ApplyDiscount(productID, patch)
		if !found {
			return backoff.Permanent(errs.Mark(fmt.Errorf("product %s not in persisted cart", productID), errs.ErrItemNotInCart))
		}
		if _, err := e.ledger.ReplaceCollectionIfUnchanged(ctx, patched, version); err != nil {
			if infra.IsKind(err, infra.KindVersionConflict) {
				conflicts++
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = e.cfg.CommitBackoff
	policy.MaxElapsedTime = 0
	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(e.cfg.CommitMaxRetries)), ctx))
	if err != nil && infra.IsKind(err, infra.KindVersionConflict) {
		return errs.Mark(errs.Wrapf(err, "cart changed %d times", conflicts), errs.ErrCartChanged)
	}
	return err
}

func (e *CouponEngine) begin(productID string) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attempt++
	e.state = CouponState{Phase: CouponValidating, ProductID: productID, Coupon: e.state.Coupon}
	return e.attempt
}

func (e *CouponEngine) reject(attempt uint64, err error) error {
	e.logger.Warn("Coupon not applied", slog.String("error", err.Error()))
	e.finish(attempt, CouponRejected, nil, DisplayMessage(err), alert.SeverityError)
	return err
}

// finish records the outcome and hands the message to the banner. The engine
// goes back to idle when that banner expires.
func (e *CouponEngine) finish(attempt uint64, phase CouponPhase, c *coupon.Coupon, message string, severity alert.Severity) {
	e.mu.Lock()
	if attempt != e.attempt {
		e.mu.Unlock()
		return
	}
	e.state.Phase = phase
	e.state.Message = message
	if c != nil {
		e.state.Coupon = c
	}
	e.mu.Unlock()

	if e.notifier != nil {
		e.notifier.Show(severity, message, func() { e.resetToIdle(attempt) })
	}
}

func (e *CouponEngine) resetToIdle(attempt uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if attempt != e.attempt {
		return
	}
	e.state = CouponState{Phase: CouponIdle, Coupon: e.state.Coupon}
}

func couponLabel(c *coupon.Coupon) string {
	if c.Name() != "" {
		return c.Name()
	}
	return c.Code()
}
