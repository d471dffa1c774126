package components

import (
	"context"
	"log/slog"

	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase/alert"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewAlertProjection,
		fx.As(new(commands.Notifier)),
		fx.As(new(queries.AlertSource)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		fx.Annotate(
			NewLedger,
			fx.As(new(commands.CartCommands)),
			fx.As(new(commands.CartCommitter)),
			fx.As(new(queries.CartReader)),
		),
		fx.Annotate(
			NewCouponEngine,
			fx.As(new(commands.CouponCommands)),
			fx.As(new(queries.CouponStateSource)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewCouponQueries,
		queries.NewAlertQueries,
	),
)

func NewAlertProjection(clk clock.Clock, cfg config.Config) *alert.Projection {
	return alert.NewProjection(clk, cfg.Alert.TTL)
}

func NewLedger(
	store kvstore.Store,
	products commands.ProductLookup,
	notifier commands.Notifier,
	cfg config.Config,
	logger *slog.Logger,
) (*commands.Ledger, error) {
	return commands.NewLedger(context.Background(), store, products, notifier, cfg.Store.Key, logger)
}

func NewCouponEngine(
	validator commands.CouponValidator,
	ledger commands.CartCommitter,
	notifier commands.Notifier,
	cfg config.Config,
	logger *slog.Logger,
) *commands.CouponEngine {
	return commands.NewCouponEngine(validator, ledger, notifier, commands.CouponEngineConfig{
		CommitMaxRetries: cfg.Coupon.CommitMaxRetries,
		CommitBackoff:    cfg.Coupon.CommitBackoff,
	}, logger)
}
