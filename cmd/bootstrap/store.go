package bootstrap

import (
	"context"
	"log/slog"

	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	store, err := kvstore.Open(context.Background(), cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Cart store opened", slog.String("driver", cfg.Store.Driver), slog.String("key", cfg.Store.Key))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
