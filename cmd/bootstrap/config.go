package bootstrap

import (
	"fmt"

	"storefront-cart/internal/infra/kvstore"
	"storefront-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and refuses combinations that would only
// fail later, on the first cart write.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	switch cfg.Store.Driver {
	case kvstore.DriverMemory, kvstore.DriverFile, kvstore.DriverSQLite:
	case kvstore.DriverPostgres:
		if cfg.Store.DSN == "" {
			return config.Config{}, fmt.Errorf("STORE_DSN is required for the %s store", cfg.Store.Driver)
		}
	default:
		return config.Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Backend.RateLimitPerSec > 0 && cfg.Backend.RateLimitBurst < 1 {
		return config.Config{}, fmt.Errorf("BACKEND_RATE_BURST must be at least 1 when BACKEND_RATE_LIMIT is set")
	}
	return cfg, nil
}
