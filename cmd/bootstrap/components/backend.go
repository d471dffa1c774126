package components

import (
	"log/slog"

	"storefront-cart/internal/infra/backend"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/usecase/commands"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewHTTPClient,
		fx.Annotate(
			NewProductClient,
			fx.As(new(commands.ProductLookup)),
		),
		fx.Annotate(
			NewCouponClient,
			fx.As(new(commands.CouponValidator)),
		),
	),
)

func NewHTTPClient(cfg config.Config, tokens backend.TokenSource, logger *slog.Logger) *backend.HTTPClient {
	retry := backend.DefaultRetryConfig()
	retry.MaxRetries = cfg.Backend.MaxRetries
	retry.InitialInterval = cfg.Backend.RetryInterval

	options := []backend.ClientOption{
		backend.WithBaseURL(cfg.Backend.BaseURL),
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithRetryConfig(retry),
		backend.WithTokenSource(tokens),
	}
	if cfg.Backend.RateLimitPerSec > 0 {
		limiter := rate.NewLimiter(rate.Limit(cfg.Backend.RateLimitPerSec), cfg.Backend.RateLimitBurst)
		options = append(options, backend.WithMiddleware(backend.RateLimitMiddleware(limiter)))
	}
	if cfg.Backend.LogRequestBodies {
		options = append(options, backend.WithMiddleware(backend.LoggingMiddleware(logger)))
	}

	return backend.NewHTTPClient(logger, options...)
}

func NewProductClient(client *backend.HTTPClient, cfg config.Config, logger *slog.Logger) *backend.ProductClient {
	return backend.NewProductClient(client, cfg.Backend.ProductPath, logger)
}

func NewCouponClient(client *backend.HTTPClient, cfg config.Config, logger *slog.Logger) *backend.CouponClient {
	return backend.NewCouponClient(client, cfg.Backend.CouponPath, logger)
}
