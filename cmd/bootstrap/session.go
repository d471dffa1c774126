package bootstrap

import (
	"storefront-cart/internal/handler/api"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/infra/backend"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionHolder,
			fx.As(fx.Self()),
			fx.As(new(backend.TokenSource)),
			fx.As(new(api.SessionStore)),
			fx.As(new(middleware.ClaimsSource)),
		),
	),
)

// NewSessionHolder starts signed in when SESSION_TOKEN is set, which is handy
// for running against a staging backend without a UI shell.
func NewSessionHolder(cfg config.Config, clk clock.Clock) (*session.Holder, error) {
	holder := session.NewHolder(clk)
	if cfg.Session.Token != "" {
		if err := holder.Set(cfg.Session.Token); err != nil {
			return nil, err
		}
	}
	return holder, nil
}
