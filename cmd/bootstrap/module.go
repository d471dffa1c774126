package bootstrap

import (
	"storefront-cart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	SessionModule,
	components.BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
