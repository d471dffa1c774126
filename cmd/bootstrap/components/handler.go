package components

import (
	"storefront-cart/internal/handler"
	"storefront-cart/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewAlertHandler,
		api.NewSessionHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	cart *api.CartHandler,
	coupon *api.CouponHandler,
	alert *api.AlertHandler,
	sessions *api.SessionHandler,
) handler.Handlers {
	return handler.Handlers{
		Cart:    cart,
		Coupon:  coupon,
		Alert:   alert,
		Session: sessions,
	}
}
