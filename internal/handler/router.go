package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-cart/internal/handler/api"
	"storefront-cart/internal/handler/middleware"
	"storefront-cart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Cart    *api.CartHandler
	Coupon  *api.CouponHandler
	Alert   *api.AlertHandler
	Session *api.SessionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, sessions middleware.ClaimsSource) {
	setupMiddleware(engine, cfg, logger, sessions)
	setupRoutes(engine, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, sessions middleware.ClaimsSource) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.SessionContext(sessions))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodGet, Path: "/events", Handler: h.Cart.Events},
				{Method: http.MethodPut, Path: "/items/:productId", Handler: h.Cart.SetQuantity},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: h.Cart.Remove},
				{Method: http.MethodPost, Path: "/items/:productId/increase", Handler: h.Cart.Increase},
				{Method: http.MethodPost, Path: "/items/:productId/decrease", Handler: h.Cart.Decrease},
				{Method: http.MethodPost, Path: "/items/:productId/coupon", Handler: h.Coupon.Apply},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/coupon", Handler: h.Coupon.State},
			{Method: http.MethodGet, Path: "/alert", Handler: h.Alert.Get},
			{Method: http.MethodGet, Path: "/session", Handler: h.Session.Get},
			{Method: http.MethodPut, Path: "/session", Handler: h.Session.Set},
			{Method: http.MethodDelete, Path: "/session", Handler: h.Session.Clear},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
