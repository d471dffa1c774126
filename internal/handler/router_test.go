//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"storefront-cart/internal/handler"
	"storefront-cart/internal/handler/api"
	"storefront-cart/internal/pkg/clock"
	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/session"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/tests/common/httptest"
	commandsmock "storefront-cart/tests/mock/commands"
	queriesmock "storefront-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine  *gin.Engine
	queries *queriesmock.MockCartQueries
}

func newRouter(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	cartCommands := commandsmock.NewMockCartCommands(ctrl)
	cartQueries := queriesmock.NewMockCartQueries(ctrl)
	holder := session.NewHolder(clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers := handler.Handlers{
		Cart:    api.NewCartHandler(cartCommands, cartQueries, logger),
		Coupon:  api.NewCouponHandler(commandsmock.NewMockCouponCommands(ctrl), cartCommands, queriesmock.NewMockCouponQueries(ctrl)),
		Alert:   api.NewAlertHandler(queriesmock.NewMockAlertQueries(ctrl)),
		Session: api.NewSessionHandler(holder),
	}

	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), logger, handlers, holder)
	return routerFixture{engine: engine, queries: cartQueries}
}

func TestRouter_Health(t *testing.T) {
	r := newRouter(t)

	rec := httptest.PerformRequest(t, r.engine, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	r := newRouter(t)
	r.queries.EXPECT().GetCart(gomock.Any()).Return(queries.BuildCartView(nil, 0), nil).Times(1)

	req := nethttptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("X-Request-ID", "shell-req-7")
	rec := nethttptest.NewRecorder()
	r.engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "shell-req-7"})
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newRouter(t)

	rec := httptest.PerformRequest(t, r.engine, http.MethodGet, "/api/reviews", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SessionRoundTrip(t *testing.T) {
	r := newRouter(t)

	rec := httptest.PerformRequest(t, r.engine, http.MethodGet, "/api/session", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	rec = httptest.PerformRequest(t, r.engine, http.MethodDelete, "/api/session", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
