//go:build unit

package backend_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-cart/internal/domain/coupon"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/backend"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Bearer() (string, error) { return s.token, s.err }

type BackendClientTestSuite struct {
	suite.Suite
	engine    *gin.Engine
	server    *httptest.Server
	logger    *slog.Logger
	calls     atomic.Int32
	lastAuth  atomic.Value
	lastReqID atomic.Value
}

func (s *BackendClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.engine = gin.New()
	s.calls.Store(0)
	s.engine.Use(func(c *gin.Context) {
		s.calls.Add(1)
		s.lastAuth.Store(c.GetHeader("Authorization"))
		s.lastReqID.Store(c.GetHeader("X-Request-ID"))
		c.Next()
	})
	s.server = httptest.NewServer(s.engine)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *BackendClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestBackendClientSuite(t *testing.T) {
	suite.Run(t, new(BackendClientTestSuite))
}

func (s *BackendClientTestSuite) newClient(opts ...backend.ClientOption) *backend.HTTPClient {
	base := []backend.ClientOption{
		backend.WithBaseURL(s.server.URL + "/api/"),
		backend.WithRetryConfig(&backend.RetryConfig{
			MaxRetries:           2,
			InitialInterval:      time.Millisecond,
			MaxInterval:          5 * time.Millisecond,
			RetryableStatusCodes: []int{503},
		}),
	}
	return backend.NewHTTPClient(s.logger, append(base, opts...)...)
}

// ================================================================================
// Product lookup
// ================================================================================

func (s *BackendClientTestSuite) TestLookup() {
	b := builder.NewProductBuilder().WithID("p-1").WithPrice("12.50").WithStock(3)

	s.Run("success: flat payload with bearer token", func() {
		s.engine.GET("/api/products/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, b.BuildProductPayload())
		})
		products := backend.NewProductClient(s.newClient(backend.WithTokenSource(staticTokens{token: "tok"})), "/products", s.logger)

		actual, err := products.Lookup(context.Background(), "p-1")

		s.Require().NoError(err)
		s.Equal("p-1", actual.ID)
		s.Equal("12.5", actual.Price.String())
		s.Equal(3, actual.Stock)
		s.Equal(b.ImageURL, actual.ImageURL)
		s.Equal("Bearer tok", s.lastAuth.Load())
		s.NotEmpty(s.lastReqID.Load())
	})
}

func (s *BackendClientTestSuite) TestLookup_WrappedPayload() {
	s.engine.GET("/api/products/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"product": gin.H{"_id": c.Param("id"), "name": "Lamp", "price": "40", "stock": 1, "images": []gin.H{}}})
	})
	products := backend.NewProductClient(s.newClient(), "/products/", s.logger)

	actual, err := products.Lookup(context.Background(), "mongo-1")

	s.Require().NoError(err)
	s.Equal("mongo-1", actual.ID)
	s.Equal("Lamp", actual.Name)
	s.Empty(actual.ImageURL)
	s.Equal("", s.lastAuth.Load(), "anonymous requests carry no Authorization header")
}

func (s *BackendClientTestSuite) TestLookup_KeepsRequestedID() {
	s.engine.GET("/api/products/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": "canonical-9", "name": "Mug", "price": "12.50", "stock": 3})
	})
	products := backend.NewProductClient(s.newClient(), "/products", s.logger)

	actual, err := products.Lookup(context.Background(), "alias-1")

	s.Require().NoError(err)
	s.Equal("alias-1", actual.ID)
	s.Equal("Mug", actual.Name)
}

func (s *BackendClientTestSuite) TestLookup_NotFound() {
	s.engine.GET("/api/products/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	})
	products := backend.NewProductClient(s.newClient(), "/products", s.logger)

	_, err := products.Lookup(context.Background(), "gone")

	var apiErr *backend.APIError
	s.Require().True(errs.As(err, &apiErr), "got %v", err)
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("Product not found", apiErr.Message)
	s.Equal(int32(1), s.calls.Load(), "4xx must not be retried")
}

func (s *BackendClientTestSuite) TestLookup_RetriesTransientStatus() {
	var attempts atomic.Int32
	s.engine.GET("/api/products/:id", func(c *gin.Context) {
		if attempts.Add(1) < 3 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "busy"})
			return
		}
		c.JSON(http.StatusOK, builder.NewProductBuilder().WithID("p-2").BuildProductPayload())
	})
	products := backend.NewProductClient(s.newClient(), "/products", s.logger)

	actual, err := products.Lookup(context.Background(), "p-2")

	s.Require().NoError(err)
	s.Equal("p-2", actual.ID)
	s.Equal(int32(3), attempts.Load())
}

func (s *BackendClientTestSuite) TestLookup_TransportFailure() {
	products := backend.NewProductClient(
		backend.NewHTTPClient(s.logger, backend.WithBaseURL("http://127.0.0.1:1"), backend.WithRetryConfig(nil)),
		"/products", s.logger)

	_, err := products.Lookup(context.Background(), "p-1")

	s.True(infra.IsKind(err, infra.KindBackendFailure), "got %v", err)
}

func (s *BackendClientTestSuite) TestLookup_ExpiredSession() {
	s.engine.GET("/api/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	products := backend.NewProductClient(
		s.newClient(backend.WithTokenSource(staticTokens{err: errs.ErrSessionExpired})), "/products", s.logger)

	_, err := products.Lookup(context.Background(), "p-1")

	s.ErrorIs(err, errs.ErrSessionExpired)
	s.Equal(int32(0), s.calls.Load())
}

// ================================================================================
// Coupon validation
// ================================================================================

func (s *BackendClientTestSuite) TestValidate() {
	cb := builder.NewCouponBuilder().Percentage("20").Capacity(4)
	var gotProduct, gotCode string
	s.engine.GET("/api/coupons/validate", func(c *gin.Context) {
		gotProduct, gotCode = c.Query("productId"), c.Query("code")
		c.JSON(http.StatusOK, cb.BuildPayload())
	})
	coupons := backend.NewCouponClient(s.newClient(), "/coupons/validate", s.logger)

	actual, err := coupons.Validate(context.Background(), "p-1", coupon.Code("SAVE-2026-MUGS"))

	s.Require().NoError(err)
	s.Equal("p-1", gotProduct)
	s.Equal("SAVE-2026-MUGS", gotCode)
	s.Equal(coupon.DiscountPercentage, actual.DiscountType())
	s.Equal("20", actual.DiscountValue().String())
	s.Equal(4, actual.NumOfCoupons())
	s.True(cb.ExpirationDate.Equal(actual.ExpirationDate()))
}

func (s *BackendClientTestSuite) TestValidate_RejectionIsNotRetried() {
	s.engine.GET("/api/coupons/validate", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Incorrect coupon code. Attempt 1/10"})
	})
	coupons := backend.NewCouponClient(s.newClient(), "/coupons/validate", s.logger)

	_, err := coupons.Validate(context.Background(), "p-1", coupon.Code("AAAA-BBBB-CCCC"))

	var apiErr *backend.APIError
	s.Require().True(errs.As(err, &apiErr), "got %v", err)
	s.Equal("Incorrect coupon code. Attempt 1/10", apiErr.Message)
	s.Equal(int32(1), s.calls.Load())
}

func (s *BackendClientTestSuite) TestValidate_MalformedSuccess() {
	var body gin.H
	s.engine.GET("/api/coupons/validate", func(c *gin.Context) { c.JSON(http.StatusOK, body) })
	coupons := backend.NewCouponClient(s.newClient(), "/coupons/validate", s.logger)

	testCases := []struct {
		name string
		body gin.H
	}{
		{name: "missing coupon", body: gin.H{}},
		{name: "unknown discount type", body: gin.H{"coupon": gin.H{"code": "x", "discountType": "bogo", "discountValue": 1, "numOfCoupons": 1}}},
		{name: "negative capacity", body: gin.H{"coupon": gin.H{"code": "x", "discountType": "amount", "discountValue": 1, "numOfCoupons": -1}}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			body = tc.body

			_, err := coupons.Validate(context.Background(), "p-1", coupon.Code("AAAA-BBBB-CCCC"))
			s.True(infra.IsKind(err, infra.KindBackendFailure), "got %v", err)
		})
	}
}

// ================================================================================
// Middlewares
// ================================================================================

func TestRateLimitMiddleware(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.NewHTTPClient(logger,
		backend.WithBaseURL(srv.URL),
		backend.WithMiddleware(backend.LoggingMiddleware(logger)),
		backend.WithMiddleware(backend.RateLimitMiddleware(rate.NewLimiter(rate.Limit(1), 1))),
	)

	var out map[string]any
	require.NoError(t, client.GetJSON(context.Background(), "/x", &out))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := client.GetJSON(ctx, "/x", &out, backend.WithoutRetry())
	assert.Error(t, err, "second call inside the same second must wait past the deadline")
	assert.Equal(t, int32(1), hits.Load())
}
