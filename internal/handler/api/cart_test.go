//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/handler/api"
	resdto "storefront-cart/internal/handler/dto/response"
	"storefront-cart/internal/infra/backend"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/tests/common/builder"
	"storefront-cart/tests/common/httptest"
	"storefront-cart/tests/common/testutil"
	commandsmock "storefront-cart/tests/mock/commands"
	queriesmock "storefront-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.router.GET("/api/cart", s.handler.Get)
	s.router.GET("/api/cart/events", s.handler.Events)
	s.router.PUT("/api/cart/items/:productId", s.handler.SetQuantity)
	s.router.DELETE("/api/cart/items/:productId", s.handler.Remove)
	s.router.POST("/api/cart/items/:productId/increase", s.handler.Increase)
	s.router.POST("/api/cart/items/:productId/decrease", s.handler.Decrease)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func cartView(items ...cart.LineItem) *queries.CartView {
	return queries.BuildCartView(cart.Collection(items), 3)
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CartHandlerTestSuite) TestGet() {
	item := builder.NewProductBuilder().WithID("p1").WithPrice("12.50").WithQuantity(2).
		WithDiscount("SAVE-2026-MUGS", "5", 1).BuildLineItem()

	s.Run("success: renders items, totals and version", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(cartView(item), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("p1", body.Items[0].ProductID)
		s.Equal("12.50", body.Items[0].UnitPrice)
		s.Equal("25.00", body.Items[0].Subtotal)
		s.Require().NotNil(body.Items[0].DiscountValue)
		s.Equal("5.00", *body.Items[0].DiscountValue)
		s.Equal("SAVE-2026-MUGS", body.Items[0].CouponCode)
		s.Equal("25.00", body.Subtotal)
		s.Equal("5.00", body.Discount)
		s.Equal("20.00", body.Total)
		s.Equal(2, body.Units)
		s.Equal(int64(3), body.Version)
	})

	s.Run("success: empty cart renders an empty list", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
		s.Contains(rec.Body.String(), `"total":"0.00"`)
	})
}

// ================================================================================
// TestSetQuantity
// ================================================================================

func (s *CartHandlerTestSuite) TestSetQuantity() {
	url := "/api/cart/items/p1"
	item := builder.NewProductBuilder().WithID("p1").WithQuantity(2).BuildLineItem()
	reqBody := map[string]any{"quantity": 2}

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "quantity zero", mutate: testutil.Field("quantity", 0)},
		{name: "quantity negative", mutate: testutil.Field("quantity", -1)},
		{name: "quantity missing", mutate: testutil.Field("quantity", nil)},
		{name: "quantity not a number", mutate: testutil.Field("quantity", "two")},
	}

	s.Run("success: adds the item and returns the cart", func() {
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).
			Return(cart.Collection{item}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(cartView(item), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(2, body.Items[0].Quantity)
	})

	for _, tc := range validation {
		s.Run("error: 400 Bad Request on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 404 when the product does not exist", func() {
		lookupErr := errs.Mark(&backend.APIError{StatusCode: http.StatusNotFound, Message: "Product not found"}, errs.ErrProductLookup)
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).Return(nil, lookupErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 502 when the backend is down", func() {
		lookupErr := errs.Mark(errs.New("connection refused"), errs.ErrProductLookup)
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).Return(nil, lookupErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Could not load the product")
	})

	s.Run("error: 409 when the product is out of stock", func() {
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).
			Return(nil, errs.Mark(errs.New("stock is 0"), errs.ErrOutOfStock)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "out of stock")
	})

	s.Run("error: 401 when the session expired", func() {
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).
			Return(nil, errs.Mark(errs.New("token expired"), errs.ErrSessionExpired)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "sign in again")
	})
}

// ================================================================================
// TestIncreaseDecrease
// ================================================================================

func (s *CartHandlerTestSuite) TestIncreaseDecrease() {
	s.Run("increase: steps the quantity through the ledger", func() {
		item := builder.NewProductBuilder().WithID("p1").WithStock(5).WithQuantity(2).BuildLineItem()
		view := cartView(item)

		gomock.InOrder(
			s.mockQueries.EXPECT().GetItem(gomock.Any(), "p1").Return(&view.Items[0], nil),
			s.mockCommands.EXPECT().IncreaseQuantity("p1", 2, 5).Return(3, true),
			s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 3).Return(cart.Collection{item}, nil),
			s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items/p1/increase", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("increase: at stock the ledger is not called", func() {
		item := builder.NewProductBuilder().WithID("p1").WithStock(2).WithQuantity(2).BuildLineItem()
		view := cartView(item)

		s.mockQueries.EXPECT().GetItem(gomock.Any(), "p1").Return(&view.Items[0], nil).Times(1)
		s.mockCommands.EXPECT().IncreaseQuantity("p1", 2, 2).Return(2, false).Times(1)
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items/p1/increase", nil, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Items[0].CanIncrease)
	})

	s.Run("decrease: at one the ledger is not called", func() {
		item := builder.NewProductBuilder().WithID("p1").WithQuantity(1).BuildLineItem()
		view := cartView(item)

		s.mockQueries.EXPECT().GetItem(gomock.Any(), "p1").Return(&view.Items[0], nil).Times(1)
		s.mockCommands.EXPECT().DecreaseQuantity("p1", 1).Return(1, false).Times(1)
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items/p1/decrease", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("decrease: steps the quantity through the ledger", func() {
		item := builder.NewProductBuilder().WithID("p1").WithQuantity(3).BuildLineItem()
		view := cartView(item)

		s.mockQueries.EXPECT().GetItem(gomock.Any(), "p1").Return(&view.Items[0], nil).Times(1)
		s.mockCommands.EXPECT().DecreaseQuantity("p1", 3).Return(2, true).Times(1)
		s.mockCommands.EXPECT().AddOrUpdateItem(gomock.Any(), "p1", 2).Return(cart.Collection{item}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items/p1/decrease", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when the item is not in the cart", func() {
		s.mockQueries.EXPECT().GetItem(gomock.Any(), "ghost").Return(nil, queries.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items/ghost/increase", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not in cart")
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *CartHandlerTestSuite) TestRemove() {
	s.Run("success: returns the remaining cart", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), "p1").Return(cart.Collection{}, nil).Times(1)
		s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(cartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/p1", nil, "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), "p1").
			Return(nil, errs.Mark(errs.New("disk full"), errs.ErrStorageOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/p1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "could not be saved")
	})
}

// ================================================================================
// TestEvents
// ================================================================================

func (s *CartHandlerTestSuite) TestEvents() {
	item := builder.NewProductBuilder().WithID("p1").BuildLineItem()

	var publish func(commands.CartEvent)
	subscribed := make(chan struct{})
	unsubscribed := make(chan struct{})

	s.mockCommands.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(commands.CartEvent)) func() {
		publish = fn
		close(subscribed)
		return func() { close(unsubscribed) }
	}).Times(1)
	s.mockQueries.EXPECT().GetCart(gomock.Any()).Return(cartView(), nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan *httptest.StreamRecorder)
	go func() {
		done <- httptest.PerformStream(ctx, s.router, "/api/cart/events")
	}()

	<-subscribed
	publish(commands.CartEvent{Kind: commands.CartEventAdded, ProductID: "p1", Items: cart.Collection{item}, Version: 1})
	cancel()

	var rec *httptest.StreamRecorder
	select {
	case rec = <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("event stream did not stop after cancel")
	}

	select {
	case <-unsubscribed:
	default:
		s.Fail("subscription was not released")
	}

	body := rec.Body.String()
	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec.ResponseRecorder, map[string]string{"Cache-Control": "no-cache"})
	snapshotAt := strings.Index(body, "event:snapshot")
	addedAt := strings.Index(body, "event:added")
	s.GreaterOrEqual(snapshotAt, 0, body)
	s.Greater(addedAt, snapshotAt, body)
	s.Contains(body, `"productId":"p1"`)
	s.Contains(body, `"version":1`)
}
