//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-cart/internal/handler/api"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/tests/common/httptest"
	queriesmock "storefront-cart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAlertHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expiresAt := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)

	tests := []struct {
		name       string
		view       *queries.AlertView
		err        error
		expectCode int
		expectBody string
	}{
		{
			name:       "banner showing",
			view:       &queries.AlertView{Message: "Handmade Mug added to cart", Severity: "success", ExpiresAt: expiresAt},
			expectCode: http.StatusOK,
			expectBody: `{"alert":{"message":"Handmade Mug added to cart","severity":"success","expiresAt":"2026-03-01T12:00:05Z"}}`,
		},
		{
			name:       "nothing showing",
			expectCode: http.StatusOK,
			expectBody: `{"alert":null}`,
		},
		{
			name:       "query failure",
			err:        errs.New("boom"),
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":{"message":"Failed to load alert"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockAlertQueries(ctrl)
			q.EXPECT().GetCurrent(gomock.Any()).Return(tc.view, tc.err).Times(1)

			router := gin.New()
			router.GET("/api/alert", api.NewAlertHandler(q).Get)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/alert", nil, "")
			assert.Equal(t, tc.expectCode, rec.Code)
			assert.JSONEq(t, tc.expectBody, rec.Body.String())
		})
	}
}
