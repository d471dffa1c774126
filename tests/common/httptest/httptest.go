//go:build unit || e2e

package httptest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes HTTP request with optional authorization
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// StreamRecorder lets gin's Context.Stream run against a recorder, which has no CloseNotify.
type StreamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func NewStreamRecorder() *StreamRecorder {
	return &StreamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *StreamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// serves a streaming GET; blocks until the handler returns, normally after ctx is cancelled
func PerformStream(ctx context.Context, router *gin.Engine, path string) *StreamRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	w := NewStreamRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
