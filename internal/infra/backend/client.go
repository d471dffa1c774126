package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-cart/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// RequestOption represents a function that can modify a single request
type RequestOption func(*requestOptions)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// TokenSource supplies the bearer token for the current session; "" means anonymous.
type TokenSource interface {
	Bearer() (string, error)
}

// APIError is a non-2xx answer from the backend. Message is the backend's own
// text, e.g. "Incorrect coupon code. Attempt 1/10".
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

// UserMessage is the text shown to the shopper.
func (e *APIError) UserMessage() string {
	return e.Message
}

type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	RetryableStatusCodes []int
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           2,
		InitialInterval:      200 * time.Millisecond,
		MaxInterval:          2 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

type HTTPClient struct {
	httpClient  *http.Client
	baseURL     string
	retryConfig *RetryConfig
	middlewares []Middleware
	tokens      TokenSource
	logger      *slog.Logger
}

func NewHTTPClient(logger *slog.Logger, options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		retryConfig: DefaultRetryConfig(),
		logger:      logger,
	}

	for _, option := range options {
		option(client)
	}

	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		// Apply middlewares in reverse order so the first one is outermost
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Transport = rt
	}
}

func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

func WithTokenSource(tokens TokenSource) ClientOption {
	return func(c *HTTPClient) {
		c.tokens = tokens
	}
}

type requestOptions struct {
	query   url.Values
	noRetry bool
}

func WithQueryParam(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, value)
	}
}

// WithoutRetry is for calls the backend counts, such as coupon attempts.
func WithoutRetry() RequestOption {
	return func(o *requestOptions) {
		o.noRetry = true
	}
}

// GetJSON performs a GET and decodes a 2xx JSON body into target.
func (c *HTTPClient) GetJSON(ctx context.Context, path string, target any, options ...RequestOption) error {
	opts := requestOptions{query: url.Values{}}
	for _, option := range options {
		option(&opts)
	}

	fullURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(opts.query) > 0 {
		fullURL += "?" + opts.query.Encode()
	}

	token := ""
	if c.tokens != nil {
		var err error
		if token, err = c.tokens.Bearer(); err != nil {
			return err
		}
	}
	requestID := uuid.NewString()
	start := time.Now()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(errs.Wrap(err, "failed to create request"))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			apiErr := &APIError{
				StatusCode: resp.StatusCode,
				Method:     http.MethodGet,
				URL:        fullURL,
				Message:    extractMessage(resp.StatusCode, data),
			}
			if c.isRetryable(resp.StatusCode) {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}
		body = data
		return nil
	}

	var err error
	if c.retryConfig != nil && c.retryConfig.MaxRetries > 0 && !opts.noRetry {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retryConfig.InitialInterval
		expBackoff.MaxInterval = c.retryConfig.MaxInterval
		err = backoff.Retry(operation, backoff.WithContext(
			backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx))
	} else {
		err = operation()
		var permanent *backoff.PermanentError
		if errs.As(err, &permanent) {
			err = permanent.Unwrap()
		}
	}

	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("request_id", requestID),
			slog.String("url", fullURL),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return err
	}

	c.logger.Debug("Backend request succeeded",
		slog.String("request_id", requestID),
		slog.String("url", fullURL),
		slog.Duration("duration", duration))

	if err := json.NewDecoder(bytes.NewReader(body)).Decode(target); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func (c *HTTPClient) isRetryable(status int) bool {
	if c.retryConfig == nil {
		return false
	}
	for _, code := range c.retryConfig.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}

func extractMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		switch e := payload.Error.(type) {
		case string:
			if e != "" {
				return e
			}
		case map[string]any:
			if m, ok := e["message"].(string); ok && m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}

// RateLimitMiddleware throttles outgoing requests, e.g. a shopper hammering "+".
func RateLimitMiddleware(limiter *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}
			return next.RoundTrip(req)
		})
	}
}

// LoggingMiddleware logs every attempt, retries included.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			attrs := []any{
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("request_id", req.Header.Get("X-Request-ID")),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Debug("HTTP attempt failed", append(attrs, slog.String("error", err.Error()))...)
				return resp, err
			}
			logger.Debug("HTTP attempt completed", append(attrs, slog.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
