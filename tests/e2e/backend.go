//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

const maxCouponAttempts = 10

// FakeBackend stands in for the marketplace REST API.
type FakeBackend struct {
	mu       sync.Mutex
	products map[string]map[string]any
	// coupons maps a code to the product it is valid for and the coupon payload
	coupons  map[string]fakeCoupon
	attempts int
	auth     []string
	server   *httptest.Server
}

type fakeCoupon struct {
	productID string
	payload   map[string]any
}

func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{}
	b.Reset()

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.auth = append(b.auth, c.GetHeader("Authorization"))
		b.mu.Unlock()
		c.Next()
	})
	engine.GET("/api/products/:id", b.product)
	engine.GET("/api/coupons/validate", b.validate)
	b.server = httptest.NewServer(engine)
	return b
}

func (b *FakeBackend) URL() string {
	return b.server.URL + "/api"
}

func (b *FakeBackend) Close() {
	b.server.Close()
}

func (b *FakeBackend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products = map[string]map[string]any{}
	b.coupons = map[string]fakeCoupon{}
	b.attempts = 0
	b.auth = nil
}

func (b *FakeBackend) PutProduct(id string, payload map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products[id] = payload
}

// PutCoupon registers a coupon; payload is the body of a successful validation.
func (b *FakeBackend) PutCoupon(code, productID string, payload map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.coupons[code] = fakeCoupon{productID: productID, payload: payload}
}

// AuthHeaders lists the Authorization header of every request received.
func (b *FakeBackend) AuthHeaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.auth...)
}

func (b *FakeBackend) product(c *gin.Context) {
	b.mu.Lock()
	payload, ok := b.products[c.Param("id")]
	b.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (b *FakeBackend) validate(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cp, ok := b.coupons[c.Query("code")]
	if !ok || cp.productID != c.Query("productId") {
		b.attempts++
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Incorrect coupon code. Attempt %d/%d", b.attempts, maxCouponAttempts),
		})
		return
	}
	c.JSON(http.StatusOK, cp.payload)
}
