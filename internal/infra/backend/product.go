package backend

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type productPayload struct {
	ID      string          `json:"id"`
	MongoID string          `json:"_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
	Images  []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// Some backend versions wrap the product as {"product": {...}}.
type productEnvelope struct {
	Product *productPayload `json:"product"`
	productPayload
}

type ProductClient struct {
	client *HTTPClient
	path   string
	logger *slog.Logger
}

func NewProductClient(client *HTTPClient, path string, logger *slog.Logger) *ProductClient {
	return &ProductClient{client: client, path: strings.TrimSuffix(path, "/"), logger: logger}
}

// Lookup fetches the current name, price, stock and first image of a product.
// A backend rejection is returned as *APIError; transport trouble is a
// Error of kind BACKEND_FAILURE.
func (p *ProductClient) Lookup(ctx context.Context, productID string) (cart.Product, error) {
	var env productEnvelope
	err := p.client.GetJSON(ctx, p.path+"/"+url.PathEscape(productID), &env)
	if err != nil {
		var apiErr *APIError
		if errs.As(err, &apiErr) {
			return cart.Product{}, err
		}
		if errs.Is(err, errs.ErrSessionExpired) {
			return cart.Product{}, err
		}
		return cart.Product{}, infra.WrapErr(p.logger, infra.KindBackendFailure, "product lookup", err)
	}

	payload := env.productPayload
	if env.Product != nil {
		payload = *env.Product
	}
	if id := payload.backendID(); id != "" && id != productID {
		p.logger.Warn("Backend answered with a different product id",
			slog.String("requested", productID),
			slog.String("returned", id))
	}
	return payload.toDomain(productID), nil
}

func (pp productPayload) backendID() string {
	if pp.ID != "" {
		return pp.ID
	}
	return pp.MongoID
}

// toDomain keys the product by the id the cart asked for, so later removes
// and quantity steps find the line item under the same id.
func (pp productPayload) toDomain(requestedID string) cart.Product {
	product := cart.Product{
		ID:    requestedID,
		Name:  pp.Name,
		Price: pp.Price,
		Stock: pp.Stock,
	}
	if len(pp.Images) > 0 {
		product.ImageURL = pp.Images[0].URL
	}
	return product
}
