package response

import (
	"storefront-cart/internal/usecase/commands"
	"storefront-cart/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
	ProductID          string  `json:"productId"`
	Name               string  `json:"name"`
	UnitPrice          string  `json:"unitPrice"`
	ImageURL           string  `json:"imageUrl"`
	Stock              int     `json:"stock"`
	Quantity           int     `json:"quantity"`
	Subtotal           string  `json:"subtotal"`
	CouponCode         string  `json:"couponCode,omitempty"`
	DiscountValue      *string `json:"discountValue,omitempty" copier:"-"`
	ProductsDiscounted int     `json:"productsDiscounted,omitempty"`
	CanIncrease        bool    `json:"canIncrease"`
	CanDecrease        bool    `json:"canDecrease"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
	Discount string             `json:"discount"`
	Total    string             `json:"total"`
	Units    int                `json:"units"`
	Version  int64              `json:"version"`
}

func FromCartItemView(v *queries.CartItemView) (*CartItemResponse, error) {
	var res CartItemResponse
	if err := copier.CopyWithOption(&res, v, copyOptions); err != nil {
		return nil, err
	}
	res.DiscountValue = money(v.DiscountValue)
	return &res, nil
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	res := &CartResponse{
		Items:    make([]CartItemResponse, 0, len(v.Items)),
		Subtotal: v.Subtotal.StringFixed(2),
		Discount: v.Discount.StringFixed(2),
		Total:    v.Total.StringFixed(2),
		Units:    v.Units,
		Version:  v.Version,
	}
	for i := range v.Items {
		item, err := FromCartItemView(&v.Items[i])
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, *item)
	}
	return res, nil
}

// CartEventResponse is the data of one server-sent cart event.
type CartEventResponse struct {
	Kind      string        `json:"kind"`
	ProductID string        `json:"productId,omitempty"`
	Cart      *CartResponse `json:"cart"`
}

func FromCartEvent(e commands.CartEvent) (*CartEventResponse, error) {
	cart, err := FromCartView(queries.BuildCartView(e.Items, e.Version))
	if err != nil {
		return nil, err
	}
	return &CartEventResponse{Kind: string(e.Kind), ProductID: e.ProductID, Cart: cart}, nil
}
