package request

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
