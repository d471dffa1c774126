package request

type SetSessionRequest struct {
	Token string `json:"token" binding:"required"`
}
