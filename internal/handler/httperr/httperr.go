package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError answers with the error envelope and keeps err on the context
// so ErrorHandler can log it. msg is what the UI shell shows; err never leaves
// the process.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// NewResponse builds the envelope, tagged with the request ID when one is set.
func NewResponse(c *gin.Context, status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.RequestID = c.GetString("request_id")
	return resp
}
