package response

import (
	"time"

	"storefront-cart/internal/usecase/queries"
)

type AlertResponse struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AlertEnvelope carries a null alert when nothing is showing.
type AlertEnvelope struct {
	Alert *AlertResponse `json:"alert"`
}

func FromAlertView(v *queries.AlertView) *AlertEnvelope {
	if v == nil {
		return &AlertEnvelope{}
	}
	return &AlertEnvelope{Alert: &AlertResponse{Message: v.Message, Severity: v.Severity, ExpiresAt: v.ExpiresAt}}
}
