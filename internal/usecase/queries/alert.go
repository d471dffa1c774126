package queries

import (
	"context"
	"time"

	"storefront-cart/internal/usecase/alert"
)

type AlertView struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AlertSource interface {
	Current() (alert.Alert, bool)
}

type AlertQueries interface {
	// GetCurrent returns nil when no banner is showing.
	GetCurrent(ctx context.Context) (*AlertView, error)
}

type alertQueriesImpl struct {
	source AlertSource
}

func NewAlertQueries(source AlertSource) AlertQueries {
	return &alertQueriesImpl{source: source}
}

func (q *alertQueriesImpl) GetCurrent(_ context.Context) (*AlertView, error) {
	a, ok := q.source.Current()
	if !ok {
		return nil, nil
	}
	return &AlertView{
		Message:   a.Message,
		Severity:  string(a.Severity),
		ExpiresAt: a.ExpiresAt,
	}, nil
}
