// Package notifier publishes budget limit alerts to interested consumers.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/carson-networks/finance-server/internal/finance"
)

// AlertPublisher delivers a stored alert outside the process.
type AlertPublisher interface {
	Publish(ctx context.Context, alert finance.Alert) error
	Close() error
}

// AlertEvent is the wire form of a published alert.
type AlertEvent struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Message     string    `json:"message"`
	AmountSpent string    `json:"amountSpent"`
	LimitAmount string    `json:"limitAmount"`
	Percentage  string    `json:"percentage"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewAlertEvent(alert finance.Alert) AlertEvent {
	return AlertEvent{
		ID:          alert.ID.String(),
		CategoryID:  alert.CategoryID.String(),
		Message:     alert.Message,
		AmountSpent: alert.AmountSpent.StringFixed(2),
		LimitAmount: alert.LimitAmount.StringFixed(2),
		Percentage:  alert.Percentage.StringFixed(1),
		Date:        alert.Date.Format(time.DateOnly),
		CreatedAt:   alert.CreatedAt,
	}
}

func (e AlertEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// NoopPublisher drops every alert. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, finance.Alert) error { return nil }

func (NoopPublisher) Close() error { return nil }
