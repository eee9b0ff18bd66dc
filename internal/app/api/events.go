package api

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderConfirmedEvent goes out on the notifications exchange after a
// successful payment. Orders are not persisted; the event stream is the
// only downstream record.
type OrderConfirmedEvent struct {
	OrderID           string          `json:"order_id"`
	Email             string          `json:"email"`
	Restaurant        string          `json:"restaurant"`
	DeliveryAddress   string          `json:"delivery_address"`
	Total             decimal.Decimal `json:"total"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	ConfirmedAt       time.Time       `json:"confirmed_at"`
}

// EventPublisher decouples the handlers from the broker client.
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error
}

// NoopPublisher drops events; used in tests and broker-less runs.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderConfirmed(context.Context, OrderConfirmedEvent) error { return nil }
