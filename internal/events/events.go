package events

import (
	"context"
	"time"
)

// Routing keys published by the API.
const (
	RKOrderCreated = "order.created"
)

// Publisher sends domain events to whoever listens.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, v any) error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }

// OrderCreated is the payload of RKOrderCreated. Money is rendered as a
// fixed two-decimal string.
type OrderCreated struct {
	OrderID     int64          `json:"order_id"`
	CartID      int64          `json:"cart_id"`
	TotalAmount string         `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	Items       []OrderItemEvt `json:"items"`
}

type OrderItemEvt struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}
