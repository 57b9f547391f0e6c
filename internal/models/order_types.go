package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default status of a freshly placed order. Status is free text.
const OrderStatusPending = "pending"

// Order is the model for the 'orders' table.
// TotalAmount is captured once when the order is placed and never recomputed.
type Order struct {
	ID           int64           `json:"id" db:"id"`
	CartID       int64           `json:"cart_id" db:"cart_id"`
	CreationDate time.Time       `json:"creation_date" db:"creation_date"`
	TotalAmount  decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status       string          `json:"status" db:"status"`
	ClientInfo   string          `json:"client_info" db:"client_info"`
}

func (Order) TableName() string { return "orders" }
func (Order) Label() string     { return "Order" }

func (Order) Columns() []string {
	return []string{"cart_id", "creation_date", "total_amount", "status", "client_info"}
}

func (o *Order) Values() []any {
	return []any{o.CartID, o.CreationDate, o.TotalAmount, o.Status, o.ClientInfo}
}

func (o *Order) ScanTargets() []any {
	return []any{&o.ID, &o.CartID, &o.CreationDate, &o.TotalAmount, &o.Status, &o.ClientInfo}
}

func (o *Order) SetID(id int64) { o.ID = id }

// OrderItem is the model for the 'order_items' table.
type OrderItem struct {
	ID        int64           `json:"id" db:"id"`
	OrderID   int64           `json:"order_id" db:"order_id"`
	ProductID int64           `json:"product_id" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"` // Unit price at the time of purchase
}

func (OrderItem) TableName() string { return "order_items" }
func (OrderItem) Label() string     { return "Order item" }

func (OrderItem) Columns() []string {
	return []string{"order_id", "product_id", "quantity", "price"}
}

func (oi *OrderItem) Values() []any {
	return []any{oi.OrderID, oi.ProductID, oi.Quantity, oi.Price}
}

func (oi *OrderItem) ScanTargets() []any {
	return []any{&oi.ID, &oi.OrderID, &oi.ProductID, &oi.Quantity, &oi.Price}
}

func (oi *OrderItem) SetID(id int64) { oi.ID = id }
