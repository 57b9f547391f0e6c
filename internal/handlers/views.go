package handlers

import (
	"time"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/shop"
	"github.com/shopspring/decimal"
)

// --- Response shapes ---
// Money always leaves the API as a string with two decimals.

func money(d decimal.Decimal) string { return d.StringFixed(2) }

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Stock       int    `json:"stock"`
	Length      int    `json:"length"`
	Color       string `json:"color"`
}

func productResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       money(p.Price),
		Description: p.Description,
		Stock:       p.Stock,
		Length:      p.Length,
		Color:       p.Color,
	}
}

// CartSummary is one row of GET /carts.
type CartSummary struct {
	ID           int64     `json:"id"`
	CreationDate time.Time `json:"creationdate"`
}

type CartResponse struct {
	ID           int64             `json:"id"`
	CreationDate time.Time         `json:"creation_date"`
	Items        []models.CartItem `json:"items"`
	Total        *string           `json:"total"` // null when a product in the cart is gone
}

func cartResponse(d *shop.CartDetail) CartResponse {
	resp := CartResponse{
		ID:           d.Cart.ID,
		CreationDate: d.Cart.CreationDate,
		Items:        d.Items,
	}
	if resp.Items == nil {
		resp.Items = []models.CartItem{}
	}
	if d.Total != nil {
		total := money(*d.Total)
		resp.Total = &total
	}
	return resp
}

// OrderSummary is one row of GET /orders.
type OrderSummary struct {
	ID          int64  `json:"id"`
	ClientInfo  string `json:"client_info"`
	TotalAmount string `json:"total_amount"`
}

type OrderItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

type OrderResponse struct {
	ID           int64               `json:"id"`
	CartID       int64               `json:"cart_id"`
	CreationDate time.Time           `json:"creation_date"`
	TotalAmount  string              `json:"total_amount"`
	Status       string              `json:"status"`
	ClientInfo   string              `json:"client_info"`
	Items        []OrderItemResponse `json:"items"`
}

func orderResponse(o *models.Order, items []models.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		CartID:       o.CartID,
		CreationDate: o.CreationDate,
		TotalAmount:  money(o.TotalAmount),
		Status:       o.Status,
		ClientInfo:   o.ClientInfo,
		Items:        make([]OrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			LineTotal: money(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))),
		})
	}
	return resp
}
