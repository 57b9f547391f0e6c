package handlers

import (
	"net/http"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
)

//
// --- Order Handlers ---
//

type CreateOrderInput struct {
	CartID     int64  `json:"cart_id" binding:"required,gt=0"`
	ClientInfo string `json:"client_info" binding:"max=255"`
}

// UpdateOrderInput never touches the captured total.
type UpdateOrderInput struct {
	Status     *string `json:"status" binding:"omitempty,min=1,max=32"`
	ClientInfo *string `json:"client_info" binding:"omitempty,max=255"`
}

// CreateOrder prices the cart and records the order with that total.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	order, items, err := h.Shop.PlaceOrder(c.Request.Context(), input.CartID, input.ClientInfo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   orderResponse(order, items),
	})
}

func (h *Handlers) GetOrders(c *gin.Context) {
	orders, err := store.NewTable[models.Order](h.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, OrderSummary{
			ID:          o.ID,
			ClientInfo:  o.ClientInfo,
			TotalAmount: money(o.TotalAmount),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) GetOrderDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, items, err := h.Shop.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(order, items))
}

func (h *Handlers) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateOrderInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	patch := store.Patch{}
	if input.Status != nil {
		patch["status"] = *input.Status
	}
	if input.ClientInfo != nil {
		patch["client_info"] = *input.ClientInfo
	}
	if _, err := store.NewTable[models.Order](h.DB).Update(c.Request.Context(), id, patch); err != nil {
		respondError(c, err)
		return
	}

	order, items, err := h.Shop.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   orderResponse(order, items),
	})
}
