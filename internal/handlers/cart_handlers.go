package handlers

import (
	"net/http"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0,max=1000000"`
}

func (h *Handlers) GetCarts(c *gin.Context) {
	carts, err := store.NewTable[models.Cart](h.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]CartSummary, 0, len(carts))
	for _, cart := range carts {
		resp = append(resp, CartSummary{ID: cart.ID, CreationDate: cart.CreationDate})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) CreateCart(c *gin.Context) {
	cart, err := h.Shop.CreateCart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Cart created successfully",
		"cart":    cart,
	})
}

// GetCart returns the cart, its items and the total it would cost right now.
func (h *Handlers) GetCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Shop.GetCart(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(detail))
}

func (h *Handlers) DeleteCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Shop.DeleteCart(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted successfully"})
}

func (h *Handlers) AddToCart(c *gin.Context) {
	cartID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input AddToCartInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	item, err := h.Shop.AddItem(c.Request.Context(), cartID, input.ProductID, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
		"item":    item,
	})
}

func (h *Handlers) RemoveFromCart(c *gin.Context) {
	cartID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}
	if err := h.Shop.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}
