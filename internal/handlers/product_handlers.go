package handlers

import (
	"net/http"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// --- Inputs ---

// Price accepts either a JSON number or a string such as "19.99".
type CreateProductInput struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Description string           `json:"description"`
	Stock       int              `json:"stock" binding:"gte=0"`
	Length      int              `json:"length" binding:"gte=0"`
	Color       string           `json:"color" binding:"max=64"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock" binding:"omitempty,gte=0"`
	Length      *int             `json:"length" binding:"omitempty,gte=0"`
	Color       *string          `json:"color" binding:"omitempty,max=64"`
}

func (in UpdateProductInput) patch() (store.Patch, error) {
	p := store.Patch{}
	if in.Name != nil {
		p["name"] = *in.Name
	}
	if in.Price != nil {
		if err := checkPrice(*in.Price); err != nil {
			return nil, err
		}
		p["price"] = *in.Price
	}
	if in.Description != nil {
		p["description"] = *in.Description
	}
	if in.Stock != nil {
		p["stock"] = *in.Stock
	}
	if in.Length != nil {
		p["length"] = *in.Length
	}
	if in.Color != nil {
		p["color"] = *in.Color
	}
	return p, nil
}

// CreateProduct Handler
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	if err := checkPrice(*input.Price); err != nil {
		respondError(c, err)
		return
	}

	product := &models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Description: input.Description,
		Stock:       input.Stock,
		Length:      input.Length,
		Color:       input.Color,
	}
	if err := store.NewTable[models.Product](h.DB).Create(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": productResponse(product),
	})
}

func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := store.NewTable[models.Product](h.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, productResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := store.NewTable[models.Product](h.DB).GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productResponse(product))
}

func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateProductInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	patch, err := input.patch()
	if err != nil {
		respondError(c, err)
		return
	}

	product, err := store.NewTable[models.Product](h.DB).Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": productResponse(product),
	})
}

// DeleteProduct leaves cart items that point at the product in place;
// pricing those carts reports the broken reference.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := store.NewTable[models.Product](h.DB).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
