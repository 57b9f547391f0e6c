package handlers

import (
	"net/http"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
)

//
// --- Address Handlers ---
//

type AddressInput struct {
	EmailAddress string `json:"email_address" binding:"required,email,max=255"`
}

func (h *Handlers) GetUserAddresses(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	addresses, err := h.Shop.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *Handlers) CreateAddress(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input AddressInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	addr, err := h.Shop.AddAddress(c.Request.Context(), userID, input.EmailAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address created successfully",
		"address": addr,
	})
}

func (h *Handlers) GetAddress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	addr, err := store.NewTable[models.Address](h.DB).GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}

func (h *Handlers) UpdateAddress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input AddressInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	addr, err := store.NewTable[models.Address](h.DB).Update(c.Request.Context(), id,
		store.Patch{"email_address": input.EmailAddress})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"address": addr,
	})
}

func (h *Handlers) DeleteAddress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := store.NewTable[models.Address](h.DB).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
