package handlers

import (
	"net/http"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
)

//
// --- User Handlers ---
//

type CreateUserInput struct {
	Name     string `json:"name" binding:"required,max=255"`
	Fullname string `json:"fullname" binding:"max=255"`
	Nickname string `json:"nickname" binding:"max=255"`
}

// UpdateUserInput only touches the fields that are present in the body.
type UpdateUserInput struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Fullname *string `json:"fullname" binding:"omitempty,max=255"`
	Nickname *string `json:"nickname" binding:"omitempty,max=255"`
}

func (in UpdateUserInput) patch() store.Patch {
	p := store.Patch{}
	if in.Name != nil {
		p["name"] = *in.Name
	}
	if in.Fullname != nil {
		p["fullname"] = *in.Fullname
	}
	if in.Nickname != nil {
		p["nickname"] = *in.Nickname
	}
	return p
}

func (h *Handlers) GetUsers(c *gin.Context) {
	users, err := store.NewTable[models.User](h.DB).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handlers) CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	user := &models.User{Name: input.Name, Fullname: input.Fullname, Nickname: input.Nickname}
	if err := store.NewTable[models.User](h.DB).Create(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *Handlers) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := store.NewTable[models.User](h.DB).GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input UpdateUserInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	user, err := store.NewTable[models.User](h.DB).Update(c.Request.Context(), id, input.patch())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser also removes the user's addresses.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Shop.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
