package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/01moynul/shop-api/internal/middleware"
	"github.com/01moynul/shop-api/internal/pricing"
	"github.com/01moynul/shop-api/internal/shop"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a domain error onto a status code and a {"message"} body.
// Only the 500 branch hides the underlying error from the client.
func respondError(c *gin.Context, err error) {
	var nf *store.NotFoundError
	var ve *validationError

	switch {
	case errors.As(err, &ve):
		abort(c, http.StatusBadRequest, ve.Error(), err)
	case errors.As(err, &nf):
		abort(c, http.StatusNotFound, nf.Message(), err)
	case errors.Is(err, store.ErrNotFound):
		abort(c, http.StatusNotFound, "Not found", err)
	case errors.Is(err, pricing.ErrBrokenReference):
		abort(c, http.StatusConflict, "Cart references a product that no longer exists", err)
	case errors.Is(err, shop.ErrCartChanged):
		abort(c, http.StatusConflict, "Cart was modified by another request, please retry", err)
	case errors.Is(err, pricing.ErrInvalidQuantity):
		abort(c, http.StatusBadRequest,
			fmt.Sprintf("Quantity must be between 1 and %d", pricing.MaxQuantity), err)
	case errors.Is(err, pricing.ErrTotalOutOfRange):
		abort(c, http.StatusBadRequest,
			fmt.Sprintf("Order total must not exceed %s", pricing.MaxTotal.StringFixed(2)), err)
	case errors.Is(err, store.ErrUnknownColumn):
		abort(c, http.StatusBadRequest, "Unknown field in update", err)
	default:
		abort(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func abort(c *gin.Context, status int, message string, err error) {
	logger := log.With().Str("request_id", middleware.RequestIDFrom(c)).Logger()
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abort(c, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return id, true
}
