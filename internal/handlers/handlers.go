package handlers

import (
	"database/sql"

	"github.com/01moynul/shop-api/internal/shop"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB   *sql.DB       // Single-table CRUD goes straight through the store
	Shop *shop.Service // Cart, order and cascading operations
}
