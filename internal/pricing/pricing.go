// Package pricing turns the contents of a cart into a monetary total.
package pricing

import (
	"errors"
	"fmt"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrBrokenReference is returned when a cart item points at a product
	// that no longer exists.
	ErrBrokenReference = errors.New("broken reference")

	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrTotalOutOfRange is returned when a total no longer fits MaxTotal.
	ErrTotalOutOfRange = errors.New("total out of range")
)

// Storage limits. They match the widest mysql columns that hold them:
// cart_items.quantity INT, products.price DECIMAL(12,2) and
// orders.total_amount DECIMAL(20,2).
const MaxQuantity = 1_000_000

var (
	MaxPrice = decimal.RequireFromString("9999999999.99")
	MaxTotal = decimal.RequireFromString("999999999999999999.99")
)

// Line is one priced cart item.
type Line struct {
	ItemID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Quote is the result of pricing a cart.
type Quote struct {
	Lines []Line
	Total decimal.Decimal
}

// Compute prices items against products (keyed by product id).
// An empty cart costs zero. A missing product fails the whole computation.
func Compute(items []models.CartItem, products map[int64]models.Product) (Quote, error) {
	q := Quote{Lines: make([]Line, 0, len(items)), Total: decimal.Zero}

	for _, item := range items {
		if item.Quantity <= 0 || item.Quantity > MaxQuantity {
			return Quote{}, fmt.Errorf("cart item %d: %w: %d", item.ID, ErrInvalidQuantity, item.Quantity)
		}
		p, ok := products[item.ProductID]
		if !ok {
			return Quote{}, fmt.Errorf("cart item %d: product %d: %w", item.ID, item.ProductID, ErrBrokenReference)
		}

		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		q.Lines = append(q.Lines, Line{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: p.Price,
			Total:     lineTotal,
		})
		q.Total = q.Total.Add(lineTotal)
	}

	if q.Total.GreaterThan(MaxTotal) {
		return Quote{}, fmt.Errorf("%w: %s", ErrTotalOutOfRange, q.Total)
	}
	return q, nil
}

// ProductIDs lists the distinct product ids referenced by items, in first-seen order.
func ProductIDs(items []models.CartItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
