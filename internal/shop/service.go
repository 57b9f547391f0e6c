// Package shop holds the operations that touch more than one table: cart
// item changes, order placement and cascading deletes. Single-table CRUD
// goes straight to the store.
package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/01moynul/shop-api/internal/events"
	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
)

// ErrCartChanged means another writer modified the cart while this
// operation was running. The operation was rolled back and can be retried.
var ErrCartChanged = errors.New("cart was modified concurrently")

type Service struct {
	db        *sql.DB
	publisher events.Publisher
	now       func() time.Time
}

func NewService(db *sql.DB, publisher events.Publisher) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		db:        db,
		publisher: publisher,
		now: func() time.Time {
			// DATETIME columns keep whole seconds.
			return time.Now().UTC().Truncate(time.Second)
		},
	}, nil
}

// bumpCartVersion moves the cart from version expected to expected+1.
// It fails with ErrCartChanged when someone else got there first.
func bumpCartVersion(ctx context.Context, tx store.DBTX, cartID, expected int64) error {
	result, err := tx.ExecContext(ctx,
		"UPDATE carts SET version = version + 1 WHERE id = ? AND version = ?", cartID, expected)
	if err != nil {
		return fmt.Errorf("bump cart %d version: %w", cartID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("bump cart %d version: %w", cartID, err)
	}
	if n == 0 {
		return fmt.Errorf("cart %d: %w", cartID, ErrCartChanged)
	}
	return nil
}

// loadProducts fetches the given products. Ids that no longer exist are
// left out of the map so pricing can report them.
func loadProducts(ctx context.Context, db store.DBTX, ids []int64) (map[int64]models.Product, error) {
	products := store.NewTable[models.Product](db)
	out := make(map[int64]models.Product, len(ids))
	for _, id := range ids {
		p, err := products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out[id] = *p
	}
	return out, nil
}
