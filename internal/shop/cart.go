package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/pricing"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/shopspring/decimal"
)

// CartDetail is a cart with its items and, when every product still
// exists, its current total.
type CartDetail struct {
	Cart  models.Cart
	Items []models.CartItem
	Total *decimal.Decimal
}

func (s *Service) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart := &models.Cart{CreationDate: s.now()}
	if err := store.NewTable[models.Cart](s.db).Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) GetCart(ctx context.Context, cartID int64) (*CartDetail, error) {
	cart, err := store.NewTable[models.Cart](s.db).GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	items, err := store.NewTable[models.CartItem](s.db).ListWhere(ctx, "cart_id", cartID)
	if err != nil {
		return nil, err
	}

	detail := &CartDetail{Cart: *cart, Items: items}

	products, err := loadProducts(ctx, s.db, pricing.ProductIDs(items))
	if err != nil {
		return nil, err
	}
	quote, err := pricing.Compute(items, products)
	switch {
	case err == nil:
		detail.Total = &quote.Total
	case errors.Is(err, pricing.ErrBrokenReference), errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrTotalOutOfRange):
		// The cart can still be shown; it just has no total.
	default:
		return nil, err
	}
	return detail, nil
}

// AddItem puts quantity of a product into the cart. Adding a product that
// is already in the cart raises that line's quantity.
func (s *Service) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*models.CartItem, error) {
	if quantity <= 0 || quantity > pricing.MaxQuantity {
		return nil, fmt.Errorf("%w: %d", pricing.ErrInvalidQuantity, quantity)
	}

	var item *models.CartItem
	err := store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cart, err := store.NewTable[models.Cart](tx).GetByID(ctx, cartID)
		if err != nil {
			return err
		}

		if _, err := store.NewTable[models.Product](tx).GetByID(ctx, productID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("product %d: %w", productID, pricing.ErrBrokenReference)
			}
			return err
		}

		items := store.NewTable[models.CartItem](tx)
		existing, err := items.ListWhere(ctx, "cart_id", cartID)
		if err != nil {
			return err
		}
		for _, it := range existing {
			if it.ProductID != productID {
				continue
			}
			if it.Quantity > pricing.MaxQuantity-quantity {
				return fmt.Errorf("%w: %d + %d exceeds %d",
					pricing.ErrInvalidQuantity, it.Quantity, quantity, pricing.MaxQuantity)
			}
			item, err = items.Update(ctx, it.ID, store.Patch{"quantity": it.Quantity + quantity})
			if err != nil {
				return err
			}
			return bumpCartVersion(ctx, tx, cart.ID, cart.Version)
		}

		item = &models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
		if err := items.Create(ctx, item); err != nil {
			return err
		}
		return bumpCartVersion(ctx, tx, cart.ID, cart.Version)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one item of the cart. An item belonging to another
// cart is reported as not found.
func (s *Service) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	return store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cart, err := store.NewTable[models.Cart](tx).GetByID(ctx, cartID)
		if err != nil {
			return err
		}

		items := store.NewTable[models.CartItem](tx)
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.CartID != cartID {
			return &store.NotFoundError{Entity: models.CartItem{}.Label(), ID: itemID}
		}
		if err := items.Delete(ctx, itemID); err != nil {
			return err
		}
		return bumpCartVersion(ctx, tx, cart.ID, cart.Version)
	})
}

// DeleteCart removes the cart together with its items.
func (s *Service) DeleteCart(ctx context.Context, cartID int64) error {
	return store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		carts := store.NewTable[models.Cart](tx)
		if _, err := carts.GetByID(ctx, cartID); err != nil {
			return err
		}
		if _, err := store.NewTable[models.CartItem](tx).DeleteWhere(ctx, "cart_id", cartID); err != nil {
			return err
		}
		return carts.Delete(ctx, cartID)
	})
}
