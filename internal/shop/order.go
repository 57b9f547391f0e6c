package shop

import (
	"context"
	"database/sql"

	"github.com/01moynul/shop-api/internal/events"
	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/pricing"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/rs/zerolog/log"
)

// PlaceOrder prices the cart and records an order with that total and a
// snapshot of its lines. The cart itself is left as it is.
//
// The cart version is checked and bumped inside the same transaction, so
// two orders racing on one cart cannot both commit against the same
// contents: the loser gets ErrCartChanged and nothing is persisted.
func (s *Service) PlaceOrder(ctx context.Context, cartID int64, clientInfo string) (*models.Order, []models.OrderItem, error) {
	var (
		order *models.Order
		lines []models.OrderItem
		quote pricing.Quote
	)

	err := store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		// 1. --- Load the cart and what is in it ---
		cart, err := store.NewTable[models.Cart](tx).GetByID(ctx, cartID)
		if err != nil {
			return err
		}
		items, err := store.NewTable[models.CartItem](tx).ListWhere(ctx, "cart_id", cartID)
		if err != nil {
			return err
		}
		products, err := loadProducts(ctx, tx, pricing.ProductIDs(items))
		if err != nil {
			return err
		}

		// 2. --- Price it ---
		quote, err = pricing.Compute(items, products)
		if err != nil {
			return err
		}

		// 3. --- Record the order ---
		order = &models.Order{
			CartID:       cart.ID,
			CreationDate: s.now(),
			TotalAmount:  quote.Total,
			Status:       models.OrderStatusPending,
			ClientInfo:   clientInfo,
		}
		if err := store.NewTable[models.Order](tx).Create(ctx, order); err != nil {
			return err
		}

		orderItems := store.NewTable[models.OrderItem](tx)
		lines = make([]models.OrderItem, 0, len(quote.Lines))
		for _, l := range quote.Lines {
			oi := models.OrderItem{
				OrderID:   order.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				Price:     l.UnitPrice,
			}
			if err := orderItems.Create(ctx, &oi); err != nil {
				return err
			}
			lines = append(lines, oi)
		}

		// 4. --- Claim the cart snapshot ---
		return bumpCartVersion(ctx, tx, cart.ID, cart.Version)
	})
	if err != nil {
		return nil, nil, err
	}

	s.publishOrderCreated(ctx, order, quote)
	return order, lines, nil
}

// GetOrder returns the order and its line snapshot.
func (s *Service) GetOrder(ctx context.Context, orderID int64) (*models.Order, []models.OrderItem, error) {
	order, err := store.NewTable[models.Order](s.db).GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := store.NewTable[models.OrderItem](s.db).ListWhere(ctx, "order_id", orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// publishOrderCreated never fails the request: the order is already committed.
func (s *Service) publishOrderCreated(ctx context.Context, order *models.Order, quote pricing.Quote) {
	evt := events.OrderCreated{
		OrderID:     order.ID,
		CartID:      order.CartID,
		TotalAmount: order.TotalAmount.StringFixed(2),
		CreatedAt:   order.CreationDate,
		Items:       make([]events.OrderItemEvt, 0, len(quote.Lines)),
	}
	for _, l := range quote.Lines {
		evt.Items = append(evt.Items, events.OrderItemEvt{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.Total.StringFixed(2),
		})
	}

	if err := s.publisher.Publish(ctx, events.RKOrderCreated, evt); err != nil {
		log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to publish order.created")
	}
}
