package shop

import (
	"context"
	"database/sql"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
)

// AddAddress creates an address for an existing user.
func (s *Service) AddAddress(ctx context.Context, userID int64, email string) (*models.Address, error) {
	addr := &models.Address{EmailAddress: email, UserID: userID}
	err := store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := store.NewTable[models.User](tx).GetByID(ctx, userID); err != nil {
			return err
		}
		return store.NewTable[models.Address](tx).Create(ctx, addr)
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}

// ListAddresses returns the addresses of an existing user.
func (s *Service) ListAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	if _, err := store.NewTable[models.User](s.db).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return store.NewTable[models.Address](s.db).ListWhere(ctx, "user_id", userID)
}

// DeleteUser removes the user and every address it owns.
func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	return store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		users := store.NewTable[models.User](tx)
		if _, err := users.GetByID(ctx, userID); err != nil {
			return err
		}
		if _, err := store.NewTable[models.Address](tx).DeleteWhere(ctx, "user_id", userID); err != nil {
			return err
		}
		return users.Delete(ctx, userID)
	})
}
