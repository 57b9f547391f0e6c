package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/01moynul/shop-api/internal/database/dbtest"
	"github.com/01moynul/shop-api/internal/models"
	"github.com/01moynul/shop-api/internal/store"
	"github.com/shopspring/decimal"
)

func newWidget() *models.Product {
	return &models.Product{
		Name:        "Widget",
		Price:       decimal.RequireFromString("10.00"),
		Description: "A widget",
		Stock:       5,
		Length:      16,
		Color:       "red",
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	products := store.NewTable[models.Product](dbtest.Open(t))

	p := newWidget()
	if err := products.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := products.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != p.ID || got.Name != p.Name || got.Description != p.Description ||
		got.Stock != p.Stock || got.Length != p.Length || got.Color != p.Color || !got.Price.Equal(p.Price) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	users := store.NewTable[models.User](dbtest.Open(t))

	a := &models.User{Name: "a"}
	b := &models.User{Name: "b"}
	if err := users.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids collide: %d", a.ID)
	}

	// Deleted ids are not handed out again.
	if err := users.Delete(ctx, b.ID); err != nil {
		t.Fatal(err)
	}
	c := &models.User{Name: "c"}
	if err := users.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	if c.ID == b.ID {
		t.Fatalf("id %d was reused", c.ID)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	products := store.NewTable[models.Product](dbtest.Open(t))

	_, err := products.GetByID(context.Background(), 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var nf *store.NotFoundError
	if !errors.As(err, &nf) || nf.Message() != "Product not found" {
		t.Fatalf("unexpected not found error %#v", err)
	}
}

func TestUpdateOnlyTouchesPatchedColumns(t *testing.T) {
	ctx := context.Background()
	products := store.NewTable[models.Product](dbtest.Open(t))

	p := newWidget()
	if err := products.Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := products.Update(ctx, p.ID, store.Patch{"stock": 9})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Stock != 9 {
		t.Errorf("stock = %d, want 9", got.Stock)
	}
	if got.Name != p.Name || got.Color != p.Color || got.Length != p.Length ||
		got.Description != p.Description || !got.Price.Equal(p.Price) {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateEmptyPatch(t *testing.T) {
	ctx := context.Background()
	users := store.NewTable[models.User](dbtest.Open(t))

	u := &models.User{Name: "ann", Fullname: "Ann Lee", Nickname: "al"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	got, err := users.Update(ctx, u.ID, store.Patch{})
	if err != nil {
		t.Fatal(err)
	}
	if *got != *u {
		t.Errorf("got %+v, want %+v", got, u)
	}
}

func TestUpdateErrors(t *testing.T) {
	ctx := context.Background()
	users := store.NewTable[models.User](dbtest.Open(t))

	if _, err := users.Update(ctx, 42, store.Patch{"name": "x"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing row: err = %v", err)
	}

	u := &models.User{Name: "ann"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if _, err := users.Update(ctx, u.ID, store.Patch{"id; DROP TABLE users": 1}); !errors.Is(err, store.ErrUnknownColumn) {
		t.Errorf("bad column: err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	users := store.NewTable[models.User](dbtest.Open(t))

	u := &models.User{Name: "ann"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if err := users.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := users.GetByID(ctx, u.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
	if err := users.Delete(ctx, u.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestListAndListWhere(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	carts := store.NewTable[models.Cart](db)
	items := store.NewTable[models.CartItem](db)

	if got, err := carts.List(ctx); err != nil || len(got) != 0 {
		t.Fatalf("empty list: %v, %v", got, err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	c1 := &models.Cart{CreationDate: now}
	c2 := &models.Cart{CreationDate: now}
	for _, c := range []*models.Cart{c1, c2} {
		if err := carts.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}
	for _, it := range []*models.CartItem{
		{CartID: c1.ID, ProductID: 1, Quantity: 1},
		{CartID: c2.ID, ProductID: 1, Quantity: 2},
		{CartID: c1.ID, ProductID: 2, Quantity: 3},
	} {
		if err := items.Create(ctx, it); err != nil {
			t.Fatal(err)
		}
	}

	all, err := carts.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List: %v, %v", all, err)
	}
	if !all[0].CreationDate.Equal(now) {
		t.Errorf("creation date = %v, want %v", all[0].CreationDate, now)
	}

	mine, err := items.ListWhere(ctx, "cart_id", c1.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 || mine[0].Quantity != 1 || mine[1].Quantity != 3 {
		t.Errorf("ListWhere = %+v", mine)
	}

	n, err := items.DeleteWhere(ctx, "cart_id", c1.ID)
	if err != nil || n != 2 {
		t.Errorf("DeleteWhere = %d, %v", n, err)
	}
	if _, err := items.ListWhere(ctx, "nope", 1); !errors.Is(err, store.ErrUnknownColumn) {
		t.Errorf("ListWhere bad column: err = %v", err)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	boom := errors.New("boom")

	err := store.WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := store.NewTable[models.User](tx).Create(ctx, &models.User{Name: "ghost"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	users, err := store.NewTable[models.User](db).List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 0 {
		t.Errorf("rolled back insert is visible: %+v", users)
	}
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)

	err := store.WithTx(ctx, db, func(tx *sql.Tx) error {
		return store.NewTable[models.User](tx).Create(ctx, &models.User{Name: "kept"})
	})
	if err != nil {
		t.Fatal(err)
	}
	users, _ := store.NewTable[models.User](db).List(ctx)
	if len(users) != 1 || users[0].Name != "kept" {
		t.Errorf("users = %+v", users)
	}
}
