package models

import "time"

// Cart defines the struct for the 'carts' table.
// Version goes up on every item change and on every order placed from the
// cart; order placement checks it to detect a concurrent writer.
type Cart struct {
	ID           int64     `json:"id" db:"id"`
	CreationDate time.Time `json:"creation_date" db:"creation_date"`
	Version      int64     `json:"-" db:"version"`
}

func (Cart) TableName() string { return "carts" }
func (Cart) Label() string     { return "Cart" }

func (Cart) Columns() []string {
	return []string{"creation_date", "version"}
}

func (c *Cart) Values() []any {
	return []any{c.CreationDate, c.Version}
}

func (c *Cart) ScanTargets() []any {
	return []any{&c.ID, &c.CreationDate, &c.Version}
}

func (c *Cart) SetID(id int64) { c.ID = id }

// CartItem defines the struct for the 'cart_items' table.
// ProductID is a plain reference: the product may be deleted underneath it.
type CartItem struct {
	ID        int64 `json:"id" db:"id"`
	CartID    int64 `json:"cart_id" db:"cart_id"`
	ProductID int64 `json:"product_id" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}

func (CartItem) TableName() string { return "cart_items" }
func (CartItem) Label() string     { return "Cart item" }

func (CartItem) Columns() []string {
	return []string{"cart_id", "product_id", "quantity"}
}

func (ci *CartItem) Values() []any {
	return []any{ci.CartID, ci.ProductID, ci.Quantity}
}

func (ci *CartItem) ScanTargets() []any {
	return []any{&ci.ID, &ci.CartID, &ci.ProductID, &ci.Quantity}
}

func (ci *CartItem) SetID(id int64) { ci.ID = id }
