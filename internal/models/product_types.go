package models

import "github.com/shopspring/decimal"

// Product is the model for the 'products' table.
// Price is a decimal end to end; it is never converted to float.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Stock       int             `json:"stock" db:"stock"`
	Length      int             `json:"length" db:"length"`
	Color       string          `json:"color" db:"color"`
}

func (Product) TableName() string { return "products" }
func (Product) Label() string     { return "Product" }

func (Product) Columns() []string {
	return []string{"name", "price", "description", "stock", "length", "color"}
}

func (p *Product) Values() []any {
	return []any{p.Name, p.Price, p.Description, p.Stock, p.Length, p.Color}
}

func (p *Product) ScanTargets() []any {
	return []any{&p.ID, &p.Name, &p.Price, &p.Description, &p.Stock, &p.Length, &p.Color}
}

func (p *Product) SetID(id int64) { p.ID = id }
