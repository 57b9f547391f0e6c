package pricing

import (
	"errors"
	"testing"

	"github.com/01moynul/shop-api/internal/models"
	"github.com/shopspring/decimal"
)

func product(id int64, price string) models.Product {
	return models.Product{ID: id, Name: "p", Price: decimal.RequireFromString(price)}
}

func TestCompute(t *testing.T) {
	products := map[int64]models.Product{
		1: product(1, "10.00"),
		2: product(2, "0.10"),
		3: product(3, "19.99"),
	}

	tests := []struct {
		name  string
		items []models.CartItem
		want  string
	}{
		{"empty cart", nil, "0"},
		{"single line", []models.CartItem{{ID: 1, ProductID: 1, Quantity: 3}}, "30.00"},
		{"cents do not drift", []models.CartItem{{ID: 1, ProductID: 2, Quantity: 3}}, "0.30"},
		{
			"several lines",
			[]models.CartItem{
				{ID: 1, ProductID: 1, Quantity: 2},
				{ID: 2, ProductID: 3, Quantity: 3},
				{ID: 3, ProductID: 2, Quantity: 7},
			},
			"80.67",
		},
		{
			"same product twice",
			[]models.CartItem{
				{ID: 1, ProductID: 2, Quantity: 1},
				{ID: 2, ProductID: 2, Quantity: 2},
			},
			"0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(tt.items, products)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			want := decimal.RequireFromString(tt.want)
			if !q.Total.Equal(want) {
				t.Errorf("total = %s, want %s", q.Total, want)
			}
			if len(q.Lines) != len(tt.items) {
				t.Errorf("got %d lines, want %d", len(q.Lines), len(tt.items))
			}
		})
	}
}

func TestComputeRepeatable(t *testing.T) {
	products := map[int64]models.Product{1: product(1, "0.10")}
	items := make([]models.CartItem, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, models.CartItem{ID: int64(i + 1), ProductID: 1, Quantity: 1})
	}

	want := decimal.RequireFromString("10")
	for i := 0; i < 5; i++ {
		q, err := Compute(items, products)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		if !q.Total.Equal(want) {
			t.Fatalf("run %d: total = %s, want %s", i, q.Total, want)
		}
	}
}

func TestComputeLineTotals(t *testing.T) {
	products := map[int64]models.Product{7: product(7, "2.50")}
	q, err := Compute([]models.CartItem{{ID: 9, ProductID: 7, Quantity: 4}}, products)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	line := q.Lines[0]
	if line.ItemID != 9 || line.ProductID != 7 || line.Quantity != 4 {
		t.Errorf("unexpected line %+v", line)
	}
	if !line.UnitPrice.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("unit price = %s", line.UnitPrice)
	}
	if !line.Total.Equal(decimal.NewFromInt(10)) {
		t.Errorf("line total = %s", line.Total)
	}
}

func TestComputeBrokenReference(t *testing.T) {
	products := map[int64]models.Product{1: product(1, "10.00")}
	items := []models.CartItem{
		{ID: 1, ProductID: 1, Quantity: 1},
		{ID: 2, ProductID: 42, Quantity: 1},
	}

	_, err := Compute(items, products)
	if !errors.Is(err, ErrBrokenReference) {
		t.Fatalf("err = %v, want ErrBrokenReference", err)
	}
}

func TestComputeInvalidQuantity(t *testing.T) {
	products := map[int64]models.Product{1: product(1, "10.00")}
	for _, qty := range []int{0, -2, MaxQuantity + 1} {
		_, err := Compute([]models.CartItem{{ID: 1, ProductID: 1, Quantity: qty}}, products)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestComputeLimits(t *testing.T) {
	// The most expensive product at the largest quantity still fits.
	products := map[int64]models.Product{1: {ID: 1, Price: MaxPrice}}
	q, err := Compute([]models.CartItem{{ID: 1, ProductID: 1, Quantity: MaxQuantity}}, products)
	if err != nil {
		t.Fatalf("Compute at the limits: %v", err)
	}
	if !q.Total.Equal(MaxPrice.Mul(decimal.NewFromInt(MaxQuantity))) {
		t.Errorf("total = %s", q.Total)
	}

	products[2] = product(2, "1000000000000000000")
	_, err = Compute([]models.CartItem{{ID: 2, ProductID: 2, Quantity: 1}}, products)
	if !errors.Is(err, ErrTotalOutOfRange) {
		t.Fatalf("err = %v, want ErrTotalOutOfRange", err)
	}
}

func TestProductIDs(t *testing.T) {
	items := []models.CartItem{{ProductID: 3}, {ProductID: 1}, {ProductID: 3}, {ProductID: 2}}
	got := ProductIDs(items)
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
