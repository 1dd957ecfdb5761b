package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an inventory item. Quantity is the current stock level and may
// go negative; no floor is enforced on sale postings.
type Product struct {
	ID          int64
	Name        string
	Code        string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Unit        string
	Quantity    int64
	MinStock    int64
	Category    string
	CreatedDate time.Time
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}
