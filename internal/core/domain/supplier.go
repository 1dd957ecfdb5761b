package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a party the business buys from. Balance is the running amount
// owed to the supplier, mutated only by purchase postings.
type Supplier struct {
	ID            int64
	Name          string
	Phone         string
	Address       string
	ContactPerson string
	Balance       decimal.Decimal
	Status        PartyStatus
	CreatedDate   time.Time
}
