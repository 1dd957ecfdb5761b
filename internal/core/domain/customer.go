package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyStatus indicates whether a customer or supplier is usable for new invoices.
type PartyStatus string

const (
	PartyActive   PartyStatus = "active"
	PartyInactive PartyStatus = "inactive"
)

// Customer is a party that buys from the business. Balance is the running
// amount the customer still owes; sale postings are the only core path that
// mutates it.
type Customer struct {
	ID          int64
	Name        string
	Phone       string
	Address     string
	Balance     decimal.Decimal
	Status      PartyStatus
	CreatedDate time.Time
}
