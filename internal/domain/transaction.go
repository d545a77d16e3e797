package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownStore is used when a fetched row carries no store identifier.
const UnknownStore = "Unknown"

// TransactionRecord is one payment line of a retail transaction as returned by the ERP.
type TransactionRecord struct {
	StoreID    string
	Amount     decimal.Decimal
	OccurredAt time.Time // UTC
}

// TransactionFields names the OData properties holding each TransactionRecord attribute.
type TransactionFields struct {
	Store  string
	Amount string
	Date   string
}

// Select returns the properties in $select order.
func (f TransactionFields) Select() []string {
	return []string{f.Store, f.Amount, f.Date}
}
