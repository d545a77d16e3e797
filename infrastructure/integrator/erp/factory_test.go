package erp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

var testFields = domain.TransactionFields{
	Store:  "OperatingUnitNumber",
	Amount: "PaymentAmount",
	Date:   "TransactionDate",
}

func TestFactoryTransactionRecords(t *testing.T) {
	rows := []erpdomain.RawTransaction{
		{"OperatingUnitNumber": " S1 ", "PaymentAmount": json.Number("100.50"), "TransactionDate": "2024-03-15T10:00:00Z"},
		{"OperatingUnitNumber": json.Number("42"), "PaymentAmount": "12.25", "TransactionDate": "2024-03-15T12:30:00+05:00"},
		{"PaymentAmount": json.Number("7"), "TransactionDate": "2024-03-14T08:00:00"},
		{"OperatingUnitNumber": "S2", "PaymentAmount": "n/a", "TransactionDate": "2024-03-14"},
		{"OperatingUnitNumber": "S3", "PaymentAmount": json.Number("5"), "TransactionDate": "yesterday"},
		{"OperatingUnitNumber": "S3", "PaymentAmount": json.Number("5")},
	}

	records, skipped := FactoryTransactionRecords(rows, testFields)
	require.Len(t, records, 4)
	assert.Equal(t, 2, skipped)

	assert.Equal(t, "S1", records[0].StoreID)
	assert.True(t, decimal.RequireFromString("100.5").Equal(records[0].Amount))
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), records[0].OccurredAt)

	assert.Equal(t, "42", records[1].StoreID)
	assert.True(t, decimal.RequireFromString("12.25").Equal(records[1].Amount))
	assert.Equal(t, time.Date(2024, 3, 15, 7, 30, 0, 0, time.UTC), records[1].OccurredAt)

	assert.Equal(t, domain.UnknownStore, records[2].StoreID)
	assert.Equal(t, time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC), records[2].OccurredAt)

	assert.True(t, records[3].Amount.IsZero(), "unparsable amounts count as zero")
	assert.Equal(t, time.UTC, records[3].OccurredAt.Location())
}

func TestFactoryTransactionRecords_Empty(t *testing.T) {
	records, skipped := FactoryTransactionRecords(nil, testFields)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.Zero(t, skipped)
}
