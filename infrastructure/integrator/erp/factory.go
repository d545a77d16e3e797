package erp

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	erpdomain "github.com/orangepax/outlet-sales-sync/infrastructure/integrator/erp/domain"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FactoryTransactionRecords normalizes raw OData rows. Rows whose date cannot be parsed are dropped
// and counted in skipped; every other field degrades to a default instead.
func FactoryTransactionRecords(rows []erpdomain.RawTransaction, fields domain.TransactionFields) (records []domain.TransactionRecord, skipped int) {
	records = make([]domain.TransactionRecord, 0, len(rows))

	for _, row := range rows {
		occurredAt, ok := parseTimestamp(row[fields.Date])
		if !ok {
			skipped++
			continue
		}

		records = append(records, domain.TransactionRecord{
			StoreID:    parseStoreID(row[fields.Store]),
			Amount:     parseAmount(row[fields.Amount]),
			OccurredAt: occurredAt,
		})
	}

	return records, skipped
}

func parseStoreID(value interface{}) string {
	if value == nil {
		return domain.UnknownStore
	}

	id := strings.TrimSpace(fmt.Sprint(value))
	if id == "" {
		return domain.UnknownStore
	}
	return id
}

// parseAmount accepts JSON numbers and numeric strings. Anything else counts as zero.
func parseAmount(value interface{}) decimal.Decimal {
	var raw string

	switch v := value.(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	case int:
		return decimal.NewFromInt(int64(v))
	default:
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseTimestamp reads RFC 3339 timestamps. Values without an offset are taken as UTC.
func parseTimestamp(value interface{}) (time.Time, bool) {
	raw, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
