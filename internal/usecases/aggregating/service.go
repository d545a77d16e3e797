package aggregating

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

type Options struct {
	// IncludeTarget adds the monthly target to each row. Only the month-to-date view carries it.
	IncludeTarget bool
}

type AggregatingService interface {
	Aggregate(records []domain.TransactionRecord, window domain.TimeRange, reference *domain.ReferenceTable, opts Options) []domain.OutletSalesRow
	Metadata(views ...[]domain.OutletSalesRow) domain.SnapshotMetadata
}

type SalesAggregator struct{}

func NewSalesAggregator() AggregatingService {
	return &SalesAggregator{}
}

type storeTotal struct {
	storeID string
	total   decimal.Decimal
}

// Aggregate sums the records inside window per store and ranks stores by sales, highest first.
// Stores with equal totals keep the order in which they first appeared in records.
// A nil reference yields rows labelled with the raw store id and "Unknown" city and area.
func (s *SalesAggregator) Aggregate(records []domain.TransactionRecord, window domain.TimeRange, reference *domain.ReferenceTable, opts Options) []domain.OutletSalesRow {
	totals := make([]*storeTotal, 0)
	byStore := make(map[string]*storeTotal)

	for _, record := range records {
		if !window.Contains(record.OccurredAt) {
			continue
		}

		storeID := domain.NormalizeStoreID(record.StoreID)
		if storeID == "" {
			storeID = domain.UnknownStore
		}

		st, ok := byStore[storeID]
		if !ok {
			st = &storeTotal{storeID: storeID}
			byStore[storeID] = st
			totals = append(totals, st)
		}
		st.total = st.total.Add(record.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].total.GreaterThan(totals[j].total)
	})

	rows := make([]domain.OutletSalesRow, 0, len(totals))
	for _, st := range totals {
		rows = append(rows, buildRow(st, reference, opts))
	}

	return rows
}

func buildRow(st *storeTotal, reference *domain.ReferenceTable, opts Options) domain.OutletSalesRow {
	row := domain.OutletSalesRow{
		Outlet: st.storeID,
		Sales:  truncate(st.total),
		City:   domain.UnknownLabel,
		Area:   domain.UnknownLabel,
	}

	ref, found := reference.Lookup(st.storeID)
	if found {
		if ref.DisplayName != "" {
			row.Outlet = ref.DisplayName
		}
		if ref.City != nil {
			row.City = *ref.City
		}
		if ref.Area != nil {
			row.Area = *ref.Area
		}
	}

	if opts.IncludeTarget {
		var target int64
		if found && ref.Target != nil {
			target = truncate(*ref.Target)
		}
		row.Target = &target
	}

	return row
}

// truncate drops the fractional part toward zero, never rounding.
func truncate(d decimal.Decimal) int64 {
	return d.Truncate(0).IntPart()
}

// Metadata lists the distinct cities and areas present in the given views, sorted.
func (s *SalesAggregator) Metadata(views ...[]domain.OutletSalesRow) domain.SnapshotMetadata {
	cities := map[string]struct{}{}
	areas := map[string]struct{}{}

	for _, rows := range views {
		for _, row := range rows {
			cities[row.City] = struct{}{}
			areas[row.Area] = struct{}{}
		}
	}

	return domain.SnapshotMetadata{
		Cities: sortedKeys(cities),
		Areas:  sortedKeys(areas),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
