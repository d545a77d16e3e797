package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StoreReference is the metadata of one store taken from the reference dataset.
type StoreReference struct {
	StoreID     string
	DisplayName string
	City        *string
	Area        *string
	Target      *decimal.Decimal
}

// ReferenceTable indexes StoreReference by normalized store id.
type ReferenceTable struct {
	stores map[string]StoreReference
}

func NewReferenceTable() *ReferenceTable {
	return &ReferenceTable{stores: make(map[string]StoreReference)}
}

// Put stores ref under its normalized id. A later row with the same id replaces the earlier one.
func (t *ReferenceTable) Put(ref StoreReference) {
	ref.StoreID = NormalizeStoreID(ref.StoreID)
	t.stores[ref.StoreID] = ref
}

// Lookup is safe on a nil table, which stands for "no reference data".
func (t *ReferenceTable) Lookup(storeID string) (StoreReference, bool) {
	if t == nil {
		return StoreReference{}, false
	}
	ref, ok := t.stores[NormalizeStoreID(storeID)]
	return ref, ok
}

func (t *ReferenceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.stores)
}

// NormalizeStoreID is the join key used on both sides of the enrichment.
func NormalizeStoreID(id string) string {
	return strings.TrimSpace(id)
}
