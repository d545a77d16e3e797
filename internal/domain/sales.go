package domain

// UnknownLabel fills city and area when a store has no reference metadata.
const UnknownLabel = "Unknown"

// OutletSalesRow is one line of a dashboard view. Target is only set on the month-to-date view.
type OutletSalesRow struct {
	Outlet string `json:"outlet"`
	Sales  int64  `json:"sales"`
	City   string `json:"city"`
	Area   string `json:"area"`
	Target *int64 `json:"target,omitempty"`
}

type SnapshotMetadata struct {
	Cities []string `json:"cities"`
	Areas  []string `json:"areas"`
}

// Snapshot is the whole data.json document. It is rebuilt from scratch on every run.
type Snapshot struct {
	Date       string           `json:"date"`
	LastUpdate string           `json:"lastUpdate"`
	Today      []OutletSalesRow `json:"today"`
	Yesterday  []OutletSalesRow `json:"yesterday"`
	MTD        []OutletSalesRow `json:"mtd"`
	Metadata   SnapshotMetadata `json:"metadata"`
}
