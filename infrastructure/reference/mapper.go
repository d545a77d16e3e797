package reference

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/orangepax/outlet-sales-sync/internal/config"
	"github.com/orangepax/outlet-sales-sync/internal/domain"
)

const sheetsScheme = "sheets://"

//go:generate mockgen -source=mapper.go -destination=mocks/mock_mapper.go -package=mocks

// ReferenceMapper loads store metadata. Any returned error is a *MappingError.
type ReferenceMapper interface {
	Load(ctx context.Context, source string) (*domain.ReferenceTable, error)
}

// SheetsReader reads a range of cells from a spreadsheet as text.
type SheetsReader interface {
	ReadRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error)
}

type Mapper struct {
	columns Columns
	sheets  SheetsReader
}

func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{
		columns: Columns{
			Store:  cfg.Reference.ColumnStore,
			Name:   cfg.Reference.ColumnName,
			City:   cfg.Reference.ColumnCity,
			Area:   cfg.Reference.ColumnArea,
			Target: cfg.Reference.ColumnTarget,
		},
		sheets: NewGoogleSheetsReader(cfg.Reference.CredentialsFile),
	}
}

// WithSheetsReader replaces the Google Sheets client.
func (m *Mapper) WithSheetsReader(r SheetsReader) *Mapper {
	m.sheets = r
	return m
}

func (m *Mapper) Load(ctx context.Context, source string) (*domain.ReferenceTable, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, newMappingError(ErrSourceNotFound, source, "no reference source configured")
	}

	rows, err := m.readRows(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, newMappingError(ErrUnreadable, source, "no header row")
	}

	idx, err := resolveColumns(source, rows[0], m.columns)
	if err != nil {
		return nil, err
	}
	m.warnMissingOptional(source, idx)

	table := domain.NewReferenceTable()
	blank := 0
	for _, row := range rows[1:] {
		id := cell(row, idx.store)
		if id == "" {
			blank++
			continue
		}

		table.Put(domain.StoreReference{
			StoreID:     id,
			DisplayName: cell(row, idx.name),
			City:        optionalCell(row, idx.city),
			Area:        optionalCell(row, idx.area),
			Target:      parseTarget(cell(row, idx.target)),
		})
	}

	logrus.WithFields(logrus.Fields{
		"source":       source,
		"stores":       table.Len(),
		"blank_ids":    blank,
		"store_column": rows[0][idx.store],
		"name_column":  rows[0][idx.name],
	}).Info("reference: store mapping loaded")

	return table, nil
}

func (m *Mapper) readRows(ctx context.Context, source string) ([][]string, error) {
	if strings.HasPrefix(source, sheetsScheme) {
		return readSheet(ctx, m.sheets, source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".csv":
		return readCSV(source)
	case ".xlsx", ".xlsm":
		return readXLSX(source)
	default:
		return nil, newMappingError(ErrUnreadable, source, "unsupported reference format")
	}
}

func (m *Mapper) warnMissingOptional(source string, idx columnIndex) {
	for column, pair := range map[string]struct {
		explicit string
		index    int
	}{
		"city":   {m.columns.City, idx.city},
		"area":   {m.columns.Area, idx.area},
		"target": {m.columns.Target, idx.target},
	} {
		if pair.explicit != "" && pair.index == noColumn {
			logrus.WithFields(logrus.Fields{
				"source": source,
				"column": column,
				"header": pair.explicit,
			}).Warn("reference: configured optional column not present, leaving it empty")
		}
	}
}

func cell(row []string, i int) string {
	if i == noColumn || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optionalCell(row []string, i int) *string {
	v := cell(row, i)
	if v == "" {
		return nil
	}
	return &v
}

// parseTarget accepts "1,250,000" style values. Anything non-numeric means no target.
func parseTarget(raw string) *decimal.Decimal {
	raw = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(raw)
	if raw == "" {
		return nil
	}

	target, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &target
}
