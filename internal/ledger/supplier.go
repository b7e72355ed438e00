// =============================================================================
// Travel Ticket Report Generator - Supplier Ledger Loader
// =============================================================================
//
// Loads the supplier-side ledger export: one row per supplier settlement
// entry. It shares the monetary column set with the client ledger but has
// no company or passenger dimensions, and it carries two optional columns
// (Tx.Extra and Valor Medio) that older exports omit.
//
// =============================================================================

package ledger

import (
	"log/slog"
	"strings"

	"github.com/gmtravel/ticket-report-generator/internal/normalize"
	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// Supplier-only column names. The shared monetary columns are defined in
// client.go.
const (
	ColExtraTax     = "Tx.Extra"
	ColAverageValue = "Valor Medio"
)

// supplierRequiredColumns lists the columns every supplier export carries.
var supplierRequiredColumns = []string{
	ColSupplier,
	ColFare,
	ColBoardingTax,
	ColServiceTax,
	ColTotal,
}

// LoadSupplier reads and normalizes the supplier ledger file.
//
// PARAMETERS:
//   - path: the supplier ledger XLSX file
//
// RETURNS:
//   - the cleaned supplier records, in file order
//   - *FileAccessError, *MissingColumnsError or *LoadError on failure
//
// Rows whose supplier name contains "total" are summary rows embedded by
// the export and are dropped. The optional columns read as 0.0 when absent.
func LoadSupplier(path string) ([]types.SupplierRecord, error) {
	sheet, err := ReadSheet(path)
	if err != nil {
		return nil, err
	}

	if missing := sheet.MissingColumns(supplierRequiredColumns); len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	hasExtraTax := sheet.HasColumn(ColExtraTax)
	hasAverage := sheet.HasColumn(ColAverageValue)

	records := make([]types.SupplierRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		supplier := strings.TrimSpace(row[ColSupplier])
		if supplier == "" || strings.Contains(strings.ToLower(supplier), "total") {
			continue
		}

		record := types.SupplierRecord{
			Supplier:    supplier,
			Fare:        normalize.Money(row[ColFare]),
			BoardingTax: normalize.Money(row[ColBoardingTax]),
			ServiceTax:  normalize.Money(row[ColServiceTax]),
			Total:       normalize.Money(row[ColTotal]),
		}
		if hasExtraTax {
			record.ExtraTax = normalize.Money(row[ColExtraTax])
		}
		if hasAverage {
			record.AverageValue = normalize.Money(row[ColAverageValue])
		}

		records = append(records, record)
	}

	slog.Info("supplier ledger loaded",
		"file", path,
		"rows", len(sheet.Rows),
		"entries", len(records))

	return records, nil
}
