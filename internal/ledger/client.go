// =============================================================================
// Travel Ticket Report Generator - Client Ledger Loader
// =============================================================================
//
// Loads the client-side ledger export: one row per issued ticket, headed by
// the agency system's Portuguese column names. This loader
//   - validates every required column up front, reporting all misses at once
//   - drops the export's own summary rows ("Total" / "Subtotal")
//   - normalizes monetary and date cells
//   - applies the fixed placeholders for missing tax IDs, cost centers and
//     locators
//
// The column names are part of the agency export contract and must match
// the header row byte for byte.
//
// =============================================================================

package ledger

import (
	"log/slog"
	"strings"

	"github.com/gmtravel/ticket-report-generator/internal/normalize"
	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// =============================================================================
// COLUMN CONTRACT
// =============================================================================

// Client ledger column names, exactly as the agency system exports them.
const (
	ColCompanyName = "Razão Social"
	ColTaxID       = "cnpj"
	ColCostCenter  = "Centro de Custo"
	ColSupplier    = "Fornecedor"
	ColFare        = "Tarifas"
	ColBoardingTax = "Tx.Embq."
	ColServiceTax  = "Tx.Serviço"
	ColTotal       = "Total"
	ColPassenger   = "Passageiro"
	ColRequester   = "Solicitante"
	ColLocator     = "Documento"
	ColRoute       = "Trecho"
	ColIssuance    = "Emissão"
	ColDeparture   = "IDA"
	ColReturn      = "VOLTA"
)

// clientRequiredColumns lists every column the client loader reads.
var clientRequiredColumns = []string{
	ColCompanyName,
	ColTaxID,
	ColCostCenter,
	ColSupplier,
	ColFare,
	ColBoardingTax,
	ColServiceTax,
	ColTotal,
	ColPassenger,
	ColRequester,
	ColLocator,
	ColRoute,
	ColIssuance,
	ColDeparture,
	ColReturn,
}

// =============================================================================
// LOADER
// =============================================================================

// LoadClient reads and normalizes the client ledger file.
//
// PARAMETERS:
//   - path: the client ledger XLSX file
//
// RETURNS:
//   - the cleaned ticket records, in file order
//   - *FileAccessError, *MissingColumnsError or *LoadError on failure
//
// Summary rows embedded by the export (company or route containing "total"
// or "subtotal") are filtered out so they never double-count against the
// computed aggregations.
func LoadClient(path string) ([]types.TicketRecord, error) {
	sheet, err := ReadSheet(path)
	if err != nil {
		return nil, err
	}

	if missing := sheet.MissingColumns(clientRequiredColumns); len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	records := make([]types.TicketRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		company := strings.TrimSpace(row[ColCompanyName])
		route := strings.TrimSpace(row[ColRoute])

		if isSummaryRow(company) || isSummaryRow(route) {
			continue
		}
		if company == "" {
			continue
		}

		records = append(records, types.TicketRecord{
			CompanyName:   company,
			TaxID:         orSentinel(row[ColTaxID], types.NotInformed),
			CostCenter:    orSentinel(row[ColCostCenter], types.ToBeDefined),
			Supplier:      strings.TrimSpace(row[ColSupplier]),
			Fare:          normalize.Money(row[ColFare]),
			BoardingTax:   normalize.Money(row[ColBoardingTax]),
			ServiceTax:    normalize.Money(row[ColServiceTax]),
			Total:         normalize.Money(row[ColTotal]),
			Passenger:     strings.TrimSpace(row[ColPassenger]),
			Requester:     strings.TrimSpace(row[ColRequester]),
			Locator:       orSentinel(row[ColLocator], types.NotInformed),
			Route:         route,
			IssuanceDate:  normalize.Date(row[ColIssuance]),
			DepartureDate: normalize.Date(row[ColDeparture]),
			ReturnDate:    normalize.Date(row[ColReturn]),
		})
	}

	slog.Info("client ledger loaded",
		"file", path,
		"rows", len(sheet.Rows),
		"tickets", len(records))

	return records, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isSummaryRow detects the export's embedded total/subtotal rows.
func isSummaryRow(value string) bool {
	v := strings.ToLower(value)
	return strings.Contains(v, "total") || strings.Contains(v, "subtotal")
}

// orSentinel trims the value and substitutes the placeholder when empty.
func orSentinel(value, sentinel string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return sentinel
	}
	return v
}
