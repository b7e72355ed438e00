// =============================================================================
// Travel Ticket Report Generator - Issuance Summary View
// =============================================================================
//
// Fixed two-category breakdown of the ticket set by issuance status. The
// agency export carries no reissue marker today, so every ticket counts as
// a plain issuance and the reissue line stays zeroed. The line is kept in
// the output because the billing template expects it.
//
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// Issuance category labels, as the billing template spells them.
const (
	IssuedLabel   = "EMISSÃO"
	ReissuedLabel = "REMISSAO"
)

// IssuanceRow is one row of the issuance summary view.
type IssuanceRow struct {
	Category      string
	FareSum       float64
	TaxSum        float64
	Count         int
	TotalSum      float64
	AverageTicket float64
	Percentage    float64
}

// IssuanceSummary builds the fixed issued/reissued/total breakdown.
func IssuanceSummary(records []types.TicketRecord) []IssuanceRow {
	var fareSum, totalSum float64
	for _, r := range records {
		fareSum += r.Fare
		totalSum += r.Total
	}
	taxSum := sumTaxes(records)

	issued := IssuanceRow{
		Category:      IssuedLabel,
		FareSum:       fareSum,
		TaxSum:        taxSum,
		Count:         len(records),
		TotalSum:      totalSum,
		AverageTicket: averageTicket(fareSum, len(records)),
		Percentage:    percentage(totalSum, totalSum),
	}

	reissued := IssuanceRow{Category: ReissuedLabel}

	total := issued
	total.Category = TotalLabel

	return []IssuanceRow{issued, reissued, total}
}
