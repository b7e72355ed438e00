// =============================================================================
// Travel Ticket Report Generator - By-Company View
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// CompanyRow is one row of the by-company view.
type CompanyRow struct {
	Company    string
	Total      float64
	Percentage float64
}

// ByCompany sums ticket totals per contracting company. Rows follow the
// first-appearance order of the companies, and the trailing TOTAL row
// carries the grand sum with a fixed 100%.
func ByCompany(records []types.TicketRecord) []CompanyRow {
	order, buckets := groupBy(records, func(r types.TicketRecord) string {
		return r.CompanyName
	})

	var grand float64
	sums := make(map[string]float64, len(order))
	for key, bucket := range buckets {
		for _, r := range bucket {
			sums[key] += r.Total
		}
		grand += sums[key]
	}

	rows := make([]CompanyRow, 0, len(order)+1)
	for _, key := range order {
		rows = append(rows, CompanyRow{
			Company:    key,
			Total:      sums[key],
			Percentage: percentage(sums[key], grand),
		})
	}
	rows = append(rows, CompanyRow{
		Company:    TotalLabel,
		Total:      grand,
		Percentage: percentage(grand, grand),
	})
	return rows
}
