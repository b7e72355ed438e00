// =============================================================================
// Travel Ticket Report Generator - By-Cost-Center View
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// CostCenterRow is one row of the by-cost-center view.
type CostCenterRow struct {
	CostCenter string
	Count      int
	Total      float64
	Percentage float64
}

// ByCostCenter counts tickets and sums totals per cost center. The loader
// already substitutes "A DEFINIR" for blank cost centers, so that bucket
// appears here like any other.
func ByCostCenter(records []types.TicketRecord) []CostCenterRow {
	order, buckets := groupBy(records, func(r types.TicketRecord) string {
		return r.CostCenter
	})

	var grand float64
	for _, bucket := range buckets {
		for _, r := range bucket {
			grand += r.Total
		}
	}

	rows := make([]CostCenterRow, 0, len(order)+1)
	for _, key := range order {
		var sum float64
		for _, r := range buckets[key] {
			sum += r.Total
		}
		rows = append(rows, CostCenterRow{
			CostCenter: key,
			Count:      len(buckets[key]),
			Total:      sum,
			Percentage: percentage(sum, grand),
		})
	}
	rows = append(rows, CostCenterRow{
		CostCenter: TotalLabel,
		Count:      len(records),
		Total:      grand,
		Percentage: percentage(grand, grand),
	})
	return rows
}
