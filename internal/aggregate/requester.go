// =============================================================================
// Travel Ticket Report Generator - By-Requester View
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// RequesterRow is one row of the by-requester view.
type RequesterRow struct {
	Requester  string
	Total      float64
	Percentage float64
}

// ByRequester sums ticket totals per requesting employee.
func ByRequester(records []types.TicketRecord) []RequesterRow {
	order, buckets := groupBy(records, func(r types.TicketRecord) string {
		return r.Requester
	})

	var grand float64
	for _, r := range records {
		grand += r.Total
	}

	rows := make([]RequesterRow, 0, len(order)+1)
	for _, key := range order {
		var sum float64
		for _, r := range buckets[key] {
			sum += r.Total
		}
		rows = append(rows, RequesterRow{
			Requester:  key,
			Total:      sum,
			Percentage: percentage(sum, grand),
		})
	}
	rows = append(rows, RequesterRow{
		Requester:  TotalLabel,
		Total:      grand,
		Percentage: percentage(grand, grand),
	})
	return rows
}
