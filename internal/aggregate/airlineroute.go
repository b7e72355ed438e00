// =============================================================================
// Travel Ticket Report Generator - By-Airline-and-Route View
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// AirlineRouteRow is one row of the by-airline-and-route view.
type AirlineRouteRow struct {
	Supplier      string
	Route         string
	Count         int
	FareSum       float64
	TaxSum        float64
	TotalSum      float64
	AverageTicket float64
	Percentage    float64
}

// routeKey is the composite grouping key for ByAirlineRoute.
type routeKey struct {
	supplier string
	route    string
}

// ByAirlineRoute aggregates tickets per (supplier, route) pair with the
// same measure set as ByAirline.
func ByAirlineRoute(records []types.TicketRecord) []AirlineRouteRow {
	order, buckets := groupBy(records, func(r types.TicketRecord) routeKey {
		return routeKey{supplier: r.Supplier, route: r.Route}
	})

	var grandTotal, grandFare float64
	for _, r := range records {
		grandTotal += r.Total
		grandFare += r.Fare
	}

	rows := make([]AirlineRouteRow, 0, len(order)+1)
	for _, key := range order {
		row := AirlineRouteRow{
			Supplier: key.supplier,
			Route:    key.route,
			Count:    len(buckets[key]),
		}
		for _, r := range buckets[key] {
			row.FareSum += r.Fare
			row.TaxSum += r.Taxes()
			row.TotalSum += r.Total
		}
		row.AverageTicket = averageTicket(row.FareSum, row.Count)
		row.Percentage = percentage(row.TotalSum, grandTotal)
		rows = append(rows, row)
	}

	rows = append(rows, AirlineRouteRow{
		Supplier:      TotalLabel,
		Count:         len(records),
		FareSum:       grandFare,
		TaxSum:        sumTaxes(records),
		TotalSum:      grandTotal,
		AverageTicket: averageTicket(grandFare, len(records)),
		Percentage:    percentage(grandTotal, grandTotal),
	})
	return rows
}
