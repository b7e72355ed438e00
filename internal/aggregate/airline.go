// =============================================================================
// Travel Ticket Report Generator - By-Airline View
// =============================================================================
//
// The richest of the aggregate views: per-airline counts, fare/tax/total
// sums, the fare-based average ticket value and the percentage of the grand
// total, plus a secondary cross-tabulation of fare sums by airline and
// issuance month that feeds the report charts.
//
// =============================================================================

package aggregate

import (
	"github.com/gmtravel/ticket-report-generator/internal/normalize"
	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// AirlineRow is one row of the by-airline view.
type AirlineRow struct {
	Supplier      string
	Count         int
	FareSum       float64
	TaxSum        float64
	TotalSum      float64
	AverageTicket float64
	Percentage    float64
}

// ByAirline aggregates tickets per supplier. The average ticket value of
// the trailing TOTAL row is the grand fare sum over the grand count.
func ByAirline(records []types.TicketRecord) []AirlineRow {
	order, buckets := groupBy(records, func(r types.TicketRecord) string {
		return r.Supplier
	})

	var grandTotal, grandFare float64
	for _, r := range records {
		grandTotal += r.Total
		grandFare += r.Fare
	}

	rows := make([]AirlineRow, 0, len(order)+1)
	for _, key := range order {
		row := AirlineRow{Supplier: key, Count: len(buckets[key])}
		for _, r := range buckets[key] {
			row.FareSum += r.Fare
			row.TaxSum += r.Taxes()
			row.TotalSum += r.Total
		}
		row.AverageTicket = averageTicket(row.FareSum, row.Count)
		row.Percentage = percentage(row.TotalSum, grandTotal)
		rows = append(rows, row)
	}

	rows = append(rows, AirlineRow{
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

// sumTaxes totals boarding plus service taxes across the record set.
func sumTaxes(records []types.TicketRecord) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Taxes()
	}
	return sum
}

// =============================================================================
// FARE PIVOT (airline x issuance month)
// =============================================================================

// FarePivot cross-tabulates fare sums by supplier and issuance month.
// Suppliers and months both keep first-appearance order. Tickets without a
// parsable issuance date land in the "Sem Mês" column.
type FarePivot struct {
	// Months are the "MM/YYYY" column labels in first-appearance order.
	Months []string

	// Rows hold one fare-sum slice per supplier, aligned with Months.
	Rows []FarePivotRow

	// ColumnTotals are the per-month fare sums across all suppliers,
	// aligned with Months.
	ColumnTotals []float64

	// GrandTotal is the fare sum over the whole record set.
	GrandTotal float64
}

// FarePivotRow is one supplier line of the fare pivot.
type FarePivotRow struct {
	Supplier string
	Values   []float64
	RowTotal float64
}

// FareByMonth builds the airline-by-month fare cross-tabulation.
func FareByMonth(records []types.TicketRecord) *FarePivot {
	supplierOrder, _ := groupBy(records, func(r types.TicketRecord) string {
		return r.Supplier
	})
	monthOrder, _ := groupBy(records, func(r types.TicketRecord) string {
		return normalize.MonthLabel(r.IssuanceDate)
	})

	monthIndex := make(map[string]int, len(monthOrder))
	for i, m := range monthOrder {
		monthIndex[m] = i
	}

	cells := make(map[string][]float64, len(supplierOrder))
	for _, s := range supplierOrder {
		cells[s] = make([]float64, len(monthOrder))
	}

	pivot := &FarePivot{
		Months:       monthOrder,
		ColumnTotals: make([]float64, len(monthOrder)),
	}
	for _, r := range records {
		col := monthIndex[normalize.MonthLabel(r.IssuanceDate)]
		cells[r.Supplier][col] += r.Fare
		pivot.ColumnTotals[col] += r.Fare
		pivot.GrandTotal += r.Fare
	}

	for _, s := range supplierOrder {
		row := FarePivotRow{Supplier: s, Values: cells[s]}
		for _, v := range row.Values {
			row.RowTotal += v
		}
		pivot.Rows = append(pivot.Rows, row)
	}

	return pivot
}
