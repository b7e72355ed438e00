package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmtravel/ticket-report-generator/internal/types"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ticket builds a minimal record for aggregation tests.
func ticket(company, supplier, route, requester string, fare, tax, total float64) types.TicketRecord {
	return types.TicketRecord{
		CompanyName: company,
		CostCenter:  types.ToBeDefined,
		Supplier:    supplier,
		Route:       route,
		Requester:   requester,
		Fare:        fare,
		BoardingTax: tax,
		Total:       total,
	}
}

func sampleRecords() []types.TicketRecord {
	return []types.TicketRecord{
		ticket("CompanyA", "G3", "GRU-GIG", "MARIA", 100.00, 10.00, 110.00),
		ticket("CompanyA", "G3", "GIG-GRU", "MARIA", 50.00, 5.00, 55.00),
		ticket("CompanyB", "LA", "GRU-GIG", "PEDRO", 200.00, 20.00, 220.00),
	}
}

func TestByCompany(t *testing.T) {
	rows := ByCompany(sampleRecords())
	require.Len(t, rows, 3)

	assert.Equal(t, "CompanyA", rows[0].Company)
	assert.InDelta(t, 165.00, rows[0].Total, 0.01)
	assert.InDelta(t, 42.86, rows[0].Percentage, 0.01)

	assert.Equal(t, "CompanyB", rows[1].Company)
	assert.InDelta(t, 220.00, rows[1].Total, 0.01)
	assert.InDelta(t, 57.14, rows[1].Percentage, 0.01)

	assert.Equal(t, TotalLabel, rows[2].Company)
	assert.InDelta(t, 385.00, rows[2].Total, 0.01)
	assert.InDelta(t, 100.0, rows[2].Percentage, 0.01)
}

func TestByCompanyPercentagesSumToHundred(t *testing.T) {
	rows := ByCompany(sampleRecords())

	var sum float64
	for _, row := range rows[:len(rows)-1] {
		sum += row.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestByCompanyEmptySet(t *testing.T) {
	rows := ByCompany(nil)
	require.Len(t, rows, 1)
	assert.Equal(t, TotalLabel, rows[0].Company)
	assert.InDelta(t, 0.0, rows[0].Total, 0.01)
	assert.InDelta(t, 0.0, rows[0].Percentage, 0.01)
}

func TestByCostCenter(t *testing.T) {
	records := sampleRecords()
	records[2].CostCenter = "VENDAS"

	rows := ByCostCenter(records)
	require.Len(t, rows, 3)

	assert.Equal(t, types.ToBeDefined, rows[0].CostCenter)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 165.00, rows[0].Total, 0.01)

	assert.Equal(t, "VENDAS", rows[1].CostCenter)
	assert.Equal(t, 1, rows[1].Count)

	assert.Equal(t, TotalLabel, rows[2].CostCenter)
	assert.Equal(t, 3, rows[2].Count)
	assert.InDelta(t, 385.00, rows[2].Total, 0.01)
}

func TestByAirline(t *testing.T) {
	rows := ByAirline(sampleRecords())
	require.Len(t, rows, 3)

	g3 := rows[0]
	assert.Equal(t, "G3", g3.Supplier)
	assert.Equal(t, 2, g3.Count)
	assert.InDelta(t, 150.00, g3.FareSum, 0.01)
	assert.InDelta(t, 15.00, g3.TaxSum, 0.01)
	assert.InDelta(t, 165.00, g3.TotalSum, 0.01)
	// Average ticket is fare-based, taxes never enter it.
	assert.InDelta(t, 75.00, g3.AverageTicket, 0.01)

	total := rows[2]
	assert.Equal(t, TotalLabel, total.Supplier)
	assert.Equal(t, 3, total.Count)
	assert.InDelta(t, 350.00, total.FareSum, 0.01)
	assert.InDelta(t, 350.0/3.0, total.AverageTicket, 0.01)
	assert.InDelta(t, 100.0, total.Percentage, 0.01)
}

func TestByAirlineFirstAppearanceOrder(t *testing.T) {
	records := []types.TicketRecord{
		ticket("C", "LA", "X", "R", 1, 0, 1),
		ticket("C", "AD", "X", "R", 1, 0, 1),
		ticket("C", "LA", "X", "R", 1, 0, 1),
		ticket("C", "G3", "X", "R", 1, 0, 1),
	}

	rows := ByAirline(records)
	require.Len(t, rows, 4)
	assert.Equal(t, "LA", rows[0].Supplier)
	assert.Equal(t, "AD", rows[1].Supplier)
	assert.Equal(t, "G3", rows[2].Supplier)
}

func TestByAirlineRoute(t *testing.T) {
	rows := ByAirlineRoute(sampleRecords())
	require.Len(t, rows, 4)

	assert.Equal(t, "G3", rows[0].Supplier)
	assert.Equal(t, "GRU-GIG", rows[0].Route)
	assert.Equal(t, 1, rows[0].Count)

	assert.Equal(t, "G3", rows[1].Supplier)
	assert.Equal(t, "GIG-GRU", rows[1].Route)

	assert.Equal(t, "LA", rows[2].Supplier)
	assert.Equal(t, "GRU-GIG", rows[2].Route)

	total := rows[3]
	assert.Equal(t, TotalLabel, total.Supplier)
	assert.Equal(t, 3, total.Count)
	assert.InDelta(t, 385.00, total.TotalSum, 0.01)
}

func TestByRequester(t *testing.T) {
	rows := ByRequester(sampleRecords())
	require.Len(t, rows, 3)

	assert.Equal(t, "MARIA", rows[0].Requester)
	assert.InDelta(t, 165.00, rows[0].Total, 0.01)
	assert.Equal(t, "PEDRO", rows[1].Requester)
	assert.InDelta(t, 220.00, rows[1].Total, 0.01)
	assert.Equal(t, TotalLabel, rows[2].Requester)
	assert.InDelta(t, 385.00, rows[2].Total, 0.01)
}

func TestIssuanceSummary(t *testing.T) {
	rows := IssuanceSummary(sampleRecords())
	require.Len(t, rows, 3)

	issued := rows[0]
	assert.Equal(t, IssuedLabel, issued.Category)
	assert.Equal(t, 3, issued.Count)
	assert.InDelta(t, 350.00, issued.FareSum, 0.01)
	assert.InDelta(t, 35.00, issued.TaxSum, 0.01)
	assert.InDelta(t, 385.00, issued.TotalSum, 0.01)
	assert.InDelta(t, 100.0, issued.Percentage, 0.01)

	reissued := rows[1]
	assert.Equal(t, ReissuedLabel, reissued.Category)
	assert.Equal(t, 0, reissued.Count)
	assert.InDelta(t, 0.0, reissued.TotalSum, 0.01)

	total := rows[2]
	assert.Equal(t, TotalLabel, total.Category)
	assert.InDelta(t, 385.00, total.TotalSum, 0.01)
}

func TestFareByMonth(t *testing.T) {
	records := sampleRecords()
	records[0].IssuanceDate = date(2024, time.March, 25)
	records[1].IssuanceDate = date(2024, time.April, 2)
	records[2].IssuanceDate = date(2024, time.March, 10)

	pivot := FareByMonth(records)
	require.Equal(t, []string{"03/2024", "04/2024"}, pivot.Months)
	require.Len(t, pivot.Rows, 2)

	g3 := pivot.Rows[0]
	assert.Equal(t, "G3", g3.Supplier)
	assert.InDelta(t, 100.00, g3.Values[0], 0.01)
	assert.InDelta(t, 50.00, g3.Values[1], 0.01)
	assert.InDelta(t, 150.00, g3.RowTotal, 0.01)

	la := pivot.Rows[1]
	assert.Equal(t, "LA", la.Supplier)
	assert.InDelta(t, 200.00, la.Values[0], 0.01)
	assert.InDelta(t, 0.0, la.Values[1], 0.01)

	assert.InDelta(t, 300.00, pivot.ColumnTotals[0], 0.01)
	assert.InDelta(t, 50.00, pivot.ColumnTotals[1], 0.01)
	assert.InDelta(t, 350.00, pivot.GrandTotal, 0.01)
}

func TestFareByMonthMissingDates(t *testing.T) {
	records := sampleRecords()
	records[0].IssuanceDate = date(2024, time.March, 25)

	pivot := FareByMonth(records)
	require.Len(t, pivot.Months, 2)
	assert.Equal(t, "03/2024", pivot.Months[0])
	assert.Equal(t, "Sem Mês", pivot.Months[1])
	assert.InDelta(t, 250.00, pivot.ColumnTotals[1], 0.01)
}

func TestAvailableCreditsPlaceholder(t *testing.T) {
	assert.Empty(t, AvailableCredits(sampleRecords()))
}
