package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmtravel/ticket-report-generator/internal/types"
)

func sampleRecords() []types.TicketRecord {
	march := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	return []types.TicketRecord{
		{
			CompanyName: "CompanyA", TaxID: "1", CostCenter: "TI",
			Supplier: "G3", Route: "GRU-GIG", Requester: "MARIA",
			Passenger: "JOAO", Locator: "ABC123",
			Fare: 100, BoardingTax: 8, ServiceTax: 2, Total: 110,
			IssuanceDate: &march,
		},
		{
			CompanyName: "CompanyA", TaxID: "1", CostCenter: "TI",
			Supplier: "G3", Route: "GIG-GRU", Requester: "MARIA",
			Passenger: "ANA", Locator: "DEF456",
			Fare: 50, BoardingTax: 4, ServiceTax: 1, Total: 55,
			IssuanceDate: &april,
		},
		{
			CompanyName: "CompanyB", TaxID: "2", CostCenter: "VENDAS",
			Supplier: "LA", Route: "GRU-GIG", Requester: "PEDRO",
			Passenger: "LUIS", Locator: "GHI789",
			Fare: 200, BoardingTax: 15, ServiceTax: 5, Total: 220,
			IssuanceDate: &march,
		},
	}
}

func TestAssembleSheetOrder(t *testing.T) {
	sheets := Assemble(sampleRecords())
	require.Len(t, sheets, 8)

	expected := []string{
		SheetListing, SheetIssuance, SheetCompany, SheetCostCenter,
		SheetAirline, SheetRoute, SheetRequester, SheetCredits,
	}
	for i, name := range expected {
		assert.Equal(t, name, sheets[i].Name)
	}
}

func TestAssembleListing(t *testing.T) {
	spec := Assemble(sampleRecords())[0]

	require.Len(t, spec.Header, 15)
	require.Len(t, spec.Rows, 3)
	assert.Equal(t, "CompanyA", spec.Rows[0][0])
	assert.Equal(t, "ABC123", spec.Rows[0][10])

	require.NotNil(t, spec.TotalRow)
	assert.Equal(t, "Total Geral", spec.TotalRow[0])
	assert.InDelta(t, 350.0, spec.TotalRow[4].(float64), 0.01)
	assert.InDelta(t, 385.0, spec.TotalRow[7].(float64), 0.01)
}

func TestAssembleListingEmpty(t *testing.T) {
	spec := assembleListing(nil)
	assert.Empty(t, spec.Rows)
	assert.Nil(t, spec.TotalRow)
}

func TestAssembleIssuance(t *testing.T) {
	spec := Assemble(sampleRecords())[1]

	require.Len(t, spec.Rows, 2)
	assert.Equal(t, "EMISSÃO", spec.Rows[0][0])
	assert.Equal(t, "REMISSAO", spec.Rows[1][0])
	assert.Equal(t, "TOTAL", spec.TotalRow[0])
	assert.InDelta(t, 385.0, spec.TotalRow[4].(float64), 0.01)
}

func TestAssembleAirlinePivotLayout(t *testing.T) {
	spec := Assemble(sampleRecords())[4]

	// Two airlines: data rows 2..3, total row 4, pivot header at row 7.
	require.Len(t, spec.Rows, 2)
	require.NotNil(t, spec.Pivot)
	assert.Equal(t, 7, spec.Pivot.StartRow)
	assert.Equal(t, []string{"Fornecedor", "03/2024", "04/2024"}, spec.Pivot.Header)
	require.Len(t, spec.Pivot.Rows, 2)
	assert.Equal(t, "G3", spec.Pivot.Rows[0][0])
	assert.InDelta(t, 100.0, spec.Pivot.Rows[0][1].(float64), 0.01)
}

func TestAssembleAirlineCharts(t *testing.T) {
	spec := Assemble(sampleRecords())[4]

	require.Len(t, spec.Charts, 2)

	bar := spec.Charts[0]
	assert.Equal(t, ChartBar, bar.Kind)
	// Pivot data rows 8..9, so charts anchor two rows below at row 11.
	assert.Equal(t, "B11", bar.Anchor)
	require.Len(t, bar.Series, 2)
	assert.Equal(t, "'TOTAL POR CIA AEREA'!$B$7", bar.Series[0].Name)
	assert.Equal(t, "'TOTAL POR CIA AEREA'!$A$8:$A$9", bar.Series[0].Categories)
	assert.Equal(t, "'TOTAL POR CIA AEREA'!$B$8:$B$9", bar.Series[0].Values)

	pie := spec.Charts[1]
	assert.Equal(t, ChartPie, pie.Kind)
	assert.Equal(t, "F11", pie.Anchor)
	require.Len(t, pie.Series, 1)
	// Percentage column over the data rows only; the total row stays out.
	assert.Equal(t, "'TOTAL POR CIA AEREA'!$G$2:$G$3", pie.Series[0].Values)
	assert.Equal(t, "'TOTAL POR CIA AEREA'!$A$2:$A$3", pie.Series[0].Categories)
}

func TestAssembleAirlineNoRecords(t *testing.T) {
	spec := assembleAirline(nil)
	assert.Nil(t, spec.Pivot)
	assert.Empty(t, spec.Charts)
	require.NotNil(t, spec.TotalRow)
}

func TestAssembleRouteTotalRow(t *testing.T) {
	spec := Assemble(sampleRecords())[5]

	require.Len(t, spec.Rows, 3)
	assert.Equal(t, "TOTAL", spec.TotalRow[0])
	assert.Equal(t, "", spec.TotalRow[1])
	assert.InDelta(t, 385.0, spec.TotalRow[5].(float64), 0.01)
}

func TestAssembleCreditsHeaderOnly(t *testing.T) {
	spec := Assemble(sampleRecords())[7]
	require.Len(t, spec.Header, 7)
	assert.Empty(t, spec.Rows)
	assert.Nil(t, spec.TotalRow)
}
