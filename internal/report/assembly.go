// =============================================================================
// Travel Ticket Report Generator - Report Assembly
// =============================================================================
//
// Maps the aggregate views onto the eight output sheets of the billing
// report, in their fixed order:
//
//   1. EMISSOES                    flat ticket listing
//   2. EMISSÃO E REEMISSAO         issuance summary
//   3. TOTAL POR EMPRESAS          by company
//   4. TOTAL POR CENTRO DE CUSTO   by cost center
//   5. TOTAL POR CIA AEREA         by airline, plus fare pivot and charts
//   6. TOTAL POR CIA E TRECHO      by airline and route
//   7. TOTAL POR SOLICITANTE       by requester
//   8. TOTAL CREDITOS DISPONIVEIS  available credits placeholder
//
// Header texts and sheet names are the billing template's own and must not
// be reworded.
//
// =============================================================================

package report

import (
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/gmtravel/ticket-report-generator/internal/aggregate"
	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// Sheet tab names, in output order.
const (
	SheetListing    = "EMISSOES"
	SheetIssuance   = "EMISSÃO E REEMISSAO"
	SheetCompany    = "TOTAL POR EMPRESAS"
	SheetCostCenter = "TOTAL POR CENTRO DE CUSTO"
	SheetAirline    = "TOTAL POR CIA AEREA"
	SheetRoute      = "TOTAL POR CIA E TRECHO"
	SheetRequester  = "TOTAL POR SOLICITANTE"
	SheetCredits    = "TOTAL CREDITOS DISPONIVEIS"
)

// Assemble turns the normalized record set into the eight sheet specs, in
// output order. The builders are independent pure functions over the same
// read-only record set, so they run concurrently.
func Assemble(records []types.TicketRecord) []SheetSpec {
	builders := []func([]types.TicketRecord) SheetSpec{
		assembleListing,
		assembleIssuance,
		assembleCompany,
		assembleCostCenter,
		assembleAirline,
		assembleRoute,
		assembleRequester,
		assembleCredits,
	}

	sheets := make([]SheetSpec, len(builders))
	var wg sync.WaitGroup
	for i, build := range builders {
		i, build := i, build
		wg.Add(1)
		go func() {
			defer wg.Done()
			sheets[i] = build(records)
		}()
	}
	wg.Wait()
	return sheets
}

// =============================================================================
// FLAT LISTING
// =============================================================================

func assembleListing(records []types.TicketRecord) SheetSpec {
	spec := SheetSpec{
		Name: SheetListing,
		Header: []string{
			"RAZAO SOC", "CNPJ", "CENTRO DE CUSTO", "CIA", "TARIFA",
			"TAXA DE EMBARQUE", "TAXA DE SERVIÇO", "TOTAL", "VIAJANTE",
			"SOLICITANTE", "LOCALIZADOR BILHETE", "TRECHO COMPL.",
			"DT. EMISSAO", "DT. PARTIDA", "DT. RETORNO",
		},
	}

	var fare, boarding, service, total float64
	for _, r := range records {
		spec.Rows = append(spec.Rows, []any{
			r.CompanyName, r.TaxID, r.CostCenter, r.Supplier,
			r.Fare, r.BoardingTax, r.ServiceTax, r.Total,
			r.Passenger, r.Requester, r.Locator, r.Route,
			r.IssuanceDate, r.DepartureDate, r.ReturnDate,
		})
		fare += r.Fare
		boarding += r.BoardingTax
		service += r.ServiceTax
		total += r.Total
	}

	if len(spec.Rows) > 0 {
		spec.TotalRow = []any{
			"Total Geral", "", "", "", fare, boarding, service, total,
			"", "", "", "", "", "", "",
		}
	}
	return spec
}

// =============================================================================
// ISSUANCE SUMMARY
// =============================================================================

func assembleIssuance(records []types.TicketRecord) SheetSpec {
	rows := aggregate.IssuanceSummary(records)

	spec := SheetSpec{
		Name: SheetIssuance,
		Header: []string{
			"EMISSÃO/REMISSÃO", "VALOR TARIFA", "VALOR TAXAS",
			"Total QUANTIDADE DE BILHETES", "Valor Total", "TICKET MÉDIO",
			"PERCENTUAL %",
		},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, issuanceCells(row))
	}
	spec.TotalRow = issuanceCells(rows[len(rows)-1])
	return spec
}

func issuanceCells(row aggregate.IssuanceRow) []any {
	return []any{
		row.Category, row.FareSum, row.TaxSum, row.Count,
		row.TotalSum, row.AverageTicket, row.Percentage,
	}
}

// =============================================================================
// BY COMPANY
// =============================================================================

func assembleCompany(records []types.TicketRecord) SheetSpec {
	rows := aggregate.ByCompany(records)

	spec := SheetSpec{
		Name:   SheetCompany,
		Header: []string{"EMPRESA", "TOTAL", "PERCENTUAL %"},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, []any{row.Company, row.Total, row.Percentage})
	}
	last := rows[len(rows)-1]
	spec.TotalRow = []any{last.Company, last.Total, last.Percentage}
	return spec
}

// =============================================================================
// BY COST CENTER
// =============================================================================

func assembleCostCenter(records []types.TicketRecord) SheetSpec {
	rows := aggregate.ByCostCenter(records)

	spec := SheetSpec{
		Name: SheetCostCenter,
		Header: []string{
			"CENTRO DE CUSTO", "QUANTIDADE DE BILHETE", "VALOR TOTAL",
			"PERCENTUAL %",
		},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, []any{
			row.CostCenter, row.Count, row.Total, row.Percentage,
		})
	}
	last := rows[len(rows)-1]
	spec.TotalRow = []any{last.CostCenter, last.Count, last.Total, last.Percentage}
	return spec
}

// =============================================================================
// BY AIRLINE, PIVOT AND CHARTS
// =============================================================================

func assembleAirline(records []types.TicketRecord) SheetSpec {
	rows := aggregate.ByAirline(records)

	spec := SheetSpec{
		Name: SheetAirline,
		Header: []string{
			"CIA NAC", "QUANTIDADE DE BILHETES", "VALOR DA TARIFA",
			"VALOR TAXAS", "Valor Total", "TICKET MÉDIO", "PERCENTUAL %",
		},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, airlineCells(row))
	}
	spec.TotalRow = airlineCells(rows[len(rows)-1])

	// Airline count excluding the trailing total row. Without at least one
	// airline there is nothing to pivot or chart.
	n := len(rows) - 1
	if n == 0 {
		return spec
	}

	pivot := aggregate.FareByMonth(records)
	spec.Pivot = buildPivotBlock(pivot, n)
	spec.Charts = buildAirlineCharts(pivot, spec.Pivot, n)
	return spec
}

func airlineCells(row aggregate.AirlineRow) []any {
	return []any{
		row.Supplier, row.Count, row.FareSum, row.TaxSum,
		row.TotalSum, row.AverageTicket, row.Percentage,
	}
}

// buildPivotBlock lays out the fare-by-month cross-tabulation four rows
// below the airline table (n airlines occupy rows 2..n+1 plus the total
// row at n+2).
func buildPivotBlock(pivot *aggregate.FarePivot, n int) *PivotBlock {
	block := &PivotBlock{
		StartRow: n + 1 + 4,
		Header:   append([]string{"Fornecedor"}, pivot.Months...),
	}
	for _, row := range pivot.Rows {
		cells := make([]any, 0, len(row.Values)+1)
		cells = append(cells, row.Supplier)
		for _, v := range row.Values {
			cells = append(cells, v)
		}
		block.Rows = append(block.Rows, cells)
	}
	return block
}

// buildAirlineCharts describes the two charts below the pivot: a bar chart
// of fares per airline and month, and a pie of each airline's percentage
// share taken from column G of the main table (data rows only, the total
// row stays out of the pie).
func buildAirlineCharts(pivot *aggregate.FarePivot, block *PivotBlock, n int) []ChartSpec {
	dataFrom := block.StartRow + 1
	dataTo := block.StartRow + len(block.Rows)
	anchorRow := dataTo + 2

	bar := ChartSpec{
		Kind:       ChartBar,
		Title:      "Tarifas por Companhia Aérea e Mês",
		Anchor:     "B" + strconv.Itoa(anchorRow),
		XAxisTitle: "Companhia Aérea",
		YAxisTitle: "Valor das Tarifas",
	}
	for i := range pivot.Months {
		col, _ := excelize.ColumnNumberToName(i + 2)
		bar.Series = append(bar.Series, SeriesSpec{
			Name:       cellRef(SheetAirline, col, block.StartRow),
			Categories: rangeRef(SheetAirline, "A", dataFrom, dataTo),
			Values:     rangeRef(SheetAirline, col, dataFrom, dataTo),
		})
	}

	pie := ChartSpec{
		Kind:   ChartPie,
		Title:  "Percentual por Companhia Aérea",
		Anchor: "F" + strconv.Itoa(anchorRow),
		Series: []SeriesSpec{{
			Categories: rangeRef(SheetAirline, "A", 2, n+1),
			Values:     rangeRef(SheetAirline, "G", 2, n+1),
		}},
	}

	return []ChartSpec{bar, pie}
}

// =============================================================================
// BY AIRLINE AND ROUTE
// =============================================================================

func assembleRoute(records []types.TicketRecord) SheetSpec {
	rows := aggregate.ByAirlineRoute(records)

	spec := SheetSpec{
		Name: SheetRoute,
		Header: []string{
			"CIA", "TRECHO", "QUANTIDADE DE BILHETES", "VALOR DA TARIFA",
			"VALOR DAS TAXAS", "VALOR TOTAL", "TICKET MÉDIO", "PERCENTUAL %",
		},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, routeCells(row))
	}
	spec.TotalRow = routeCells(rows[len(rows)-1])
	return spec
}

func routeCells(row aggregate.AirlineRouteRow) []any {
	return []any{
		row.Supplier, row.Route, row.Count, row.FareSum, row.TaxSum,
		row.TotalSum, row.AverageTicket, row.Percentage,
	}
}

// =============================================================================
// BY REQUESTER
// =============================================================================

func assembleRequester(records []types.TicketRecord) SheetSpec {
	rows := aggregate.ByRequester(records)

	spec := SheetSpec{
		Name:   SheetRequester,
		Header: []string{"SOLICITANTE", "VALOR TOTAL", "PERCENTUAL %"},
	}
	for _, row := range rows[:len(rows)-1] {
		spec.Rows = append(spec.Rows, []any{row.Requester, row.Total, row.Percentage})
	}
	last := rows[len(rows)-1]
	spec.TotalRow = []any{last.Requester, last.Total, last.Percentage}
	return spec
}

// =============================================================================
// AVAILABLE CREDITS
// =============================================================================

func assembleCredits(records []types.TicketRecord) SheetSpec {
	spec := SheetSpec{
		Name: SheetCredits,
		Header: []string{
			"PASSAGEIRO", "CIA", "LOCALIZADOR", "VALOR DA TARIFA",
			"VALOR TAXAS", "VALOR TOTAL", "DISPONIVEL",
		},
	}
	for _, row := range aggregate.AvailableCredits(records) {
		spec.Rows = append(spec.Rows, []any{
			row.Passenger, row.Supplier, row.Locator, "", "", "", "",
		})
	}
	return spec
}
