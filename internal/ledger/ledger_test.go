package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// writeWorkbook creates a one-sheet XLSX fixture from string rows.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, ref, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

var clientHeader = []string{
	"Razão Social", "cnpj", "Centro de Custo", "Fornecedor",
	"Tarifas", "Tx.Embq.", "Tx.Serviço", "Total",
	"Passageiro", "Solicitante", "Documento", "Trecho",
	"Emissão", "IDA", "VOLTA",
}

func TestLoadClient(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		clientHeader,
		{"ACME LTDA", "11.222.333/0001-44", "TI", "G3",
			"R$ 110,00", "R$ 30,00", "R$ 10,00", "R$ 150,00",
			"JOAO SILVA", "MARIA", "ABC123", "GRU-GIG",
			"25/03/2024", "26/03/2024", "28/03/2024"},
		{"ACME LTDA", "", "", "LA",
			"55,00", "15,00", "5,00", "75,00",
			"ANA LIMA", "MARIA", "", "GIG-GRU",
			"26/03/2024", "", ""},
		{"Total Geral", "", "", "",
			"165,00", "45,00", "15,00", "225,00",
			"", "", "", "", "", "", ""},
	})

	records, err := LoadClient(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "ACME LTDA", first.CompanyName)
	assert.Equal(t, "11.222.333/0001-44", first.TaxID)
	assert.Equal(t, "TI", first.CostCenter)
	assert.Equal(t, "G3", first.Supplier)
	assert.InDelta(t, 110.0, first.Fare, 0.01)
	assert.InDelta(t, 40.0, first.Taxes(), 0.01)
	assert.InDelta(t, 150.0, first.Total, 0.01)
	require.NotNil(t, first.IssuanceDate)
	assert.Equal(t, "25/03/2024", first.IssuanceDate.Format("02/01/2006"))

	second := records[1]
	assert.Equal(t, types.NotInformed, second.TaxID)
	assert.Equal(t, types.ToBeDefined, second.CostCenter)
	assert.Equal(t, types.NotInformed, second.Locator)
	assert.Nil(t, second.DepartureDate)
	assert.Nil(t, second.ReturnDate)
}

func TestLoadClientFiltersSummaryRoutes(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		clientHeader,
		{"ACME LTDA", "1", "TI", "G3", "100,00", "0", "0", "100,00",
			"P", "R", "L", "Subtotal G3", "25/03/2024", "", ""},
		{"ACME LTDA", "1", "TI", "G3", "100,00", "0", "0", "100,00",
			"P", "R", "L", "GRU-GIG", "25/03/2024", "", ""},
	})

	records, err := LoadClient(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "GRU-GIG", records[0].Route)
}

func TestLoadClientMissingColumns(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Razão Social", "Fornecedor", "Tarifas"},
		{"ACME LTDA", "G3", "100,00"},
	})

	_, err := LoadClient(path)
	require.Error(t, err)

	var missErr *MissingColumnsError
	require.ErrorAs(t, err, &missErr)
	assert.Contains(t, missErr.Columns, "cnpj")
	assert.Contains(t, missErr.Columns, "Emissão")
	assert.NotContains(t, missErr.Columns, "Fornecedor")
	// Every missing column is reported in a single pass.
	assert.Len(t, missErr.Columns, 12)
}

func TestLoadClientFileAccess(t *testing.T) {
	_, err := LoadClient(filepath.Join(t.TempDir(), "absent.xlsx"))

	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
}

func TestLoadSupplier(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Fornecedor", "Tarifas", "Tx.Embq.", "Tx.Serviço", "Tx.Extra", "Total", "Valor Medio"},
		{"G3", "1.000,00", "200,00", "50,00", "10,00", "1.260,00", "420,00"},
		{"LA", "500,00", "100,00", "25,00", "", "625,00", ""},
		{"Total", "1.500,00", "300,00", "75,00", "10,00", "1.885,00", ""},
	})

	records, err := LoadSupplier(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "G3", records[0].Supplier)
	assert.InDelta(t, 1000.0, records[0].Fare, 0.01)
	assert.InDelta(t, 10.0, records[0].ExtraTax, 0.01)
	assert.InDelta(t, 420.0, records[0].AverageValue, 0.01)
	assert.InDelta(t, 0.0, records[1].ExtraTax, 0.01)
}

func TestLoadSupplierOptionalColumnsAbsent(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Fornecedor", "Tarifas", "Tx.Embq.", "Tx.Serviço", "Total"},
		{"AD", "300,00", "60,00", "15,00", "375,00"},
	})

	records, err := LoadSupplier(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 0.0, records[0].ExtraTax, 0.01)
	assert.InDelta(t, 0.0, records[0].AverageValue, 0.01)
}
