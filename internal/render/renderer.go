// =============================================================================
// Travel Ticket Report Generator - Document Renderer
// =============================================================================
//
// Turns the assembled sheet specs into a styled XLSX workbook. The renderer
// is the only module that knows about the spreadsheet container; everything
// above it works on plain tabular data.
//
// Per sheet it writes the header row, the data rows, the optional total
// row, the optional pivot block and any chart descriptors, then sizes each
// column to its longest cell.
//
// =============================================================================

package render

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gmtravel/ticket-report-generator/internal/report"
)

// Renderer writes report sheets into XLSX workbooks using one fixed
// style configuration.
type Renderer struct {
	styles StyleConfig
}

// NewRenderer creates a renderer with the given style configuration.
func NewRenderer(styles StyleConfig) *Renderer {
	return &Renderer{styles: styles}
}

// Render writes the sheets, in order, into a new workbook at outputPath.
//
// PARAMETERS:
//   - sheets: the assembled sheet specs, first one becomes the active tab
//   - outputPath: destination file, overwritten if present
//
// RETURNS:
//   - an error if any sheet, chart or the final save fails
func (r *Renderer) Render(sheets []report.SheetSpec, outputPath string) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to render")
	}

	f := excelize.NewFile()
	defer f.Close()

	set, err := buildStyles(f, r.styles)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	// The workbook opens with one default sheet; rename it for the first
	// sheet and create the rest.
	if err := f.SetSheetName(f.GetSheetName(0), sheets[0].Name); err != nil {
		return fmt.Errorf("failed to rename first sheet: %w", err)
	}
	for _, spec := range sheets[1:] {
		if _, err := f.NewSheet(spec.Name); err != nil {
			return fmt.Errorf("failed to create sheet '%s': %w", spec.Name, err)
		}
	}

	for _, spec := range sheets {
		if err := r.renderSheet(f, set, spec); err != nil {
			return fmt.Errorf("failed to render sheet '%s': %w", spec.Name, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// renderSheet writes one spec into its sheet.
func (r *Renderer) renderSheet(f *excelize.File, set *styleSet, spec report.SheetSpec) error {
	widths := newColumnWidths(len(spec.Header))

	if err := writeHeaderRow(f, spec.Name, 1, spec.Header, set.header, widths); err != nil {
		return err
	}

	row := 2
	for _, cells := range spec.Rows {
		if err := writeDataRow(f, spec.Name, row, cells, set, false, widths); err != nil {
			return err
		}
		row++
	}

	if spec.TotalRow != nil {
		if err := writeDataRow(f, spec.Name, row, spec.TotalRow, set, true, widths); err != nil {
			return err
		}
	}

	if spec.Pivot != nil {
		if err := r.renderPivot(f, set, spec.Name, spec.Pivot, widths); err != nil {
			return err
		}
	}

	for _, chart := range spec.Charts {
		if err := addChart(f, spec.Name, chart); err != nil {
			return err
		}
	}

	return widths.apply(f, spec.Name, r.styles.ColumnPadding)
}

// renderPivot writes the secondary cross-tabulation block.
func (r *Renderer) renderPivot(f *excelize.File, set *styleSet, sheet string, pivot *report.PivotBlock, widths *columnWidths) error {
	if err := writeHeaderRow(f, sheet, pivot.StartRow, pivot.Header, set.header, widths); err != nil {
		return err
	}
	for i, cells := range pivot.Rows {
		if err := writeDataRow(f, sheet, pivot.StartRow+1+i, cells, set, false, widths); err != nil {
			return err
		}
	}
	return nil
}

// writeHeaderRow writes a bold filled header row.
func writeHeaderRow(f *excelize.File, sheet string, row int, header []string, style int, widths *columnWidths) error {
	for col, value := range header {
		ref, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, ref, value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
			return err
		}
		widths.observe(col, value)
	}
	return nil
}

// writeDataRow writes one row, picking the style per cell from the cell's
// dynamic type. Nil date pointers leave the cell empty but still bordered.
func writeDataRow(f *excelize.File, sheet string, row int, cells []any, set *styleSet, total bool, widths *columnWidths) error {
	textStyle, moneyStyle := set.text, set.money
	if total {
		textStyle, moneyStyle = set.totalText, set.totalMoney
	}

	for col, value := range cells {
		ref, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}

		style := textStyle
		switch v := value.(type) {
		case float64:
			style = moneyStyle
			err = f.SetCellFloat(sheet, ref, v, 2, 64)
		case int:
			style = moneyStyle
			err = f.SetCellInt(sheet, ref, v)
		case *time.Time:
			style = set.date
			if v != nil {
				err = f.SetCellValue(sheet, ref, *v)
			}
		default:
			err = f.SetCellValue(sheet, ref, value)
		}
		if err != nil {
			return err
		}

		if err := f.SetCellStyle(sheet, ref, ref, style); err != nil {
			return err
		}
		widths.observe(col, value)
	}
	return nil
}

// addChart translates a chart descriptor into the workbook.
func addChart(f *excelize.File, sheet string, spec report.ChartSpec) error {
	chart := &excelize.Chart{
		Title:     []excelize.RichTextRun{{Text: spec.Title}},
		Dimension: excelize.ChartDimension{Width: 480, Height: 290},
	}

	switch spec.Kind {
	case report.ChartBar:
		chart.Type = excelize.Col
	case report.ChartPie:
		chart.Type = excelize.Pie
	default:
		return fmt.Errorf("unknown chart kind '%s'", spec.Kind)
	}

	if spec.XAxisTitle != "" {
		chart.XAxis = excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: spec.XAxisTitle}},
		}
	}
	if spec.YAxisTitle != "" {
		chart.YAxis = excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: spec.YAxisTitle}},
		}
	}

	for _, s := range spec.Series {
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       s.Name,
			Categories: s.Categories,
			Values:     s.Values,
		})
	}

	return f.AddChart(sheet, spec.Anchor, chart)
}

// =============================================================================
// COLUMN WIDTHS
// =============================================================================

// columnWidths tracks the longest rendered length per column so the sheet
// can be sized after all rows are written.
type columnWidths struct {
	max []int
}

func newColumnWidths(columns int) *columnWidths {
	return &columnWidths{max: make([]int, columns)}
}

// observe records the display length of one cell.
func (w *columnWidths) observe(col int, value any) {
	for col >= len(w.max) {
		w.max = append(w.max, 0)
	}

	var text string
	switch v := value.(type) {
	case string:
		text = v
	case float64:
		text = fmt.Sprintf("%.2f", v)
	case int:
		text = fmt.Sprintf("%d", v)
	case *time.Time:
		if v != nil {
			text = v.Format("02/01/2006")
		}
	default:
		text = fmt.Sprint(value)
	}

	if len(text) > w.max[col] {
		w.max[col] = len(text)
	}
}

// apply sets every observed column to its longest cell plus padding.
func (w *columnWidths) apply(f *excelize.File, sheet string, padding float64) error {
	for col, length := range w.max {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(length)+padding); err != nil {
			return err
		}
	}
	return nil
}
