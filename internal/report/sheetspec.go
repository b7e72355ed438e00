// =============================================================================
// Travel Ticket Report Generator - Sheet Specifications
// =============================================================================
//
// SheetSpec is the boundary between the aggregation pipeline and the
// document renderer. Assembly produces pure data: an ordered header row,
// ordered data rows, an optional total row, and for the airline sheet an
// extra pivot block plus chart descriptors. No styling and no I/O happen
// on this side of the boundary.
//
// Cell values are untyped (string, int, float64, *time.Time); the renderer
// picks number formats and alignment from the dynamic type.
//
// =============================================================================

package report

import "fmt"

// ChartKind selects the chart shape the renderer draws.
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// SheetSpec describes one output sheet as plain tabular data.
type SheetSpec struct {
	// Name is the sheet tab name.
	Name string

	// Header is the bold first row.
	Header []string

	// Rows are the data rows, written starting at row 2.
	Rows [][]any

	// TotalRow is the highlighted trailing row, or nil when the sheet
	// has none.
	TotalRow []any

	// Pivot is the secondary cross-tabulation block, or nil.
	Pivot *PivotBlock

	// Charts are the chart descriptors anchored on this sheet.
	Charts []ChartSpec
}

// PivotBlock is a second table placed below the main one.
type PivotBlock struct {
	// StartRow is the 1-based row of the pivot header.
	StartRow int

	// Header is the pivot header row.
	Header []string

	// Rows are the pivot data rows, written from StartRow+1.
	Rows [][]any
}

// ChartSpec describes one chart in renderer-neutral terms. All references
// are full spreadsheet range formulas into the owning sheet.
type ChartSpec struct {
	Kind       ChartKind
	Title      string
	Anchor     string
	XAxisTitle string
	YAxisTitle string
	Series     []SeriesSpec
}

// SeriesSpec is one chart data series.
type SeriesSpec struct {
	// Name is a cell reference or literal series title.
	Name string

	// Categories references the category axis cells.
	Categories string

	// Values references the series value cells.
	Values string
}

// rangeRef builds an absolute single-column range formula.
func rangeRef(sheet, col string, fromRow, toRow int) string {
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, col, fromRow, col, toRow)
}

// cellRef builds an absolute single-cell formula.
func cellRef(sheet, col string, row int) string {
	return fmt.Sprintf("'%s'!$%s$%d", sheet, col, row)
}
