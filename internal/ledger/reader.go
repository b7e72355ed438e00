// =============================================================================
// Travel Ticket Report Generator - Spreadsheet Reader
// =============================================================================
//
// Low-level access to the agency export spreadsheets. The exports are plain
// XLSX workbooks whose first sheet carries a single header row followed by
// data rows. This module turns that layout into a column-addressable
// SheetData so the loaders above it can work by header name instead of
// cell coordinates.
//
// =============================================================================

package ledger

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// SHEET DATA STRUCTURE
// =============================================================================

// SheetData is the raw content of one ledger sheet: the header row plus
// every data row, addressable by header name. Cell values stay as the
// strings the spreadsheet library produced; normalization happens in the
// loaders.
type SheetData struct {
	// Path is the source file, kept for error messages.
	Path string

	// Headers are the trimmed header-row cells in sheet order.
	Headers []string

	// Rows are the data rows. Each row maps header name -> cell text.
	// Cells beyond the header width are dropped; short rows simply lack
	// the trailing keys.
	Rows []map[string]string
}

// HasColumn reports whether the header row contains the given column.
func (s *SheetData) HasColumn(name string) bool {
	for _, h := range s.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required that is absent from the
// header row, preserving the order of required.
func (s *SheetData) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !s.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// ReadSheet opens an XLSX file and reads its first sheet into a SheetData.
//
// PARAMETERS:
//   - path: the spreadsheet file to read
//
// RETURNS:
//   - the sheet content keyed by header name
//   - *FileAccessError if the file cannot be opened
//   - *LoadError for any structural failure after opening
func ReadSheet(path string) (*SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &LoadError{Path: path, Err: errNoSheets}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: errNoHeaderRow}
	}

	data := &SheetData{
		Path:    path,
		Headers: make([]string, 0, len(rows[0])),
		Rows:    make([]map[string]string, 0, len(rows)-1),
	}
	for _, h := range rows[0] {
		data.Headers = append(data.Headers, strings.TrimSpace(h))
	}

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		record := make(map[string]string, len(data.Headers))
		for i, header := range data.Headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		data.Rows = append(data.Rows, record)
	}

	return data, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
