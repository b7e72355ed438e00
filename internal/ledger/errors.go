// =============================================================================
// Travel Ticket Report Generator - Ledger Error Types
// =============================================================================
//
// Typed errors for the ledger loading stage. Callers distinguish between:
//   - a file that cannot be opened at all (FileAccessError)
//   - a file whose header row is missing required columns (MissingColumnsError)
//   - any other structural failure while reading rows (LoadError)
//
// All three wrap an underlying cause where one exists, so errors.Is /
// errors.As keep working through the chain.
//
// =============================================================================

package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNoSheets    = errors.New("workbook has no sheets")
	errNoHeaderRow = errors.New("sheet has no header row")
)

// FileAccessError indicates the source spreadsheet could not be opened.
type FileAccessError struct {
	// Path is the file that failed to open.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot open ledger file '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MissingColumnsError indicates the header row lacks required columns.
// It reports every missing column at once so the operator can fix the
// export in a single pass instead of replaying the load per column.
type MissingColumnsError struct {
	// Path is the offending file.
	Path string

	// Columns are all required headers absent from the file.
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("ledger file '%s' is missing required columns: %s",
		e.Path, strings.Join(e.Columns, ", "))
}

// LoadError indicates a structural failure while reading ledger rows.
type LoadError struct {
	// Path is the offending file.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load ledger file '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
