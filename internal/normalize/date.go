// =============================================================================
// Travel Ticket Report Generator - Date Normalization
// =============================================================================
//
// Date cells arrive in three shapes depending on how the agency system
// exported them:
//
//  1. Brazilian display text:  "25/03/2024"
//  2. Timestamp text:          "2024-03-25 00:00:00"
//  3. Raw spreadsheet serial:  "45376" (days since 1899-12-30)
//
// All three normalize to a calendar date. A cell that matches none of the
// shapes yields nil so downstream aggregation can bucket the row under a
// "no month" label instead of dropping it.
//
// =============================================================================

package normalize

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	layoutBrazilian = "02/01/2006"
	layoutTimestamp = "2006-01-02 15:04:05"
)

// serialEpoch is the spreadsheet serial-number epoch. Serial 1 maps to
// 1899-12-31 and serial 2 to 1900-01-01, matching the historical Lotus
// convention the source files use.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Date converts a raw spreadsheet cell into a calendar date.
//
// PARAMETERS:
//   - raw: cell text in any of the supported shapes
//
// RETURNS:
//   - *time.Time: the parsed date (time components zeroed), or nil when the
//     cell is empty or unparsable
//
// Legacy exports sometimes stamp placeholder rows with year 1901. Those
// dates are remapped to the current year so the rows land in a plausible
// reporting window instead of a bucket sixty years before the agency
// existed.
func Date(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if t, err := time.Parse(layoutBrazilian, trimmed); err == nil {
		return remapLegacyYear(t)
	}

	if t, err := time.Parse(layoutTimestamp, trimmed); err == nil {
		return remapLegacyYear(t)
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		// Whole days only; intraday fractions are irrelevant here.
		t := serialEpoch.AddDate(0, 0, int(math.Trunc(serial)))
		return remapLegacyYear(t)
	}

	slog.Warn("unparsable date cell", "value", trimmed)
	return nil
}

// NoMonthLabel buckets tickets whose issuance date could not be parsed.
const NoMonthLabel = "Sem Mês"

// MonthLabel formats a date as the "MM/YYYY" pivot column label, or
// NoMonthLabel when the date is nil.
func MonthLabel(t *time.Time) string {
	if t == nil {
		return NoMonthLabel
	}
	return t.Format("01/2006")
}

// remapLegacyYear normalizes the time portion to midnight and rewrites the
// 1901 placeholder year to the current year.
func remapLegacyYear(t time.Time) *time.Time {
	year := t.Year()
	if year == 1901 {
		year = time.Now().Year()
	}
	d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
