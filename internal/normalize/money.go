// =============================================================================
// Travel Ticket Report Generator - Monetary Value Normalization
// =============================================================================
//
// Source spreadsheets carry monetary values in Brazilian display format:
//
//	"R$ 1.234,56"  ->  1234.56
//
// Cells read through the spreadsheet library arrive as strings, so numeric
// cells ("1234.56") must also pass through unchanged. Unparsable values
// coerce to 0.0 without error: a handful of bad cells must never abort a
// multi-thousand-row ledger load.
//
// =============================================================================

package normalize

import (
	"strconv"
	"strings"
)

// moneyCleaner strips currency markers and converts the Brazilian decimal
// convention (dot = thousands, comma = decimal) to the machine form.
var moneyCleaner = strings.NewReplacer(
	"R$", "",
	" ", "",
	" ", "",
	".", "",
)

// Money converts a raw spreadsheet cell into a float64 amount.
//
// PARAMETERS:
//   - raw: cell text, e.g. "R$ 1.234,56", "1234.56", "" or garbage
//
// RETURNS:
//   - float64: the parsed amount, or 0.0 when the cell cannot be parsed
//
// The zero fallback is deliberate and silent. Totals computed downstream
// treat an unreadable amount as zero rather than failing the whole report.
func Money(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0.0
	}

	// Numeric cells pass through untouched.
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v
	}

	cleaned := moneyCleaner.Replace(trimmed)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return v
}
