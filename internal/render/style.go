// =============================================================================
// Travel Ticket Report Generator - Render Styling
// =============================================================================
//
// Styling is carried by an explicit StyleConfig handed to the renderer, not
// by package-level state. Every sheet gets the same treatment: bold filled
// headers, a highlighted total row, thin borders everywhere, money cells in
// "#,##0.00" right-aligned and dates centered in "dd/mm/yyyy".
//
// =============================================================================

package render

import "github.com/xuri/excelize/v2"

// StyleConfig holds the visual constants for one rendered document.
type StyleConfig struct {
	// HeaderFill is the RGB fill of header rows.
	HeaderFill string

	// TotalFill is the RGB fill of total rows.
	TotalFill string

	// MoneyFormat is the number format of monetary cells.
	MoneyFormat string

	// DateFormat is the number format of date cells.
	DateFormat string

	// ColumnPadding is added to the longest cell length when sizing a
	// column.
	ColumnPadding float64
}

// DefaultStyleConfig returns the billing template's standard look.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		HeaderFill:    "EC7233",
		TotalFill:     "D0CECE",
		MoneyFormat:   "#,##0.00",
		DateFormat:    "dd/mm/yyyy",
		ColumnPadding: 2,
	}
}

// styleSet holds the style IDs registered on one workbook.
type styleSet struct {
	header     int
	text       int
	money      int
	date       int
	totalText  int
	totalMoney int
}

// thinBorders is the all-sides thin border used by every styled cell.
func thinBorders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{
			Type:  side,
			Color: "000000",
			Style: 1,
		})
	}
	return borders
}

// fill builds a solid pattern fill for the given RGB color.
func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

// buildStyles registers the style set on the workbook.
func buildStyles(f *excelize.File, cfg StyleConfig) (*styleSet, error) {
	set := &styleSet{}

	var err error
	set.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      fill(cfg.HeaderFill),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, err
	}

	set.text, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, err
	}

	set.money, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thinBorders(),
		CustomNumFmt: &cfg.MoneyFormat,
	})
	if err != nil {
		return nil, err
	}

	set.date, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "center"},
		Border:       thinBorders(),
		CustomNumFmt: &cfg.DateFormat,
	})
	if err != nil {
		return nil, err
	}

	set.totalText, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      fill(cfg.TotalFill),
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, err
	}

	set.totalMoney, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         fill(cfg.TotalFill),
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       thinBorders(),
		CustomNumFmt: &cfg.MoneyFormat,
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}
