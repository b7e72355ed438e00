// =============================================================================
// Travel Ticket Report Generator - Available Credits View
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// CreditRow identifies one unused ticket credit: a passenger, the issuing
// supplier and the booking locator.
type CreditRow struct {
	Passenger string
	Supplier  string
	Locator   string
}

// AvailableCredits lists ticket credits available for reuse. The agency
// export does not mark credits yet, so the view is a header-only
// placeholder until that data arrives. The signature already takes the
// record set so callers will not change when it does.
func AvailableCredits(_ []types.TicketRecord) []CreditRow {
	return nil
}
