// =============================================================================
// Travel Ticket Report Generator - Grouping Primitives
// =============================================================================
//
// Shared helpers for the aggregate views. Every view groups the same
// immutable record set by one or more dimension keys and derives sums,
// counts and percentage-of-grand-total measures from each bucket.
//
// Group ordering is first-appearance order of the key in the record set,
// never alphabetical. Output row order is part of the report contract, so
// the helpers here must stay stable.
//
// =============================================================================

package aggregate

import "github.com/gmtravel/ticket-report-generator/internal/types"

// TotalLabel is the dimension value of the synthetic trailing Total row.
const TotalLabel = "TOTAL"

// groupBy buckets records by key, preserving first-appearance key order.
func groupBy[K comparable](records []types.TicketRecord, key func(types.TicketRecord) K) ([]K, map[K][]types.TicketRecord) {
	order := make([]K, 0)
	buckets := make(map[K][]types.TicketRecord)
	for _, r := range records {
		k := key(r)
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], r)
	}
	return order, buckets
}

// percentage computes part as a percentage of grand, with 0 for an empty
// grand total.
func percentage(part, grand float64) float64 {
	if grand == 0 {
		return 0
	}
	return part / grand * 100
}

// averageTicket divides the fare sum by the ticket count. The average is
// fare-based on purpose; taxes never enter it.
func averageTicket(fareSum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return fareSum / float64(count)
}
