// =============================================================================
// Travel Ticket Report Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ledger
//   - aggregate
//   - report
//
// =============================================================================

package types

import "time"

// =============================================================================
// SENTINEL VALUES
// =============================================================================
// Fixed placeholders substituted at load time for missing required data.
// They come from the upstream reporting system and appear verbatim in the
// output document, so they must not be translated or altered.

const (
	// NotInformed replaces an empty tax ID or ticket locator.
	NotInformed = "Não Informado"

	// ToBeDefined replaces an empty cost center.
	ToBeDefined = "A DEFINIR"
)

// =============================================================================
// TICKET RECORD
// =============================================================================

// TicketRecord is one cleaned travel-ticket transaction from the client
// ledger. All monetary fields are already normalized (>= 0, coerced to 0.0
// when the source cell was unparsable) and all date fields are either a
// parsed calendar date or nil.
type TicketRecord struct {
	// CompanyName is the contracting company ("Razão Social").
	// Always non-empty after loading.
	CompanyName string

	// TaxID is the company tax number ("cnpj"), or NotInformed.
	TaxID string

	// CostCenter is the billing cost center, or ToBeDefined.
	CostCenter string

	// Supplier is the airline/vendor code ("Fornecedor").
	Supplier string

	// Fare is the base ticket fare ("Tarifas").
	Fare float64

	// BoardingTax is the boarding tax ("Tx.Embq.").
	BoardingTax float64

	// ServiceTax is the agency service tax ("Tx.Serviço").
	ServiceTax float64

	// Total is the full ticket value ("Total").
	Total float64

	// Passenger is the traveler name ("Passageiro").
	Passenger string

	// Requester is the person who requested the ticket ("Solicitante").
	Requester string

	// Locator is the booking reference ("Documento"), or NotInformed.
	Locator string

	// Route is the flight route ("Trecho").
	Route string

	// IssuanceDate is when the ticket was issued ("Emissão"). Nil when the
	// source cell was empty or unparsable.
	IssuanceDate *time.Time

	// DepartureDate is the outbound date ("IDA").
	DepartureDate *time.Time

	// ReturnDate is the inbound date ("VOLTA").
	ReturnDate *time.Time
}

// Taxes returns the combined boarding and service taxes for the ticket.
func (r TicketRecord) Taxes() float64 {
	return r.BoardingTax + r.ServiceTax
}

// =============================================================================
// SUPPLIER RECORD
// =============================================================================

// SupplierRecord is one row from the supplier-side ledger. The supplier
// ledger shares the monetary column set with the client ledger but is keyed
// by the supplier code alone.
type SupplierRecord struct {
	// Supplier is the airline/vendor code ("Fornecedor").
	Supplier string

	// Fare is the base fare ("Tarifas").
	Fare float64

	// BoardingTax is the boarding tax ("Tx.Embq.").
	BoardingTax float64

	// ServiceTax is the service tax ("Tx.Serviço").
	ServiceTax float64

	// ExtraTax is the optional extra tax column ("Tx.Extra").
	ExtraTax float64

	// Total is the row total ("Total").
	Total float64

	// AverageValue is the optional average value column ("Valor Medio").
	AverageValue float64
}
