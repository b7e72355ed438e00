// =============================================================================
// Travel Ticket Report Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the travel ticket report generator CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   relgen generate   - Build the billing report from the ledger exports
//   relgen validate   - Check the ledger exports without generating
//   relgen version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/          : CLI command definitions (Cobra)
//   - internal/     : Core business logic (not for external import)
//   - pkg/          : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/gmtravel/ticket-report-generator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
