// =============================================================================
// Travel Ticket Report Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the ledger exports
// without generating a report. It runs the same discovery, column
// validation and normalization as 'generate' and then stops, so a broken
// export is caught before the scheduled run.
//
// COMMAND USAGE:
//   relgen validate [flags]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gmtravel/ticket-report-generator/internal/config"
	"github.com/gmtravel/ticket-report-generator/internal/ledger"
	"github.com/gmtravel/ticket-report-generator/pkg/utils"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the ledger exports without generating a report",
	Long: `The validate command locates both ledger exports and loads them fully,
reporting every missing column and the normalized row counts, but writes
nothing. Use it to check a fresh export before the billing run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&clientFile,
		"client",
		"",
		"Path to the client ledger file (skips discovery)",
	)

	validateCmd.Flags().StringVar(
		&supplierFile,
		"supplier",
		"",
		"Path to the supplier ledger file (skips discovery)",
	)
}

// runValidate checks both ledgers and prints what a generate run would see.
func runValidate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)

	clientPath := clientFile
	if clientPath == "" {
		clientPath, err = fm.DiscoverLedger(cfg.ClientPattern)
		if err != nil {
			return err
		}
	}

	supplierPath := supplierFile
	if supplierPath == "" {
		supplierPath, err = fm.DiscoverLedger(cfg.SupplierPattern)
		if err != nil {
			return err
		}
	}

	fmt.Println("=== Ledger Validation ===")

	tickets, err := ledger.LoadClient(clientPath)
	if err != nil {
		return fmt.Errorf("client ledger: %w", err)
	}
	fmt.Printf("Client ledger:   %s  OK (%d tickets)\n", clientPath, len(tickets))

	supplierRows, err := ledger.LoadSupplier(supplierPath)
	if err != nil {
		return fmt.Errorf("supplier ledger: %w", err)
	}
	fmt.Printf("Supplier ledger: %s  OK (%d rows)\n", supplierPath, len(supplierRows))

	fmt.Println("Both ledgers are ready for report generation.")
	return nil
}
