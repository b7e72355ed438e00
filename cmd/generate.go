// =============================================================================
// Travel Ticket Report Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command that builds a
// billing report from the two ledger exports.
//
// COMMAND USAGE:
//   relgen generate [flags]
//
// FLAGS:
//   --client      : Path to the client ledger (skips input-dir discovery)
//   --supplier    : Path to the supplier ledger (skips input-dir discovery)
//   --output      : Path of the generated report (skips name generation)
//   --dry-run     : Load and aggregate without writing the report
//   --no-archive  : Leave the ledger files in place after a successful run
//
// PIPELINE:
//   1. Load configuration
//   2. Locate the client and supplier ledgers
//   3. Load and normalize both ledgers (concurrently, all-or-nothing)
//   4. Compute the aggregate views and assemble the eight sheets
//   5. Render the styled workbook with its pivot and charts
//   6. Archive the ledgers, prune old archives, write the run summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmtravel/ticket-report-generator/internal/config"
	"github.com/gmtravel/ticket-report-generator/internal/render"
	"github.com/gmtravel/ticket-report-generator/internal/report"
	"github.com/gmtravel/ticket-report-generator/pkg/utils"
)

// clientFile is an explicit client ledger path, bypassing discovery.
var clientFile string

// supplierFile is an explicit supplier ledger path, bypassing discovery.
var supplierFile string

// outputFile is an explicit report path, bypassing name generation.
var outputFile string

// dryRun loads and aggregates without writing the report.
var dryRun bool

// noArchive leaves the ledger files in place after a successful run.
var noArchive bool

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the billing report from the ledger exports",
	Long: `The generate command locates the client and supplier ledger exports, loads
and normalizes them, and writes the multi-sheet billing report.

Ledger discovery scans the configured input directory: the client ledger is
the newest file matching the client pattern (default *CLIENTE*.xls*), the
supplier ledger the newest match of the supplier pattern (default
*FORNECEDOR*.xls*). Explicit --client/--supplier paths skip discovery.

On success the ledgers are moved to the archive directory and a run summary
is written next to the report. A failed run leaves the ledgers untouched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&clientFile,
		"client",
		"",
		"Path to the client ledger file (skips discovery)",
	)

	generateCmd.Flags().StringVar(
		&supplierFile,
		"supplier",
		"",
		"Path to the supplier ledger file (skips discovery)",
	)

	generateCmd.Flags().StringVar(
		&outputFile,
		"output",
		"",
		"Path of the generated report (skips name generation)",
	)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Load and aggregate without writing the report",
	)

	generateCmd.Flags().BoolVar(
		&noArchive,
		"no-archive",
		false,
		"Leave the ledger files in place after a successful run",
	)
}

// discardRenderer satisfies report.Renderer for dry runs.
type discardRenderer struct{}

func (discardRenderer) Render(sheets []report.SheetSpec, outputPath string) error {
	return nil
}

// runGenerate orchestrates one report run.
func runGenerate(cmd *cobra.Command) error {
	startTime := time.Now()

	fmt.Println("=== Travel Ticket Report Generator ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnSuccess = !noArchive && !dryRun

	// =========================================================================
	// LOCATE LEDGERS
	// =========================================================================

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

	fmt.Printf("Client ledger:   %s\n", clientPath)
	fmt.Printf("Supplier ledger: %s\n", supplierPath)

	outputPath := outputFile
	if outputPath == "" {
		outputPath = filepath.Join(cfg.OutputDir, utils.GenerateOutputFileName(cfg.OutputNameFormat))
	}

	// =========================================================================
	// GENERATE
	// =========================================================================

	var renderer report.Renderer = render.NewRenderer(cfg.StyleConfig())
	if dryRun {
		fmt.Println("Dry run: the report will not be written.")
		renderer = discardRenderer{}
	}

	generator := report.NewGenerator(renderer, slog.Default())
	result, err := generator.Generate(cmd.Context(), report.Options{
		ClientFile:   clientPath,
		SupplierFile: supplierPath,
		OutputFile:   outputPath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Report: %s (%d tickets, %d sheets, %s)\n",
		result.OutputFile, result.TicketCount, result.SheetCount, result.Duration)

	if dryRun {
		return nil
	}

	// =========================================================================
	// ARCHIVE AND SUMMARIZE
	// =========================================================================

	var archived []string
	for _, path := range []string{clientPath, supplierPath} {
		archivePath, err := fm.ArchiveLedger(path)
		if err != nil {
			// The report exists; a stuck ledger is a warning, not a failure.
			slog.Warn("failed to archive ledger", "file", path, "error", err)
			continue
		}
		if archivePath != path {
			archived = append(archived, archivePath)
			fmt.Printf("Archived: %s\n", archivePath)
		}
	}

	if cfg.ArchiveRetentionDays > 0 {
		maxAge := time.Duration(cfg.ArchiveRetentionDays) * 24 * time.Hour
		removed, err := fm.CleanOldArchives(maxAge)
		if err != nil {
			slog.Warn("failed to prune old archives", "error", err)
		} else if removed > 0 {
			slog.Info("pruned old archives", "removed", removed)
		}
	}

	summaryPath, err := fm.WriteRunSummary(utils.RunSummary{
		StartTime:     startTime,
		EndTime:       time.Now(),
		ClientFile:    clientPath,
		SupplierFile:  supplierPath,
		OutputFile:    result.OutputFile,
		TicketCount:   result.TicketCount,
		SupplierCount: result.SupplierCount,
		SheetCount:    result.SheetCount,
		ArchivedFiles: archived,
	})
	if err != nil {
		slog.Warn("failed to write run summary", "error", err)
	} else {
		fmt.Printf("Summary: %s\n", summaryPath)
	}

	return nil
}
