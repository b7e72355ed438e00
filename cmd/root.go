// =============================================================================
// Travel Ticket Report Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   relgen (root)
//   ├── generate (relgen generate)
//   ├── validate (relgen validate)
//   └── version  (relgen version)
//
// The root command owns the global flags (--config, --verbose) and the
// structured logging setup shared by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose raises the log level to debug when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "relgen",
	Short: "Travel ticket report generator - Build billing reports from agency ledger exports",
	Long: `relgen ingests the two travel-agency ledger exports (client and supplier),
normalizes their inconsistently-formatted monetary and date fields, and
produces a multi-sheet analytical billing report: the flat ticket listing
plus aggregate views by company, cost center, airline, route and requester,
with totals, percentages and charts.

Example Usage:
  relgen generate                        # Discover ledgers in the input directory
  relgen generate --client cliente.xlsx --supplier fornecedor.xlsx
  relgen validate                        # Check the ledgers without generating
  relgen version                         # Show version information`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// setupLogging installs the default structured logger. The --verbose flag
// wins over the configured level.
func setupLogging(configuredLevel string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else {
		switch configuredLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
