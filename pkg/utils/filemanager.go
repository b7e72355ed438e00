// =============================================================================
// Travel Ticket Report Generator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the report generator:
//   - Ledger discovery in the input directory
//   - Ledger archival after a successful run
//   - Output file naming
//   - Run summary generation
//
// ARCHIVAL STRATEGY:
//   - Ledger files are moved to the archive directory only after the report
//     has been saved; a failed run leaves them in place for the next try
//   - Old archives can be pruned by age when a retention is configured
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the report generator.
type FileManager struct {
	// InputDir is the directory scanned for ledger exports.
	InputDir string

	// OutputDir is the directory where reports and run summaries land.
	OutputDir string

	// ArchiveDir is the directory where processed ledgers are moved.
	ArchiveDir string

	// ArchiveOnSuccess determines whether ledgers are archived after a
	// successful run.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager over the given directories.
func NewFileManager(inputDir, outputDir, archiveDir string) *FileManager {
	return &FileManager{
		InputDir:         inputDir,
		OutputDir:        outputDir,
		ArchiveDir:       archiveDir,
		ArchiveOnSuccess: true,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// LEDGER DISCOVERY
// =============================================================================

// DiscoverLedger finds the ledger file matching the pattern in the input
// directory. When several files match (e.g. two months of exports waiting),
// the most recently modified one wins.
//
// PARAMETERS:
//   - pattern: a glob such as "*CLIENTE*.xls*"
//
// RETURNS:
//   - the path of the newest matching file
//   - an error when the directory cannot be scanned or nothing matches
func (fm *FileManager) DiscoverLedger(pattern string) (string, error) {
	files, err := filepath.Glob(filepath.Join(fm.InputDir, pattern))
	if err != nil {
		return "", fmt.Errorf("failed to scan input directory: %w", err)
	}

	var newest string
	var newestTime time.Time
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = file
			newestTime = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no ledger file matching '%s' found in %s", pattern, fm.InputDir)
	}
	return newest, nil
}

// =============================================================================
// LEDGER ARCHIVAL
// =============================================================================

// ArchiveLedger moves a processed ledger into the archive directory.
//
// PARAMETERS:
//   - filePath: the ledger to archive.
//
// RETURNS:
//   - the archived path
//   - an error if the move fails
func (fm *FileManager) ArchiveLedger(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := filepath.Join(fm.ArchiveDir, filepath.Base(filePath))
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Rename fails across filesystems; fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// CleanOldArchives removes archived ledgers older than maxAge.
//
// RETURNS:
//   - the number of files removed
//   - an error if the walk fails
func (fm *FileManager) CleanOldArchives(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	err := filepath.Walk(fm.ArchiveDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to clean archives: %w", err)
	}
	return removed, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName builds a unique report file name.
//
// PARAMETERS:
//   - format: name format with placeholders:
//     {uuid}      - a random UUID
//     {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - current date (YYYYMMDD)
//     {time}      - current time (HHMMSS)
//
// RETURNS:
//   - The generated file name, always with an .xlsx extension.
//
// EXAMPLE:
//
//	format: "relatorio_{timestamp}_{uuid}.xlsx"
//	output: "relatorio_20240115_143022_a1b2c3d4-....xlsx"
func GenerateOutputFileName(format string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}
	return result
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains summary information about one report run.
type RunSummary struct {
	StartTime     time.Time
	EndTime       time.Time
	ClientFile    string
	SupplierFile  string
	OutputFile    string
	TicketCount   int
	SupplierCount int
	SheetCount    int
	ArchivedFiles []string
}

// WriteRunSummary writes a human-readable summary of the run next to the
// report.
//
// RETURNS:
//   - the path to the summary file
//   - an error if writing fails
func (fm *FileManager) WriteRunSummary(summary RunSummary) (string, error) {
	name := fmt.Sprintf("run_summary_%s.txt", summary.StartTime.Format("20060102_150405"))
	path := filepath.Join(fm.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Travel Ticket Report Generator - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time:    %s\n"+
		"  End Time:      %s\n"+
		"  Duration:      %s\n\n"+
		"Inputs:\n"+
		"  Client Ledger:   %s\n"+
		"  Supplier Ledger: %s\n\n"+
		"Results:\n"+
		"  Tickets:         %d\n"+
		"  Supplier Rows:   %d\n"+
		"  Sheets Written:  %d\n"+
		"  Report:          %s\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.ClientFile,
		summary.SupplierFile,
		summary.TicketCount,
		summary.SupplierCount,
		summary.SheetCount,
		summary.OutputFile)

	if len(summary.ArchivedFiles) > 0 {
		fmt.Fprintf(writer, "\nArchived Files:\n")
		for _, f := range summary.ArchivedFiles {
			fmt.Fprintf(writer, "  %s\n", f)
		}
	}

	fmt.Fprintf(writer, "\n================================================================================\n"+
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}
	return path, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
