// =============================================================================
// Travel Ticket Report Generator - Pipeline Orchestrator
// =============================================================================
//
// Drives the full run: load the two ledgers in parallel, assemble the eight
// sheets and hand them to the renderer. Loading is all-or-nothing; a
// failure in either ledger aborts the run before any aggregation happens.
//
// =============================================================================

package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gmtravel/ticket-report-generator/internal/ledger"
	"github.com/gmtravel/ticket-report-generator/internal/types"
)

// Renderer writes assembled sheets into an output document.
type Renderer interface {
	Render(sheets []SheetSpec, outputPath string) error
}

// Options configures one generation run.
type Options struct {
	// ClientFile is the client ledger XLSX path.
	ClientFile string

	// SupplierFile is the supplier ledger XLSX path.
	SupplierFile string

	// OutputFile is the destination report path.
	OutputFile string
}

// Result summarizes a completed run.
type Result struct {
	// OutputFile is the written report.
	OutputFile string

	// TicketCount is the number of normalized client tickets.
	TicketCount int

	// SupplierCount is the number of supplier ledger rows.
	SupplierCount int

	// SheetCount is the number of sheets in the report.
	SheetCount int

	// Duration is the total processing time.
	Duration time.Duration
}

// Generator runs the load-aggregate-assemble-render pipeline.
type Generator struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewGenerator creates a generator over the given renderer.
func NewGenerator(renderer Renderer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{renderer: renderer, logger: logger}
}

// Generate executes one full report run.
//
// PARAMETERS:
//   - ctx: cancels the run between pipeline stages
//   - opts: the input and output file paths
//
// RETURNS:
//   - the run result
//   - the first load, assembly or render error
//
// The two ledgers load concurrently; the supplier ledger is validated even
// though no sheet consumes it yet, so a malformed supplier export fails the
// run instead of slipping into the archive unchecked.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	g.logger.Info("starting report generation",
		"client", opts.ClientFile,
		"supplier", opts.SupplierFile,
		"output", opts.OutputFile)

	var tickets []types.TicketRecord
	var supplierRows []types.SupplierRecord

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		tickets, err = ledger.LoadClient(opts.ClientFile)
		return err
	})
	eg.Go(func() error {
		var err error
		supplierRows, err = ledger.LoadSupplier(opts.SupplierFile)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheets := Assemble(tickets)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.renderer.Render(sheets, opts.OutputFile); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	result := &Result{
		OutputFile:    opts.OutputFile,
		TicketCount:   len(tickets),
		SupplierCount: len(supplierRows),
		SheetCount:    len(sheets),
		Duration:      time.Since(start),
	}

	g.logger.Info("report generated",
		"output", result.OutputFile,
		"tickets", result.TicketCount,
		"sheets", result.SheetCount,
		"duration", result.Duration)

	return result, nil
}
