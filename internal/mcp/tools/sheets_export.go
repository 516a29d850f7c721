package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/pkg/logging"
)

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Tab   string `json:"tab,omitempty" jsonschema:"Destination tab; defaults to Analytics"`
	Guest bool   `json:"guest,omitempty" jsonschema:"Export the capped guest view instead of the full dataset"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	Tab         string    `json:"tab" jsonschema:"Tab that was written"`
	WrittenRows int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
}

type sheetsExportTool struct {
	dataset  Dataset
	exporter SnapshotExporter
	logger   *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(dataset Dataset, exporter SnapshotExporter, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{dataset: dataset, exporter: exporter, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export the current analytics snapshot to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if t.exporter == nil {
		return nil, nil, fmt.Errorf("sheets export is not configured")
	}
	if params == nil {
		params = &SheetsExportParams{}
	}

	snap := t.dataset.Snapshot()
	if params.Guest {
		snap = t.dataset.GuestSnapshot()
	}

	rows, err := t.exporter.ExportSnapshot(ctx, snap, params.Tab)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("sheets_export failed", "err", err)
		}
		return nil, nil, fmt.Errorf("export failed: %w", err)
	}

	result := SheetsExportResult{
		Tab:         params.Tab,
		WrittenRows: rows,
		CompletedAt: time.Now().UTC(),
	}
	if result.Tab == "" {
		result.Tab = "Analytics"
	}

	return textResult(fmt.Sprintf("Wrote %d rows to tab %q", rows, result.Tab)), result, nil
}
