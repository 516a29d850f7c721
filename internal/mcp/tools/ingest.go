package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/pkg/logging"
)

// IngestJobsParams defines the arguments for the ingest_jobs tool
type IngestJobsParams struct {
	Category string           `json:"category,omitempty" jsonschema:"Category to file the batch under; defaults to 'default'"`
	Records  []map[string]any `json:"records" jsonschema:"Raw job records, current or legacy column shape"`
	Replace  bool             `json:"replace,omitempty" jsonschema:"Replace the category's records instead of appending"`
}

type ingestJobsTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithIngestJobs registers the ingest_jobs tool
func WithIngestJobs(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := ingestJobsTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "ingest_jobs",
			Description: "Validate, normalize and deduplicate a batch of job records into a category",
		}, handler.handle)
	}
}

func (t ingestJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *IngestJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || len(params.Records) == 0 {
		return nil, nil, fmt.Errorf("records are required")
	}

	if t.logger != nil {
		t.logger.Info("ingest_jobs request",
			"category", params.Category,
			"records", len(params.Records),
			"replace", params.Replace,
		)
	}

	stats, err := t.dataset.Ingest(ctx, params.Category, params.Records, params.Replace)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("ingest_jobs failed", "err", err)
		}
		return nil, nil, fmt.Errorf("ingest failed: %w", err)
	}

	msg := fmt.Sprintf("Ingested %d new records into %q (%d duplicates removed, %d total)",
		stats.NewRecords, stats.Category, stats.DuplicatesRemoved, stats.TotalRecords)
	return textResult(msg), stats, nil
}
