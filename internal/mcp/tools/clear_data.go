package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/pkg/logging"
)

// ClearDataParams defines the arguments for the clear_data tool
type ClearDataParams struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true; wipes every record, category and persisted file"`
}

type clearDataTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithClearData registers the clear_data tool
func WithClearData(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := clearDataTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "clear_data",
			Description: "Wipe the entire dataset, in memory and in storage",
		}, handler.handle)
	}
}

func (t clearDataTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ClearDataParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || !params.Confirm {
		return nil, nil, fmt.Errorf("confirm must be true to clear the dataset")
	}

	removed := t.dataset.TotalRecords()
	if err := t.dataset.Clear(ctx); err != nil {
		if t.logger != nil {
			t.logger.Error("clear_data failed", "err", err)
		}
		return nil, nil, fmt.Errorf("clear failed: %w", err)
	}

	return textResult(fmt.Sprintf("Dataset cleared, %d records removed", removed)), map[string]any{
		"records_removed": removed,
	}, nil
}
