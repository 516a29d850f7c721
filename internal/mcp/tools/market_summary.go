package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// MarketSummaryParams defines the arguments for the market_summary tool
type MarketSummaryParams struct {
	Guest bool `json:"guest,omitempty" jsonschema:"Use the capped guest view of the dataset"`
}

// MarketSummaryResult pairs the summary with snapshot provenance
type MarketSummaryResult struct {
	Summary    analytics.Summary      `json:"summary" jsonschema:"Dataset-level market statistics"`
	Trends     []analytics.TrendPoint `json:"monthly_trends,omitempty" jsonschema:"Monthly offer and salary history"`
	Categories []string               `json:"categories" jsonschema:"Known category names"`
	ComputedAt time.Time              `json:"computed_at" jsonschema:"When the snapshot was built"`
}

type marketSummaryTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithMarketSummary registers the market_summary tool
func WithMarketSummary(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := marketSummaryTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "market_summary",
			Description: "Return dataset-level market statistics from the analytics snapshot",
		}, handler.handle)
	}
}

func (t marketSummaryTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *MarketSummaryParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	guest := params != nil && params.Guest
	snap := t.dataset.Snapshot()
	if guest {
		snap = t.dataset.GuestSnapshot()
	}

	if t.logger != nil {
		t.logger.Debug("market_summary request", "guest", guest)
	}

	result := MarketSummaryResult{
		Summary:    snap.Summary,
		Trends:     snap.Trends,
		Categories: t.dataset.Categories(),
		ComputedAt: snap.ComputedAt,
	}

	msg := fmt.Sprintf("%d jobs across %d companies in %d cities",
		result.Summary.TotalJobs, result.Summary.UniqueCompanies, result.Summary.UniqueCities)
	return textResult(msg), result, nil
}
