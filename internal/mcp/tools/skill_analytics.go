package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// SkillAnalyticsParams defines the arguments for the skill_analytics tool
type SkillAnalyticsParams struct {
	Skill            string `json:"skill" jsonschema:"Canonical skill name to analyze"`
	IncludeSeniority bool   `json:"include_seniority,omitempty" jsonschema:"Add the per-seniority uptake breakdown"`
	IncludeSalary    bool   `json:"include_salary_by_level,omitempty" jsonschema:"Add salary stats per required proficiency level"`
	IncludeTrend     bool   `json:"include_trend,omitempty" jsonschema:"Add the monthly demand history"`
}

// SkillAnalyticsResult bundles everything known about one skill
type SkillAnalyticsResult struct {
	Detail        analytics.SkillDetail          `json:"detail" jsonschema:"Core analytics bundle for the skill"`
	Seniority     []analytics.SkillSeniorityStat `json:"seniority_breakdown,omitempty" jsonschema:"Per-tier uptake of the skill"`
	SalaryByLevel []analytics.LevelSalary        `json:"salary_by_level,omitempty" jsonschema:"Salary stats per proficiency level"`
	Trend         []analytics.TrendPoint         `json:"trend,omitempty" jsonschema:"Monthly demand history"`
}

type skillAnalyticsTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithSkillAnalytics registers the skill_analytics tool
func WithSkillAnalytics(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := skillAnalyticsTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "skill_analytics",
			Description: "Resolve the full analytics bundle for a single skill",
		}, handler.handle)
	}
}

func (t skillAnalyticsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SkillAnalyticsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	if params == nil || params.Skill == "" {
		return nil, nil, fmt.Errorf("skill is required")
	}

	if t.logger != nil {
		t.logger.Debug("skill_analytics request", "skill", params.Skill)
	}

	result := SkillAnalyticsResult{
		Detail: t.dataset.SkillDetail(params.Skill),
	}
	if params.IncludeSeniority {
		result.Seniority = t.dataset.SkillSeniorityBreakdown(params.Skill)
	}
	if params.IncludeSalary {
		result.SalaryByLevel = t.dataset.SkillSalaryByLevel(params.Skill)
	}
	if params.IncludeTrend {
		result.Trend = t.dataset.SkillTrend(params.Skill)
	}

	msg := fmt.Sprintf("%q appears in %d offers (%.1f%% market share)",
		params.Skill, result.Detail.TotalOffers, result.Detail.MarketSharePct)
	return textResult(msg), result, nil
}
