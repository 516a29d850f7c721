package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// RegressionParams defines the arguments for the regression_analysis tool
type RegressionParams struct {
	Predictor string `json:"predictor" jsonschema:"Predictor: seniority, skill_count or skill"`
	Skill     string `json:"skill,omitempty" jsonschema:"Target skill, required with the skill predictor"`
}

type regressionTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithRegressionAnalysis registers the regression_analysis tool
func WithRegressionAnalysis(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := regressionTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "regression_analysis",
			Description: "Fit salary against a predictor with ordinary least squares",
		}, handler.handle)
	}
}

func (t regressionTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *RegressionParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	if params == nil || params.Predictor == "" {
		return nil, nil, fmt.Errorf("predictor is required")
	}

	switch params.Predictor {
	case analytics.PredictorSeniority, analytics.PredictorSkillCount:
	case analytics.PredictorSkill:
		if params.Skill == "" {
			return nil, nil, fmt.Errorf("skill is required with the skill predictor")
		}
	default:
		return nil, nil, fmt.Errorf("unknown predictor %q", params.Predictor)
	}

	if t.logger != nil {
		t.logger.Debug("regression_analysis request", "predictor", params.Predictor, "skill", params.Skill)
	}

	result := t.dataset.Regression(params.Predictor, params.Skill)
	if result.DataPoints == 0 {
		return textResult("Not enough salary data for a regression fit"), result, nil
	}

	msg := fmt.Sprintf("%s (r²=%.3f over %d records)", result.Equation, result.RSquared, result.DataPoints)
	return textResult(msg), result, nil
}
