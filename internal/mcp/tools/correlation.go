package tools

import (
	"context"
	"fmt"
	"sort"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/pkg/logging"
)

// SalaryCorrelationParams defines the arguments for the salary_correlation tool
type SalaryCorrelationParams struct {
	Skill string `json:"skill,omitempty" jsonschema:"Restrict the result to one skill"`
	Guest bool   `json:"guest,omitempty" jsonschema:"Use the capped guest view of the dataset"`
}

// SkillCorrelation is one skill's Pearson coefficient against salary
type SkillCorrelation struct {
	Skill       string  `json:"skill" jsonschema:"Canonical skill name"`
	Correlation float64 `json:"correlation" jsonschema:"Pearson coefficient in [-1, 1]"`
}

// SalaryCorrelationResult lists coefficients strongest-first
type SalaryCorrelationResult struct {
	Correlations []SkillCorrelation `json:"correlations" jsonschema:"Per-skill coefficients, strongest first"`
	TotalRecords int                `json:"total_records" jsonschema:"Records behind the computation"`
}

type salaryCorrelationTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithSalaryCorrelation registers the salary_correlation tool
func WithSalaryCorrelation(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := salaryCorrelationTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "salary_correlation",
			Description: "Correlate skill presence with salary across the dataset",
		}, handler.handle)
	}
}

func (t salaryCorrelationTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SalaryCorrelationParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	if params == nil {
		params = &SalaryCorrelationParams{}
	}

	snap := t.dataset.Snapshot()
	if params.Guest {
		snap = t.dataset.GuestSnapshot()
	}

	result := SalaryCorrelationResult{TotalRecords: snap.TotalRecords}

	if params.Skill != "" {
		r, ok := snap.Correlations[params.Skill]
		if !ok {
			msg := fmt.Sprintf("No correlation available for %q (too few salaried offers)", params.Skill)
			return textResult(msg), result, nil
		}
		result.Correlations = []SkillCorrelation{{Skill: params.Skill, Correlation: r}}
		return textResult(fmt.Sprintf("%s: r=%.3f", params.Skill, r)), result, nil
	}

	for skill, r := range snap.Correlations {
		result.Correlations = append(result.Correlations, SkillCorrelation{Skill: skill, Correlation: r})
	}
	sort.Slice(result.Correlations, func(i, j int) bool {
		a, b := result.Correlations[i], result.Correlations[j]
		if a.Correlation != b.Correlation {
			return a.Correlation > b.Correlation
		}
		return a.Skill < b.Skill
	})

	if t.logger != nil {
		t.logger.Debug("salary_correlation request", "skills", len(result.Correlations))
	}

	msg := fmt.Sprintf("Correlations for %d skills over %d records", len(result.Correlations), snap.TotalRecords)
	return textResult(msg), result, nil
}
