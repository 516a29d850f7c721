package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/internal/domain/dataset"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// Ranking table names accepted by skill_rankings.
const (
	TableSkills       = "skills"
	TableCombinations = "combinations"
	TableWeights      = "weights"
	TableLocations    = "locations"
	TableSeniority    = "seniority"
)

// SkillRankingsParams defines the arguments for the skill_rankings tool
type SkillRankingsParams struct {
	Table string `json:"table,omitempty" jsonschema:"Ranking table: skills, combinations, weights, locations or seniority; defaults to skills"`
	Limit int    `json:"limit,omitempty" jsonschema:"Cap on returned rows; 0 returns everything"`
	Guest bool   `json:"guest,omitempty" jsonschema:"Use the capped guest view of the dataset"`
}

// SkillRankingsResult carries one ranking table; only the requested
// slot is populated
type SkillRankingsResult struct {
	Table        string                       `json:"table" jsonschema:"Which table is populated"`
	TotalRecords int                          `json:"total_records" jsonschema:"Records behind the ranking"`
	Skills       []analytics.SkillCount       `json:"skills,omitempty" jsonschema:"Skill frequency ranking"`
	Combinations []analytics.SkillCombination `json:"combinations,omitempty" jsonschema:"Skill pair ranking"`
	Weights      []analytics.SkillWeight      `json:"weights,omitempty" jsonschema:"Proficiency-weighted ranking"`
	Locations    []analytics.LocationSkill    `json:"locations,omitempty" jsonschema:"Top skills per city"`
	Seniority    []analytics.SenioritySkill   `json:"seniority,omitempty" jsonschema:"Seniority/skill cross-tab"`
}

type skillRankingsTool struct {
	dataset Dataset
	logger  *logging.Logger
}

// WithSkillRankings registers the skill_rankings tool
func WithSkillRankings(dataset Dataset, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := skillRankingsTool{dataset: dataset, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "skill_rankings",
			Description: "Return a precomputed skill ranking table from the analytics snapshot",
		}, handler.handle)
	}
}

func (t skillRankingsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SkillRankingsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	if params == nil {
		params = &SkillRankingsParams{}
	}
	table := params.Table
	if table == "" {
		table = TableSkills
	}

	snap := t.snapshot(params.Guest)
	result := SkillRankingsResult{
		Table:        table,
		TotalRecords: snap.TotalRecords,
	}

	switch table {
	case TableSkills:
		result.Skills = capSlice(snap.Skills, params.Limit)
	case TableCombinations:
		result.Combinations = capSlice(snap.Combinations, params.Limit)
	case TableWeights:
		result.Weights = capSlice(snap.Weights, params.Limit)
	case TableLocations:
		result.Locations = capSlice(snap.Locations, params.Limit)
	case TableSeniority:
		result.Seniority = capSlice(snap.Seniority, params.Limit)
	default:
		return nil, nil, fmt.Errorf("unknown ranking table %q", table)
	}

	if t.logger != nil {
		t.logger.Debug("skill_rankings request", "table", table, "guest", params.Guest)
	}

	msg := fmt.Sprintf("Ranking %q over %d records", table, snap.TotalRecords)
	return textResult(msg), result, nil
}

func (t skillRankingsTool) snapshot(guest bool) *dataset.Snapshot {
	if guest {
		return t.dataset.GuestSnapshot()
	}
	return t.dataset.Snapshot()
}

func capSlice[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
