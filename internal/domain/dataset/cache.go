package dataset

import (
	"time"

	"github.com/honeycarbs/skillviz/internal/domain"
	"github.com/honeycarbs/skillviz/internal/domain/analytics"
)

// Pair rankings below this count carry no signal.
const defaultComboMinFrequency = 2

// At most this many skills get a precomputed detail bundle.
const detailedSkillsLimit = 100

// Snapshot is the precomputed analytics bundle for one view of the
// dataset. It is immutable once built; readers share it without locking.
type Snapshot struct {
	ComputedAt     time.Time                        `json:"computed_at"`
	TotalRecords   int                              `json:"total_records"`
	Skills         []analytics.SkillCount           `json:"skills"`
	Combinations   []analytics.SkillCombination     `json:"skill_combinations"`
	Weights        []analytics.SkillWeight          `json:"skill_weights"`
	Locations      []analytics.LocationSkill        `json:"skills_by_location"`
	Seniority      []analytics.SenioritySkill       `json:"skills_by_seniority"`
	Summary        analytics.Summary                `json:"summary"`
	Correlations   map[string]float64               `json:"salary_correlations"`
	Trends         []analytics.TrendPoint           `json:"monthly_trends"`
	DetailedSkills map[string]analytics.SkillDetail `json:"detailed_skills"`
}

// buildSnapshot recomputes every slot from scratch. Detail bundles are
// limited to the top skills by frequency.
func buildSnapshot(records []domain.JobRecord, comboMinFrequency int, now time.Time) *Snapshot {
	skills := analytics.SkillFrequency(records)

	detailed := make(map[string]analytics.SkillDetail)
	for i, sc := range skills {
		if i >= detailedSkillsLimit {
			break
		}
		detailed[sc.Skill] = analytics.SkillDetailFor(records, sc.Skill)
	}

	return &Snapshot{
		ComputedAt:     now,
		TotalRecords:   len(records),
		Skills:         skills,
		Combinations:   analytics.SkillCombinations(records, comboMinFrequency),
		Weights:        analytics.SkillWeights(records),
		Locations:      analytics.SkillsByLocation(records),
		Seniority:      analytics.SkillsBySeniority(records),
		Summary:        analytics.MarketSummary(records),
		Correlations:   analytics.SalaryCorrelation(records),
		Trends:         analytics.MonthlyTrends(records),
		DetailedSkills: detailed,
	}
}
