package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestLevelWeight(t *testing.T) {
	assert.Equal(t, 1, LevelWeight("Beginner"))
	assert.Equal(t, 5, LevelWeight("Expert"))
	assert.Equal(t, 2, LevelWeight("B2"))
	assert.Equal(t, 2, LevelWeight("Somewhere In Between"))
}

func TestSkillWeights(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Expert"})),
		record(withSkills(map[string]string{"Go": "Senior", "SQL": "Beginner"})),
		record(withSkills(map[string]string{"SQL": "Regular"})),
	}

	weights := SkillWeights(records)

	require.Len(t, weights, 2)

	go_ := weights[0]
	assert.Equal(t, "Go", go_.Skill)
	assert.Equal(t, 2, go_.Frequency)
	assert.Equal(t, 9, go_.TotalWeight)
	assert.Equal(t, 9, go_.ImportanceScore)
	assert.InDelta(t, 4.5, go_.AvgWeight, 1e-9)
	assert.Equal(t, map[string]int{"Expert": 1, "Senior": 1}, go_.Levels)

	sql := weights[1]
	assert.Equal(t, "SQL", sql.Skill)
	assert.Equal(t, 3, sql.TotalWeight)
}

func TestSkillWeightsExpertOutweighsBeginner(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Kubernetes": "Expert"})),
		record(withSkills(map[string]string{"Excel": "Beginner"})),
	}

	weights := SkillWeights(records)

	require.Len(t, weights, 2)
	assert.Equal(t, "Kubernetes", weights[0].Skill)
	assert.Greater(t, weights[0].TotalWeight, weights[1].TotalWeight)
}

func TestSkillsByLocationTopFive(t *testing.T) {
	skills := map[string]string{
		"Go": "Regular", "SQL": "Regular", "Docker": "Regular",
		"Redis": "Regular", "Kafka": "Regular", "Bash": "Regular",
	}
	records := []domain.JobRecord{
		record(withCity("Warsaw"), withSkills(skills)),
		record(withCity("Warsaw"), withSkills(map[string]string{"Go": "Regular"})),
		record(withCity(""), withSkills(map[string]string{"Perl": "Regular"})),
	}

	rows := SkillsByLocation(records)

	require.Len(t, rows, 5)
	assert.Equal(t, LocationSkill{City: "Warsaw", Rank: 1, Skill: "Go", Count: 2}, rows[0])
	for _, row := range rows {
		assert.NotEqual(t, "Perl", row.Skill)
	}
}

func TestSkillsBySeniorityFullCrossTab(t *testing.T) {
	records := []domain.JobRecord{
		record(withSeniority("Junior"), withSkills(map[string]string{"Go": "Regular", "SQL": "Regular"})),
		record(withSeniority("Senior"), withSkills(map[string]string{"Go": "Expert"})),
	}

	rows := SkillsBySeniority(records)

	require.Len(t, rows, 3)
	assert.Equal(t, SenioritySkill{Seniority: "Junior", Skill: "Go", Count: 1}, rows[0])
	assert.Equal(t, SenioritySkill{Seniority: "Junior", Skill: "SQL", Count: 1}, rows[1])
	assert.Equal(t, SenioritySkill{Seniority: "Senior", Skill: "Go", Count: 1}, rows[2])
}
