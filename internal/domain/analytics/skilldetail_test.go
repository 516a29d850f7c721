package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestSkillDetailFor(t *testing.T) {
	records := []domain.JobRecord{
		record(withCompany("Acme"), withCity("Warsaw"), withSeniority("Mid"),
			withSkills(map[string]string{"Go": "Senior", "SQL": "Regular"}), withSalary(15000)),
		record(withCompany("Acme"), withCity("Krakow"), withSeniority("Senior"),
			withSkills(map[string]string{"Go": "Expert"}), withSalary(25000)),
		record(withCompany("Globex"), withCity("Warsaw"), withSeniority("Mid"),
			withSkills(map[string]string{"SQL": "Regular"}), withSalary(9000)),
	}

	detail := SkillDetailFor(records, "Go")

	assert.Equal(t, "Go", detail.Skill)
	assert.Equal(t, 2, detail.TotalOffers)
	assert.InDelta(t, 66.67, detail.MarketSharePct, 0.01)
	assert.Equal(t, map[string]int{"Senior": 1, "Expert": 1}, detail.LevelDistribution)
	assert.Equal(t, map[string]int{"Mid": 1, "Senior": 1}, detail.SeniorityDistribution)

	require.NotNil(t, detail.Salary)
	assert.InDelta(t, 20000, detail.Salary.Mean, 1e-9)
	assert.InDelta(t, 20000, detail.Salary.Median, 1e-9)
	assert.Equal(t, 2, detail.Salary.Count)

	require.Len(t, detail.TopCompanies, 2)
	assert.Equal(t, SkillCount{Skill: "Acme", Count: 2}, detail.TopCompanies[0])
	require.Len(t, detail.TopCities, 2)
	assert.Equal(t, "Krakow", detail.TopCities[0].Skill)
}

func TestSkillDetailForUnknownSkill(t *testing.T) {
	records := []domain.JobRecord{record()}

	detail := SkillDetailFor(records, "Fortran")

	assert.Zero(t, detail.TotalOffers)
	assert.Zero(t, detail.MarketSharePct)
	assert.Nil(t, detail.Salary)
	assert.Empty(t, detail.TopCompanies)
}

func TestSkillSeniorityBreakdown(t *testing.T) {
	records := []domain.JobRecord{
		record(withSeniority("Junior"), withSkills(map[string]string{"Go": "Beginner"})),
		record(withSeniority("Junior"), withSkills(map[string]string{"SQL": "Regular"})),
		record(withSeniority("Senior"), withSkills(map[string]string{"Go": "Expert"})),
	}

	rows := SkillSeniorityBreakdown(records, "Go")

	require.Len(t, rows, 2)

	junior := rows[0]
	assert.Equal(t, "Junior", junior.Seniority)
	assert.Equal(t, 2, junior.Total)
	assert.Equal(t, 1, junior.WithSkill)
	assert.InDelta(t, 50, junior.SharePct, 1e-9)
	assert.Equal(t, "Beginner", junior.TopLevel)

	senior := rows[1]
	assert.Equal(t, "Senior", senior.Seniority)
	assert.InDelta(t, 100, senior.SharePct, 1e-9)
	assert.Equal(t, "Expert", senior.TopLevel)
}

func TestSkillSalaryByLevel(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(10000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(12000)),
		record(withSkills(map[string]string{"Go": "Expert"}), withSalary(25000)),
		record(withSkills(map[string]string{"Go": "Beginner"})),
	}

	levels := SkillSalaryByLevel(records, "Go")

	require.Len(t, levels, 2)
	assert.Equal(t, "Regular", levels[0].Level)
	assert.InDelta(t, 11000, levels[0].Salary.Mean, 1e-9)
	assert.Equal(t, "Expert", levels[1].Level)
	assert.Equal(t, 1, levels[1].Salary.Count)
}

func TestSalaryStats(t *testing.T) {
	stats, ok := salaryStats([]float64{10, 20, 30, 40})

	require.True(t, ok)
	assert.InDelta(t, 25, stats.Mean, 1e-9)
	assert.InDelta(t, 25, stats.Median, 1e-9)
	assert.InDelta(t, 10, stats.Min, 1e-9)
	assert.InDelta(t, 40, stats.Max, 1e-9)
	assert.InDelta(t, 11.1803, stats.Std, 1e-3)
	assert.Equal(t, 4, stats.Count)

	_, ok = salaryStats(nil)
	assert.False(t, ok)
}
