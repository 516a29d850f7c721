package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestMonthlyTrends(t *testing.T) {
	records := []domain.JobRecord{
		record(withPublished("2025-06-10"), withSalary(10000)),
		record(withPublished("2025-06-25"), withSalary(14000)),
		record(withPublished("2025-07-01")),
		record(), // no date, skipped
	}

	points := MonthlyTrends(records)

	require.Len(t, points, 2)

	june := points[0]
	assert.Equal(t, "2025-06", june.Month)
	assert.Equal(t, 2, june.Offers)
	require.NotNil(t, june.AvgSalary)
	assert.InDelta(t, 12000, *june.AvgSalary, 1e-9)

	july := points[1]
	assert.Equal(t, "2025-07", july.Month)
	assert.Equal(t, 1, july.Offers)
	assert.Nil(t, july.AvgSalary)
}

func TestSkillTrend(t *testing.T) {
	records := []domain.JobRecord{
		record(withPublished("2025-06-10"), withSkills(map[string]string{"Go": "Regular"})),
		record(withPublished("2025-06-15"), withSkills(map[string]string{"SQL": "Regular"})),
		record(withPublished("2025-07-02"), withSkills(map[string]string{"Go": "Expert"})),
	}

	points := SkillTrend(records, "Go")

	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].Offers)
	assert.Equal(t, 1, points[1].Offers)
}

func TestMonthlyTrendsEmpty(t *testing.T) {
	assert.Empty(t, MonthlyTrends(nil))
}
