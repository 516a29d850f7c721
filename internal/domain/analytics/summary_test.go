package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestMarketSummary(t *testing.T) {
	records := []domain.JobRecord{
		record(withCompany("Acme"), withCity("Warsaw"), withSeniority("Mid"),
			withSkills(map[string]string{"Go": "Regular", "SQL": "Regular"}), withRemote(true)),
		record(withCompany("Acme"), withCity("Warsaw"), withSeniority("Senior"),
			withSkills(map[string]string{"Go": "Senior"}), withRemote(false)),
		record(withCompany("Globex"), withCity("Krakow"), withSeniority("Mid"),
			withSkills(map[string]string{"Python": "Regular"})),
	}

	summary := MarketSummary(records)

	assert.Equal(t, 3, summary.TotalJobs)
	assert.Equal(t, 2, summary.UniqueCompanies)
	assert.Equal(t, 2, summary.UniqueCities)
	assert.InDelta(t, 1.3, summary.AvgSkillsPerJob, 1e-9)
	assert.Equal(t, "Mid", summary.TopSeniority)
	assert.Equal(t, "Warsaw", summary.TopCity)
	assert.Equal(t, "Acme", summary.TopCompany)
	assert.Equal(t, "Go", summary.TopSkill)
	assert.Equal(t, 2, summary.TopSkillCount)
	assert.InDelta(t, 66.67, summary.TopSkillSharePct, 0.01)

	require.NotNil(t, summary.RemotePct)
	assert.InDelta(t, 33.33, *summary.RemotePct, 0.01)
}

func TestMarketSummaryEmpty(t *testing.T) {
	summary := MarketSummary(nil)

	assert.Zero(t, summary.TotalJobs)
	assert.Nil(t, summary.RemotePct)
	assert.Empty(t, summary.TopSkill)
}

func TestMarketSummaryRemoteUnknownEverywhere(t *testing.T) {
	records := []domain.JobRecord{record(), record()}

	assert.Nil(t, MarketSummary(records).RemotePct)
}

func TestModalTieBreaksAlphabetically(t *testing.T) {
	assert.Equal(t, "Krakow", modal(map[string]int{"Warsaw": 2, "Krakow": 2, "Gdansk": 1}))
}
