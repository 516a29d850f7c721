package analytics

import (
	"math"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// MarketSummary computes dataset-level statistics. An empty input yields
// the zero Summary.
func MarketSummary(records []domain.JobRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	companies := make(map[string]int)
	cities := make(map[string]int)
	seniorities := make(map[string]int)
	skillsTotal := 0
	remoteKnown := 0
	remoteCount := 0

	for _, rec := range records {
		companies[rec.Company]++
		if rec.City != "" {
			cities[rec.City]++
		}
		if rec.Seniority != "" {
			seniorities[rec.Seniority]++
		}
		skillsTotal += rec.SkillsCount
		if rec.Remote != nil {
			remoteKnown++
			if *rec.Remote {
				remoteCount++
			}
		}
	}

	summary := Summary{
		TotalJobs:       len(records),
		UniqueCompanies: len(companies),
		UniqueCities:    len(cities),
		AvgSkillsPerJob: round1(float64(skillsTotal) / float64(len(records))),
		TopSeniority:    modal(seniorities),
		TopCity:         modal(cities),
		TopCompany:      modal(companies),
	}

	if remoteKnown > 0 {
		pct := float64(remoteCount) / float64(len(records)) * 100
		summary.RemotePct = &pct
	}

	if freq := SkillFrequency(records); len(freq) > 0 {
		summary.TopSkill = freq[0].Skill
		summary.TopSkillCount = freq[0].Count
		summary.TopSkillSharePct = float64(freq[0].Count) / float64(len(records)) * 100
	}

	return summary
}

// modal returns the most frequent key, alphabetically first on ties.
func modal(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || key < best)) {
			best = key
			bestCount = count
		}
	}
	return best
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
