package analytics

import (
	"sort"

	"github.com/honeycarbs/skillviz/internal/domain"
)

const topSkillsPerCity = 5

// SkillsByLocation returns the top five skills for every city, ranked by
// occurrence count. Records with an empty city are skipped.
func SkillsByLocation(records []domain.JobRecord) []LocationSkill {
	cities := make(map[string]map[string]int)
	for _, rec := range records {
		if rec.City == "" {
			continue
		}
		if cities[rec.City] == nil {
			cities[rec.City] = make(map[string]int)
		}
		for skill := range rec.Skills {
			cities[rec.City][skill]++
		}
	}

	cityNames := make([]string, 0, len(cities))
	for city := range cities {
		cityNames = append(cityNames, city)
	}
	sort.Strings(cityNames)

	var out []LocationSkill
	for _, city := range cityNames {
		top := sortedCounts(cities[city])
		if len(top) > topSkillsPerCity {
			top = top[:topSkillsPerCity]
		}
		for rank, sc := range top {
			out = append(out, LocationSkill{
				City:  city,
				Rank:  rank + 1,
				Skill: sc.Skill,
				Count: sc.Count,
			})
		}
	}

	return out
}

// SkillsBySeniority returns the full seniority/skill cross-tab without a
// top-N cutoff, unlike the per-city table.
func SkillsBySeniority(records []domain.JobRecord) []SenioritySkill {
	tiers := make(map[string]map[string]int)
	for _, rec := range records {
		if tiers[rec.Seniority] == nil {
			tiers[rec.Seniority] = make(map[string]int)
		}
		for skill := range rec.Skills {
			tiers[rec.Seniority][skill]++
		}
	}

	tierNames := make([]string, 0, len(tiers))
	for tier := range tiers {
		tierNames = append(tierNames, tier)
	}
	sort.Strings(tierNames)

	var out []SenioritySkill
	for _, tier := range tierNames {
		for _, sc := range sortedCounts(tiers[tier]) {
			out = append(out, SenioritySkill{
				Seniority: tier,
				Skill:     sc.Skill,
				Count:     sc.Count,
			})
		}
	}

	return out
}
