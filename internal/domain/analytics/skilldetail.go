package analytics

import (
	"math"
	"sort"

	"github.com/honeycarbs/skillviz/internal/domain"
)

const topEntriesPerSkill = 10

// SkillDetailFor assembles the full analytics bundle for one skill over
// the given records. A skill absent from every record yields a bundle
// with TotalOffers 0.
func SkillDetailFor(records []domain.JobRecord, skill string) SkillDetail {
	detail := SkillDetail{
		Skill:                 skill,
		LevelDistribution:     make(map[string]int),
		SeniorityDistribution: make(map[string]int),
		TopCompanies:          []SkillCount{},
		TopCities:             []SkillCount{},
	}

	companies := make(map[string]int)
	cities := make(map[string]int)
	var salaries []float64

	for _, rec := range records {
		level, ok := rec.Skills[skill]
		if !ok {
			continue
		}
		detail.TotalOffers++
		detail.LevelDistribution[level]++
		if rec.Seniority != "" {
			detail.SeniorityDistribution[rec.Seniority]++
		}
		if rec.Company != "" {
			companies[rec.Company]++
		}
		if rec.City != "" {
			cities[rec.City]++
		}
		if rec.SalaryAvg != nil {
			salaries = append(salaries, *rec.SalaryAvg)
		}
	}

	if len(records) > 0 {
		detail.MarketSharePct = float64(detail.TotalOffers) / float64(len(records)) * 100
	}
	if stats, ok := salaryStats(salaries); ok {
		detail.Salary = &stats
	}

	detail.TopCompanies = topCounts(companies, topEntriesPerSkill)
	detail.TopCities = topCounts(cities, topEntriesPerSkill)

	return detail
}

// SkillSeniorityBreakdown reports, per seniority tier, how many offers
// require the skill and at what share, with the tier's most requested
// proficiency level. Tiers are sorted alphabetically.
func SkillSeniorityBreakdown(records []domain.JobRecord, skill string) []SkillSeniorityStat {
	type tier struct {
		total     int
		withSkill int
		levels    map[string]int
	}

	tiers := make(map[string]*tier)
	for _, rec := range records {
		if rec.Seniority == "" {
			continue
		}
		t, ok := tiers[rec.Seniority]
		if !ok {
			t = &tier{levels: make(map[string]int)}
			tiers[rec.Seniority] = t
		}
		t.total++
		if level, ok := rec.Skills[skill]; ok {
			t.withSkill++
			t.levels[level]++
		}
	}

	names := make([]string, 0, len(tiers))
	for name := range tiers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]SkillSeniorityStat, 0, len(names))
	for _, name := range names {
		t := tiers[name]
		out = append(out, SkillSeniorityStat{
			Seniority: name,
			Total:     t.total,
			WithSkill: t.withSkill,
			SharePct:  float64(t.withSkill) / float64(t.total) * 100,
			TopLevel:  modal(t.levels),
		})
	}

	return out
}

// SkillSalaryByLevel groups salaried offers requiring the skill by the
// proficiency level they demand. Levels with no salary data are omitted;
// the result is sorted by level weight ascending, then name.
func SkillSalaryByLevel(records []domain.JobRecord, skill string) []LevelSalary {
	byLevel := make(map[string][]float64)
	for _, rec := range records {
		level, ok := rec.Skills[skill]
		if !ok || rec.SalaryAvg == nil {
			continue
		}
		byLevel[level] = append(byLevel[level], *rec.SalaryAvg)
	}

	levels := make([]string, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		wi, wj := LevelWeight(levels[i]), LevelWeight(levels[j])
		if wi != wj {
			return wi < wj
		}
		return levels[i] < levels[j]
	})

	out := make([]LevelSalary, 0, len(levels))
	for _, level := range levels {
		if stats, ok := salaryStats(byLevel[level]); ok {
			out = append(out, LevelSalary{Level: level, Salary: stats})
		}
	}

	return out
}

// salaryStats summarizes a salary series; ok is false for empty input.
// Std is the population standard deviation.
func salaryStats(values []float64) (SalaryStats, bool) {
	if len(values) == 0 {
		return SalaryStats{}, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	var variance float64
	for _, v := range sorted {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(sorted))

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return SalaryStats{
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Std:    math.Sqrt(variance),
		Count:  len(sorted),
	}, true
}

func topCounts(counts map[string]int, limit int) []SkillCount {
	out := sortedCounts(counts)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
