package analytics

import (
	"sort"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// MonthlyTrends buckets records by publication month and reports offer
// counts and average salary per month, oldest first. Records without a
// publication date are skipped.
func MonthlyTrends(records []domain.JobRecord) []TrendPoint {
	return monthlyTrends(records, func(domain.JobRecord) bool { return true })
}

// SkillTrend is MonthlyTrends restricted to records requiring one skill.
func SkillTrend(records []domain.JobRecord, skill string) []TrendPoint {
	return monthlyTrends(records, func(rec domain.JobRecord) bool {
		return rec.HasSkill(skill)
	})
}

func monthlyTrends(records []domain.JobRecord, keep func(domain.JobRecord) bool) []TrendPoint {
	type bucket struct {
		offers      int
		salarySum   float64
		salaryCount int
	}

	buckets := make(map[string]*bucket)
	for _, rec := range records {
		if rec.PublishedDate == nil || !keep(rec) {
			continue
		}
		month := rec.PublishedDate.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.offers++
		if rec.SalaryAvg != nil {
			b.salarySum += *rec.SalaryAvg
			b.salaryCount++
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		point := TrendPoint{Month: month, Offers: b.offers}
		if b.salaryCount > 0 {
			avg := b.salarySum / float64(b.salaryCount)
			point.AvgSalary = &avg
		}
		out = append(out, point)
	}

	return out
}
