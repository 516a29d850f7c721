package analytics

import (
	"math"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// A skill needs this many salaried occurrences before its correlation is
// considered meaningful.
const minCorrelationSamples = 3

// SalaryCorrelation computes, per skill, the Pearson correlation between
// the 0/1 skill-presence indicator and salary_avg over all records with
// salary data. Skills with fewer than three salaried occurrences are not
// emitted, and neither are undefined coefficients (zero variance on
// either side). Absence of a value is the "no result" case.
func SalaryCorrelation(records []domain.JobRecord) map[string]float64 {
	type sample struct {
		present []float64
		salary  []float64
	}

	salaried := make([]domain.JobRecord, 0, len(records))
	for _, rec := range records {
		if rec.SalaryAvg != nil {
			salaried = append(salaried, rec)
		}
	}

	out := make(map[string]float64)
	if len(salaried) == 0 {
		return out
	}

	skills := make(map[string]int)
	for _, rec := range salaried {
		for skill := range rec.Skills {
			skills[skill]++
		}
	}

	for skill, occurrences := range skills {
		if occurrences < minCorrelationSamples {
			continue
		}

		s := sample{
			present: make([]float64, 0, len(salaried)),
			salary:  make([]float64, 0, len(salaried)),
		}
		for _, rec := range salaried {
			indicator := 0.0
			if rec.HasSkill(skill) {
				indicator = 1.0
			}
			s.present = append(s.present, indicator)
			s.salary = append(s.salary, *rec.SalaryAvg)
		}

		if r, ok := pearson(s.present, s.salary); ok {
			out[skill] = r
		}
	}

	return out
}

// pearson returns the correlation coefficient of two equal-length series,
// or ok=false when it is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0, false
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	varX := n*sumX2 - sumX*sumX
	varY := n*sumY2 - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return 0, false
	}

	r := (n*sumXY - sumX*sumY) / math.Sqrt(varX*varY)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}

	return r, true
}
