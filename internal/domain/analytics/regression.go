package analytics

import (
	"fmt"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// Supported regression predictors.
const (
	PredictorSeniority  = "seniority"
	PredictorSkillCount = "skill_count"
	PredictorSkill      = "skill"
)

// Minimum salaried records for a regression fit.
const minRegressionSamples = 5

// Seniority labels mapped onto a numeric ordinal scale for regression.
var seniorityOrdinals = map[string]float64{
	"Junior":  1,
	"Mid":     2,
	"Regular": 2,
	"Senior":  3,
	"Expert":  4,
	"Lead":    4,
}

const defaultSeniorityOrdinal = 2

// SeniorityOrdinal maps a seniority label to its regression ordinal.
func SeniorityOrdinal(seniority string) float64 {
	if v, ok := seniorityOrdinals[seniority]; ok {
		return v
	}
	return defaultSeniorityOrdinal
}

// Regression fits salary_avg against one predictor with closed-form OLS.
// targetSkill is only used with PredictorSkill. Fewer than five salaried
// records yields the zero result (DataPoints 0) rather than an error; a
// degenerate predictor (zero variance) yields slope 0, intercept mean(y),
// r² 0.
func Regression(records []domain.JobRecord, predictor, targetSkill string) RegressionResult {
	var xs, ys []float64

	for _, rec := range records {
		if rec.SalaryAvg == nil {
			continue
		}

		var x float64
		switch predictor {
		case PredictorSeniority:
			x = SeniorityOrdinal(rec.Seniority)
		case PredictorSkillCount:
			x = float64(rec.SkillsCount)
		case PredictorSkill:
			if rec.HasSkill(targetSkill) {
				x = 1
			}
		default:
			return RegressionResult{}
		}

		xs = append(xs, x)
		ys = append(ys, *rec.SalaryAvg)
	}

	if len(xs) < minRegressionSamples {
		return RegressionResult{}
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	result := RegressionResult{
		Predictor:  predictor,
		DataPoints: len(xs),
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		result.Intercept = sumY / n
		result.Equation = equation(0, result.Intercept)
		return result
	}

	result.Slope = (n*sumXY - sumX*sumY) / denom
	result.Intercept = (sumY - result.Slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i := range xs {
		predicted := result.Slope*xs[i] + result.Intercept
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	if ssTot > 0 {
		result.RSquared = 1 - ssRes/ssTot
	}

	result.Equation = equation(result.Slope, result.Intercept)
	return result
}

func equation(slope, intercept float64) string {
	if intercept < 0 {
		return fmt.Sprintf("y = %.2fx - %.2f", slope, -intercept)
	}
	return fmt.Sprintf("y = %.2fx + %.2f", slope, intercept)
}
