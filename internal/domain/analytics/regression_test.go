package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestRegressionSeniorityKnownSlope(t *testing.T) {
	// Salary is exactly 5000x + 1000 on the seniority ordinal, so the fit
	// must recover the line with a perfect r².
	records := []domain.JobRecord{
		record(withSeniority("Junior"), withSalary(6000)),
		record(withSeniority("Mid"), withSalary(11000)),
		record(withSeniority("Regular"), withSalary(11000)),
		record(withSeniority("Senior"), withSalary(16000)),
		record(withSeniority("Expert"), withSalary(21000)),
	}

	result := Regression(records, PredictorSeniority, "")

	assert.Equal(t, 5, result.DataPoints)
	assert.InDelta(t, 5000, result.Slope, 1e-6)
	assert.InDelta(t, 1000, result.Intercept, 1e-6)
	assert.InDelta(t, 1, result.RSquared, 1e-9)
	assert.Equal(t, "y = 5000.00x + 1000.00", result.Equation)
}

func TestRegressionTooFewSamples(t *testing.T) {
	records := []domain.JobRecord{
		record(withSeniority("Junior"), withSalary(6000)),
		record(withSeniority("Senior"), withSalary(16000)),
		record(withSeniority("Mid")),
	}

	result := Regression(records, PredictorSeniority, "")

	assert.Zero(t, result.DataPoints)
	assert.Zero(t, result.Slope)
}

func TestRegressionDegeneratePredictor(t *testing.T) {
	var records []domain.JobRecord
	for _, salary := range []float64{10000, 11000, 12000, 13000, 14000} {
		records = append(records, record(withSeniority("Mid"), withSalary(salary)))
	}

	result := Regression(records, PredictorSeniority, "")

	assert.Zero(t, result.Slope)
	assert.InDelta(t, 12000, result.Intercept, 1e-6)
	assert.Zero(t, result.RSquared)
	assert.Equal(t, 5, result.DataPoints)
}

func TestRegressionSkillIndicator(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(20000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(22000)),
		record(withSkills(map[string]string{"PHP": "Regular"}), withSalary(10000)),
		record(withSkills(map[string]string{"PHP": "Regular"}), withSalary(11000)),
		record(withSkills(map[string]string{"SQL": "Regular"}), withSalary(12000)),
	}

	result := Regression(records, PredictorSkill, "Go")

	assert.Equal(t, "skill", result.Predictor)
	assert.Positive(t, result.Slope)
	assert.Equal(t, 5, result.DataPoints)
}

func TestRegressionUnknownPredictor(t *testing.T) {
	records := []domain.JobRecord{record(withSalary(10000))}

	assert.Zero(t, Regression(records, "shoe_size", ""))
}

func TestSeniorityOrdinalDefault(t *testing.T) {
	assert.Equal(t, float64(1), SeniorityOrdinal("Junior"))
	assert.Equal(t, float64(4), SeniorityOrdinal("Lead"))
	assert.Equal(t, float64(2), SeniorityOrdinal("Intern"))
}
