package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillviz/internal/domain"
)

func TestSalaryCorrelationPositive(t *testing.T) {
	// Go jobs pay strictly more than the rest, so the indicator and the
	// salary series move together.
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(20000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(21000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(22000)),
		record(withSkills(map[string]string{"PHP": "Regular"}), withSalary(8000)),
		record(withSkills(map[string]string{"PHP": "Regular"}), withSalary(9000)),
		record(withSkills(map[string]string{"PHP": "Regular"}), withSalary(10000)),
	}

	corr := SalaryCorrelation(records)

	require.Contains(t, corr, "Go")
	assert.Greater(t, corr["Go"], 0.9)
	require.Contains(t, corr, "PHP")
	assert.Less(t, corr["PHP"], -0.9)
}

func TestSalaryCorrelationBounds(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular", "SQL": "Regular"}), withSalary(12000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(15000)),
		record(withSkills(map[string]string{"Go": "Regular", "Docker": "Regular"}), withSalary(9000)),
		record(withSkills(map[string]string{"SQL": "Regular", "Docker": "Regular"}), withSalary(11000)),
		record(withSkills(map[string]string{"SQL": "Regular"}), withSalary(14000)),
	}

	for skill, r := range SalaryCorrelation(records) {
		assert.GreaterOrEqual(t, r, -1.0, "skill %s", skill)
		assert.LessOrEqual(t, r, 1.0, "skill %s", skill)
	}
}

func TestSalaryCorrelationSkipsRareSkills(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular", "COBOL": "Expert"}), withSalary(30000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(15000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(16000)),
		record(withSkills(map[string]string{"SQL": "Regular"}), withSalary(12000)),
	}

	corr := SalaryCorrelation(records)

	assert.NotContains(t, corr, "COBOL")
	assert.NotContains(t, corr, "SQL")
	assert.Contains(t, corr, "Go")
}

func TestSalaryCorrelationSkipsZeroVariance(t *testing.T) {
	// Every salaried record requires Go, so the indicator never varies.
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(10000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(12000)),
		record(withSkills(map[string]string{"Go": "Regular"}), withSalary(14000)),
	}

	assert.Empty(t, SalaryCorrelation(records))
}

func TestSalaryCorrelationIgnoresUnsalariedRecords(t *testing.T) {
	records := []domain.JobRecord{
		record(withSkills(map[string]string{"Go": "Regular"})),
		record(withSkills(map[string]string{"Go": "Regular"})),
		record(withSkills(map[string]string{"Go": "Regular"})),
	}

	assert.Empty(t, SalaryCorrelation(records))
}
