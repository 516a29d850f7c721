package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func currentRecord() map[string]any {
	return map[string]any{
		"role":      "Python Developer",
		"company":   "TechCorp",
		"city":      "Warsaw",
		"seniority": "Senior",
		"skills":    map[string]any{"Python": "Senior", "Django": "Regular"},
	}
}

func TestNormalizeBatchMissingColumns(t *testing.T) {
	_, err := NormalizeBatch([]map[string]any{{"foo": "bar"}}, "", testNow)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"city", "company", "role", "seniority", "skills"}, verr.MissingColumns)
}

func TestNormalizeBatchReportsOnlyAbsentColumns(t *testing.T) {
	_, err := NormalizeBatch([]map[string]any{{
		"role":    "Dev",
		"company": "Acme",
		"city":    "Warsaw",
	}}, "", testNow)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"seniority", "skills"}, verr.MissingColumns)
}

func TestNormalizeBatchEmptyInput(t *testing.T) {
	records, err := NormalizeBatch(nil, "go", testNow)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalizeBatchCurrentShape(t *testing.T) {
	rec := currentRecord()
	rec["salary"] = "10 000 - 16 000 PLN"
	rec["published_date"] = "29.08.2025"
	rec["remote"] = true
	rec["url"] = "https://example.com/job/123"

	records, err := NormalizeBatch([]map[string]any{rec}, "Python ", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Python Developer", got.Role)
	assert.Equal(t, "TechCorp", got.Company)
	assert.Equal(t, "Warsaw", got.City)
	assert.Equal(t, "Senior", got.Seniority)
	assert.Equal(t, map[string]string{"Python": "Senior", "Django": "Regular"}, got.Skills)
	assert.Equal(t, 2, got.SkillsCount)
	assert.Equal(t, "python", got.Category)
	assert.Equal(t, testNow, got.UploadedAt)
	assert.NotEqual(t, "", got.ID.String())

	require.NotNil(t, got.SalaryMin)
	assert.Equal(t, 10000.0, *got.SalaryMin)
	assert.Equal(t, 16000.0, *got.SalaryMax)
	assert.Equal(t, 13000.0, *got.SalaryAvg)
	assert.Equal(t, "PLN", got.SalaryCurrency)

	require.NotNil(t, got.PublishedDate)
	assert.Equal(t, time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC), *got.PublishedDate)

	require.NotNil(t, got.Remote)
	assert.True(t, *got.Remote)
	assert.Equal(t, "https://example.com/job/123", got.URL)
}

func TestNormalizeBatchLegacyShape(t *testing.T) {
	records, err := NormalizeBatch([]map[string]any{{
		"Title":           "Data Engineer",
		"CompanyName":     "Example Company",
		"City":            "krakow",
		"ExperienceLevel": "senior",
		"RequiredSkills":  []any{"ETL", "java", "SQL"},
		"publishedAt":     "2025-08-18T13:00:28.333Z",
		"link":            "https://example.com/job-offer",
	}}, "", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Data Engineer", got.Role)
	assert.Equal(t, "Krakow", got.City)
	assert.Equal(t, "Senior", got.Seniority)
	assert.Equal(t, map[string]string{"Etl": "Regular", "Java": "Regular", "Sql": "Regular"}, got.Skills)
	assert.Equal(t, "default", got.Category)
	require.NotNil(t, got.PublishedDate)
	assert.Equal(t, 2025, got.PublishedDate.Year())
	assert.Equal(t, "https://example.com/job-offer", got.URL)
}

func TestNormalizeBatchCanonicalizesSkillAliases(t *testing.T) {
	rec := currentRecord()
	rec["skills"] = map[string]any{
		"javascript": "senior",
		"nodejs":     "regular",
		"AWS":        "b2",
		"postgresql": "advanced",
	}

	records, err := NormalizeBatch([]map[string]any{rec}, "", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0].Skills
	assert.Equal(t, map[string]string{
		"JavaScript": "Senior",
		"Node.js":    "Regular",
		"AWS":        "B2",
		"PostgreSQL": "Advanced",
	}, got)
}

func TestNormalizeBatchDropsInvalidRows(t *testing.T) {
	bad1 := currentRecord()
	bad1["role"] = "   "
	bad2 := currentRecord()
	bad2["skills"] = "not a mapping"
	good := currentRecord()

	records, err := NormalizeBatch([]map[string]any{bad1, bad2, good}, "", testNow)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNormalizeBatchUnparseableDateBecomesNil(t *testing.T) {
	rec := currentRecord()
	rec["published_date"] = "someday soon"

	records, err := NormalizeBatch([]map[string]any{rec}, "", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].PublishedDate)
}

func TestNormalizeBatchRecordCategoryOverridesBatch(t *testing.T) {
	rec := currentRecord()
	rec["category"] = " DevOps "

	records, err := NormalizeBatch([]map[string]any{rec}, "python", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "devops", records[0].Category)
}

func TestMonthlySalaryNotConvertedTwice(t *testing.T) {
	rec := currentRecord()
	rec["salary"] = "13440 PLN"

	records, err := NormalizeBatch([]map[string]any{rec}, "", testNow)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].SalaryAvg)
	assert.Equal(t, 13440.0, *records[0].SalaryAvg)
}
