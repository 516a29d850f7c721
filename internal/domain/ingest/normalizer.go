package ingest

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// Common alias variants folded into one canonical skill spelling, applied
// after trimming and title-casing.
var skillAliases = map[string]string{
	"Javascript": "JavaScript",
	"Nodejs":     "Node.js",
	"Reactjs":    "React",
	"Vuejs":      "Vue.js",
	"Angularjs":  "Angular",
	"Postgresql": "PostgreSQL",
	"Mysql":      "MySQL",
	"Mongodb":    "MongoDB",
	"Aws":        "AWS",
	"Gcp":        "GCP",
	"Html":       "HTML",
	"Css":        "CSS",
	"Api":        "API",
	"Rest":       "REST",
	"Json":       "JSON",
	"Xml":        "XML",
}

var skillJunk = regexp.MustCompile(`[^\w\s+#.-]`)

const (
	publishedDateLayout = "02.01.2006"
	isoDateLayout       = "2006-01-02"
)

// NormalizeBatch converts one raw upload batch into canonical records.
// Column-level validation fails the whole batch with *ValidationError;
// individual rows missing role/company/skills are dropped silently.
func NormalizeBatch(raw []map[string]any, category string, now time.Time) ([]domain.JobRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	kind, err := detectSchema(raw)
	if err != nil {
		return nil, err
	}

	batchCategory := NormalizeCategory(category)

	records := make([]domain.JobRecord, 0, len(raw))
	for _, rec := range raw {
		normalized, ok := normalizeRecord(rec, kind, batchCategory, now)
		if !ok {
			continue
		}
		records = append(records, normalized)
	}

	return records, nil
}

func normalizeRecord(rec map[string]any, kind SchemaKind, batchCategory string, now time.Time) (domain.JobRecord, bool) {
	role := strings.TrimSpace(stringField(rec, "role", "title"))
	company := strings.TrimSpace(stringField(rec, "company", "companyname"))
	if role == "" || company == "" {
		return domain.JobRecord{}, false
	}

	skills, ok := normalizeSkills(rec, kind)
	if !ok {
		return domain.JobRecord{}, false
	}

	out := domain.JobRecord{
		ID:             uuid.New(),
		Role:           role,
		Company:        company,
		City:           titleWords(stringField(rec, "city")),
		Seniority:      titleWords(stringField(rec, "seniority", "experiencelevel")),
		Skills:         skills,
		EmploymentType: strings.TrimSpace(stringField(rec, "employment_type")),
		JobTimeType:    strings.TrimSpace(stringField(rec, "job_time_type", "workingtime")),
		Remote:         boolField(rec, "remote"),
		Category:       batchCategory,
		UploadedAt:     now,
		SkillsCount:    len(skills),
		URL:            strings.TrimSpace(stringField(rec, "url", "link")),
	}

	if cat := stringField(rec, "category"); strings.TrimSpace(cat) != "" {
		out.Category = NormalizeCategory(cat)
	}

	if text := strings.TrimSpace(stringField(rec, "salary")); text != "" {
		out.SalaryText = text
		parsed := parseSalary(text)
		out.SalaryMin = parsed.min
		out.SalaryMax = parsed.max
		out.SalaryAvg = parsed.avg
		out.SalaryCurrency = parsed.currency
	}

	if date := strings.TrimSpace(stringField(rec, "published_date", "publishedat")); date != "" {
		out.PublishedDate = parseDate(date)
	}

	return out, true
}

// normalizeSkills builds the canonical skill map. The current shape maps
// skill name to proficiency label; the legacy shape is a bare name list,
// which enters the map at "Regular" (the unknown-level default weight).
func normalizeSkills(rec map[string]any, kind SchemaKind) (map[string]string, bool) {
	val, ok := field(rec, "skills", "requiredskills")
	if !ok || val == nil {
		return nil, false
	}

	out := make(map[string]string)

	if kind == SchemaLegacy {
		list, ok := val.([]any)
		if !ok {
			return nil, false
		}
		for _, item := range list {
			name, ok := item.(string)
			if !ok {
				continue
			}
			if canonical := canonicalSkillName(name); canonical != "" {
				out[canonical] = "Regular"
			}
		}
		return out, true
	}

	mapping, ok := val.(map[string]any)
	if !ok {
		return nil, false
	}
	for name, levelVal := range mapping {
		canonical := canonicalSkillName(name)
		if canonical == "" {
			continue
		}
		level, _ := levelVal.(string)
		out[canonical] = titleWords(level)
	}
	return out, true
}

func canonicalSkillName(name string) string {
	clean := skillJunk.ReplaceAllString(strings.TrimSpace(name), "")
	clean = titleWords(clean)
	if alias, ok := skillAliases[clean]; ok {
		return alias
	}
	return clean
}

// parseDate accepts DD.MM.YYYY with an ISO-8601 fallback for back-compat.
// Unparseable dates become nil without failing the batch.
func parseDate(value string) *time.Time {
	for _, layout := range []string{publishedDateLayout, time.RFC3339, isoDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// NormalizeCategory lowercases and trims a category name; blank input
// falls back to "default".
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return "default"
	}
	return category
}

// titleWords trims and capitalizes the first letter of each
// whitespace-separated word, lowercasing the rest.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
