package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordID uniquely identifies an ingested job record
type RecordID = uuid.UUID

// JobRecord is the canonical, post-normalization job posting entity.
// Skills maps canonical skill names to proficiency-level labels.
type JobRecord struct {
	ID             RecordID          `json:"id"`
	Role           string            `json:"role"`
	Company        string            `json:"company"`
	City           string            `json:"city"`
	Seniority      string            `json:"seniority"`
	Skills         map[string]string `json:"skills"`
	EmploymentType string            `json:"employment_type,omitempty"`
	JobTimeType    string            `json:"job_time_type,omitempty"`
	Remote         *bool             `json:"remote,omitempty"`
	SalaryText     string            `json:"salary_text,omitempty"`
	SalaryMin      *float64          `json:"salary_min,omitempty"`
	SalaryMax      *float64          `json:"salary_max,omitempty"`
	SalaryAvg      *float64          `json:"salary_avg,omitempty"`
	SalaryCurrency string            `json:"salary_currency,omitempty"`
	PublishedDate  *time.Time        `json:"published_date,omitempty"`
	Category       string            `json:"category"`
	UploadedAt     time.Time         `json:"upload_timestamp"`
	SkillsCount    int               `json:"skills_count"`
	URL            string            `json:"url,omitempty"`
}

// SkillNames returns the record's skill names sorted alphabetically.
func (r JobRecord) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for name := range r.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSkill reports whether the record requires the given skill.
func (r JobRecord) HasSkill(name string) bool {
	_, ok := r.Skills[name]
	return ok
}

// IdentityKey is the logical duplicate-detection key: role, company, city
// and the sorted skill names. Proficiency levels are excluded on purpose;
// two postings requiring the same skill set at different levels are the
// same posting.
func (r JobRecord) IdentityKey() string {
	parts := []string{r.Role, r.Company, r.City, strings.Join(r.SkillNames(), "|")}
	return strings.ToLower(strings.Join(parts, "_"))
}

// IngestStats summarizes the outcome of one ingestion batch
type IngestStats struct {
	TotalRecords      int    `json:"total_records"`
	NewRecords        int    `json:"new_records_added"`
	DuplicatesRemoved int    `json:"duplicates_removed"`
	Category          string `json:"category"`
}
