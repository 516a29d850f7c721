// Package neo4j persists the dataset as a job/skill graph.
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/skillviz/internal/domain"
	"github.com/honeycarbs/skillviz/internal/repository"

	pkgneo4j "github.com/honeycarbs/skillviz/pkg/neo4j"
)

// Ensure Store implements repository.Storage
var _ repository.Storage = (*Store)(nil)

// Store implements repository.Storage on a Neo4j graph. Records become
// :Job nodes with :REQUIRES edges to :Skill nodes; the proficiency level
// lives on the edge. Each record carries its partition in the category
// property, so the partitions need no separate storage.
type Store struct {
	client *pkgneo4j.Client
}

// NewStore creates a Store with a Neo4j client
func NewStore(client *pkgneo4j.Client) *Store {
	return &Store{
		client: client,
	}
}

// LoadMain loads the full record table
func (s *Store) LoadMain(ctx context.Context) ([]domain.JobRecord, error) {
	return s.load(ctx, "")
}

// LoadCategories groups the stored records by their category property
func (s *Store) LoadCategories(ctx context.Context) (map[string][]domain.JobRecord, error) {
	records, err := s.load(ctx, "")
	if err != nil {
		return nil, err
	}

	partitions := make(map[string][]domain.JobRecord)
	for _, rec := range records {
		partitions[rec.Category] = append(partitions[rec.Category], rec)
	}
	return partitions, nil
}

// SaveMain replaces the stored graph with the given records
func (s *Store) SaveMain(ctx context.Context, records []domain.JobRecord) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `MATCH (j:Job) DETACH DELETE j`, nil); err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		result, err := tx.Run(ctx, upsertQuery, map[string]any{"records": recordsData(records)})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// SaveCategories replaces each given category's stored records
func (s *Store) SaveCategories(ctx context.Context, partitions map[string][]domain.JobRecord) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for category, records := range partitions {
			if _, err := tx.Run(ctx,
				`MATCH (j:Job {category: $category}) DETACH DELETE j`,
				map[string]any{"category": category}); err != nil {
				return nil, err
			}
			if len(records) == 0 {
				continue
			}
			if _, err := tx.Run(ctx, upsertQuery, map[string]any{"records": recordsData(records)}); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// SaveMetadata upserts the singleton dataset metadata node
func (s *Store) SaveMetadata(ctx context.Context, meta repository.Metadata) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (m:DatasetMeta {id: "dataset"})
		SET m.totalRecords = $totalRecords,
		    m.categoriesCount = $categoriesCount,
		    m.categories = $categories,
		    m.lastUpdated = datetime({epochMillis: $lastUpdated})
	`

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{
			"totalRecords":    meta.TotalRecords,
			"categoriesCount": meta.CategoriesCount,
			"categories":      meta.Categories,
			"lastUpdated":     meta.LastUpdated.UnixMilli(),
		})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

// ClearAll removes every job, orphaned skill and the metadata node
func (s *Store) ClearAll(ctx context.Context) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, q := range []string{
			`MATCH (j:Job) DETACH DELETE j`,
			`MATCH (s:Skill) WHERE NOT (s)<-[:REQUIRES]-() DELETE s`,
			`MATCH (m:DatasetMeta) DELETE m`,
		} {
			if _, err := tx.Run(ctx, q, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("clear graph: %w", err)
	}
	return nil
}

const upsertQuery = `
	UNWIND $records AS rec
	MERGE (j:Job {id: rec.id})
	SET j.role = rec.role,
	    j.company = rec.company,
	    j.city = rec.city,
	    j.seniority = rec.seniority,
	    j.employmentType = rec.employmentType,
	    j.jobTimeType = rec.jobTimeType,
	    j.remote = rec.remote,
	    j.salaryText = rec.salaryText,
	    j.salaryMin = rec.salaryMin,
	    j.salaryMax = rec.salaryMax,
	    j.salaryAvg = rec.salaryAvg,
	    j.salaryCurrency = rec.salaryCurrency,
	    j.publishedDate = rec.publishedDate,
	    j.category = rec.category,
	    j.uploadedAt = datetime({epochMillis: rec.uploadedAt}),
	    j.skillsCount = rec.skillsCount,
	    j.url = rec.url
	WITH j, rec
	FOREACH (skill IN rec.skills |
		MERGE (s:Skill {name: skill.name})
		MERGE (j)-[r:REQUIRES]->(s)
		SET r.level = skill.level
	)
`

func recordsData(records []domain.JobRecord) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		skills := make([]map[string]any, 0, len(rec.Skills))
		for _, name := range rec.SkillNames() {
			skills = append(skills, map[string]any{
				"name":  name,
				"level": rec.Skills[name],
			})
		}

		data := map[string]any{
			"id":             rec.ID.String(),
			"role":           rec.Role,
			"company":        rec.Company,
			"city":           rec.City,
			"seniority":      rec.Seniority,
			"employmentType": rec.EmploymentType,
			"jobTimeType":    rec.JobTimeType,
			"remote":         nil,
			"salaryText":     rec.SalaryText,
			"salaryMin":      nil,
			"salaryMax":      nil,
			"salaryAvg":      nil,
			"salaryCurrency": rec.SalaryCurrency,
			"publishedDate":  nil,
			"category":       rec.Category,
			"uploadedAt":     rec.UploadedAt.UnixMilli(),
			"skillsCount":    rec.SkillsCount,
			"url":            rec.URL,
			"skills":         skills,
		}
		if rec.Remote != nil {
			data["remote"] = *rec.Remote
		}
		if rec.SalaryMin != nil {
			data["salaryMin"] = *rec.SalaryMin
		}
		if rec.SalaryMax != nil {
			data["salaryMax"] = *rec.SalaryMax
		}
		if rec.SalaryAvg != nil {
			data["salaryAvg"] = *rec.SalaryAvg
		}
		if rec.PublishedDate != nil {
			data["publishedDate"] = rec.PublishedDate.Format("2006-01-02")
		}

		out = append(out, data)
	}
	return out
}

func (s *Store) load(ctx context.Context, category string) ([]domain.JobRecord, error) {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)
		WHERE $category = "" OR j.category = $category
		OPTIONAL MATCH (j)-[r:REQUIRES]->(s:Skill)
		RETURN j, collect({name: s.name, level: r.level}) AS skills
		ORDER BY j.uploadedAt, j.id
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, query, map[string]any{"category": category})
	})
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	rows := result.(neo4j.ResultWithContext)
	records := make([]domain.JobRecord, 0)

	for rows.Next(ctx) {
		row := rows.Record()

		jobVal, ok := row.Get("j")
		if !ok {
			continue
		}
		node, ok := jobVal.(neo4j.Node)
		if !ok {
			continue
		}

		rec, err := hydrate(node)
		if err != nil {
			continue
		}

		if skillsVal, ok := row.Get("skills"); ok {
			if entries, ok := skillsVal.([]any); ok {
				for _, entry := range entries {
					m, ok := entry.(map[string]any)
					if !ok {
						continue
					}
					name, _ := m["name"].(string)
					level, _ := m["level"].(string)
					if name != "" {
						rec.Skills[name] = level
					}
				}
			}
		}
		rec.SkillsCount = len(rec.Skills)

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	return records, nil
}

func hydrate(node neo4j.Node) (domain.JobRecord, error) {
	props := node.Props

	id, err := uuid.Parse(stringProp(props, "id"))
	if err != nil {
		return domain.JobRecord{}, err
	}

	rec := domain.JobRecord{
		ID:             id,
		Role:           stringProp(props, "role"),
		Company:        stringProp(props, "company"),
		City:           stringProp(props, "city"),
		Seniority:      stringProp(props, "seniority"),
		Skills:         make(map[string]string),
		EmploymentType: stringProp(props, "employmentType"),
		JobTimeType:    stringProp(props, "jobTimeType"),
		SalaryText:     stringProp(props, "salaryText"),
		SalaryCurrency: stringProp(props, "salaryCurrency"),
		Category:       stringProp(props, "category"),
		URL:            stringProp(props, "url"),
	}

	if v, ok := props["remote"].(bool); ok {
		rec.Remote = &v
	}
	rec.SalaryMin = floatProp(props, "salaryMin")
	rec.SalaryMax = floatProp(props, "salaryMax")
	rec.SalaryAvg = floatProp(props, "salaryAvg")

	if v := stringProp(props, "publishedDate"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			rec.PublishedDate = &t
		}
	}

	if v, ok := props["uploadedAt"]; ok {
		switch dt := v.(type) {
		case time.Time:
			rec.UploadedAt = dt
		case neo4j.LocalDateTime:
			rec.UploadedAt = dt.Time()
		}
	}

	return rec, nil
}

func stringProp(props map[string]any, key string) string {
	v, _ := props[key].(string)
	return v
}

func floatProp(props map[string]any, key string) *float64 {
	switch v := props[key].(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
