package repository

import (
	"context"
	"time"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// Metadata describes the persisted dataset as a whole
type Metadata struct {
	TotalRecords    int       `json:"total_records"`
	CategoriesCount int       `json:"categories_count"`
	Categories      []string  `json:"categories"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Storage defines the persistence interface for the dataset: the full
// table, the per-category partitions, and the dataset metadata
type Storage interface {
	LoadMain(ctx context.Context) ([]domain.JobRecord, error)
	LoadCategories(ctx context.Context) (map[string][]domain.JobRecord, error)
	SaveMain(ctx context.Context, records []domain.JobRecord) error
	SaveCategories(ctx context.Context, partitions map[string][]domain.JobRecord) error
	SaveMetadata(ctx context.Context, meta Metadata) error
	ClearAll(ctx context.Context) error
}
