package tools

import (
	"context"

	"github.com/honeycarbs/skillviz/internal/domain"
	"github.com/honeycarbs/skillviz/internal/domain/analytics"
	"github.com/honeycarbs/skillviz/internal/domain/dataset"
	"github.com/honeycarbs/skillviz/internal/repository"
)

// Dataset is the dataset surface the tools drive
type Dataset interface {
	Ingest(ctx context.Context, category string, raw []map[string]any, replace bool) (domain.IngestStats, error)
	DeleteCategory(ctx context.Context, category string) error
	Clear(ctx context.Context) error
	Categories() []string
	TotalRecords() int
	Snapshot() *dataset.Snapshot
	GuestSnapshot() *dataset.Snapshot
	SkillDetail(skill string) analytics.SkillDetail
	SkillSeniorityBreakdown(skill string) []analytics.SkillSeniorityStat
	SkillSalaryByLevel(skill string) []analytics.LevelSalary
	SkillTrend(skill string) []analytics.TrendPoint
	Regression(predictor, targetSkill string) analytics.RegressionResult
	Metadata() repository.Metadata
}

// SnapshotExporter pushes analytics snapshots to an external spreadsheet
type SnapshotExporter interface {
	ExportSnapshot(ctx context.Context, snap *dataset.Snapshot, tab string) (int, error)
}
