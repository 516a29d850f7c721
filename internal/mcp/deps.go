package mcp

import (
	"github.com/honeycarbs/skillviz/internal/domain/dataset"
	"github.com/honeycarbs/skillviz/internal/export"
	"github.com/honeycarbs/skillviz/internal/mcp/tools"
	"github.com/honeycarbs/skillviz/pkg/logging"
	pkgneo4j "github.com/honeycarbs/skillviz/pkg/neo4j"
)

// Resources bundles everything the tool handlers need. Exporter is nil
// when Google Sheets is not configured; the tool reports that at call
// time instead of failing startup.
type Resources struct {
	Dataset     *dataset.Service
	Exporter    *export.Exporter
	Neo4jClient *pkgneo4j.Client
	Logger      *logging.Logger
}

// ToolOptions returns the full tool set wired against the resources
func (r *Resources) ToolOptions() []tools.Option {
	var exporter tools.SnapshotExporter
	if r.Exporter != nil {
		exporter = r.Exporter
	}

	return []tools.Option{
		tools.WithIngestJobs(r.Dataset, r.Logger),
		tools.WithSkillAnalytics(r.Dataset, r.Logger),
		tools.WithSkillRankings(r.Dataset, r.Logger),
		tools.WithMarketSummary(r.Dataset, r.Logger),
		tools.WithRegressionAnalysis(r.Dataset, r.Logger),
		tools.WithSalaryCorrelation(r.Dataset, r.Logger),
		tools.WithListCategories(r.Dataset, r.Logger),
		tools.WithDeleteCategory(r.Dataset, r.Logger),
		tools.WithClearData(r.Dataset, r.Logger),
		tools.WithSheetsExport(r.Dataset, exporter, r.Logger),
	}
}
