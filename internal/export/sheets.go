// Package export flattens analytics snapshots into spreadsheet tables.
package export

import (
	"context"
	"fmt"

	"github.com/honeycarbs/skillviz/internal/domain/dataset"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

const defaultTab = "Analytics"

// SheetWriter is the subset of the Sheets client the exporter needs
type SheetWriter interface {
	ClearValues(ctx context.Context, spreadsheetID, range_ string) error
	UpdateValues(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error
}

// Exporter writes analytics snapshots to a Google Sheets tab
type Exporter struct {
	writer        SheetWriter
	spreadsheetID string
	log           *logging.Logger
}

// NewExporter creates an Exporter bound to one spreadsheet
func NewExporter(writer SheetWriter, spreadsheetID string, log *logging.Logger) (*Exporter, error) {
	if writer == nil {
		return nil, fmt.Errorf("export: sheet writer is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("export: spreadsheet ID is required")
	}
	return &Exporter{
		writer:        writer,
		spreadsheetID: spreadsheetID,
		log:           log,
	}, nil
}

// ExportSnapshot clears the tab and writes the snapshot's ranking,
// weight and summary tables. It returns the number of rows written.
func (e *Exporter) ExportSnapshot(ctx context.Context, snap *dataset.Snapshot, tab string) (int, error) {
	if snap == nil {
		return 0, fmt.Errorf("export: snapshot is nil")
	}
	if tab == "" {
		tab = defaultTab
	}

	rows := snapshotRows(snap)

	if err := e.writer.ClearValues(ctx, e.spreadsheetID, tab); err != nil {
		return 0, fmt.Errorf("clear tab %s: %w", tab, err)
	}

	writeRange := fmt.Sprintf("%s!A1", tab)
	if err := e.writer.UpdateValues(ctx, e.spreadsheetID, writeRange, rows); err != nil {
		return 0, fmt.Errorf("write tab %s: %w", tab, err)
	}

	if e.log != nil {
		e.log.Info("snapshot exported",
			"spreadsheet_id", e.spreadsheetID,
			"tab", tab,
			"rows", len(rows))
	}
	return len(rows), nil
}

func snapshotRows(snap *dataset.Snapshot) [][]interface{} {
	rows := [][]interface{}{
		{"Market Summary"},
		{"Total jobs", snap.Summary.TotalJobs},
		{"Unique companies", snap.Summary.UniqueCompanies},
		{"Unique cities", snap.Summary.UniqueCities},
		{"Avg skills per job", snap.Summary.AvgSkillsPerJob},
		{"Top seniority", snap.Summary.TopSeniority},
		{"Top city", snap.Summary.TopCity},
		{"Top skill", snap.Summary.TopSkill},
	}

	rows = append(rows, []interface{}{}, []interface{}{"Skill", "Offers"})
	for _, sc := range snap.Skills {
		rows = append(rows, []interface{}{sc.Skill, sc.Count})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Skill", "Frequency", "Total Weight", "Avg Weight", "Importance"})
	for _, sw := range snap.Weights {
		rows = append(rows, []interface{}{sw.Skill, sw.Frequency, sw.TotalWeight, sw.AvgWeight, sw.ImportanceScore})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Skill Pair", "Offers"})
	for _, combo := range snap.Combinations {
		rows = append(rows, []interface{}{combo.Pair, combo.Count})
	}

	return rows
}
