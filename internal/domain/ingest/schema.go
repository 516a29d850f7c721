package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaKind identifies which of the two historical upload shapes a batch
// uses. The legacy shape carries requiredSkills as a plain list and
// experienceLevel; the current shape carries a skills map and seniority.
type SchemaKind int

const (
	SchemaCurrent SchemaKind = iota
	SchemaLegacy
)

func (k SchemaKind) String() string {
	if k == SchemaLegacy {
		return "legacy"
	}
	return "current"
}

// ValidationError reports every required column missing from an upload
// batch. The batch is rejected atomically.
type ValidationError struct {
	MissingColumns []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// Recognized key aliases per canonical column, matched case-insensitively.
var columnAliases = map[string][]string{
	"role":      {"role", "title"},
	"company":   {"company", "companyname"},
	"city":      {"city"},
	"seniority": {"seniority", "experiencelevel"},
	"skills":    {"skills", "requiredskills"},
}

var requiredColumns = []string{"role", "company", "city", "seniority", "skills"}

// detectSchema validates the batch column set and classifies its shape.
// The column set is the union of keys across all records, mirroring how a
// tabular import would see the batch.
func detectSchema(raw []map[string]any) (SchemaKind, error) {
	columns := make(map[string]bool)
	for _, rec := range raw {
		for key := range rec {
			columns[strings.ToLower(strings.TrimSpace(key))] = true
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		found := false
		for _, alias := range columnAliases[col] {
			if columns[alias] {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return SchemaCurrent, &ValidationError{MissingColumns: missing}
	}

	if !columns["skills"] && columns["requiredskills"] {
		return SchemaLegacy, nil
	}
	return SchemaCurrent, nil
}

// field performs a case-insensitive alias lookup on one raw record.
func field(rec map[string]any, aliases ...string) (any, bool) {
	for key, val := range rec {
		lower := strings.ToLower(strings.TrimSpace(key))
		for _, alias := range aliases {
			if lower == alias {
				return val, true
			}
		}
	}
	return nil, false
}

func stringField(rec map[string]any, aliases ...string) string {
	val, ok := field(rec, aliases...)
	if !ok {
		return ""
	}
	s, _ := val.(string)
	return s
}

func boolField(rec map[string]any, aliases ...string) *bool {
	val, ok := field(rec, aliases...)
	if !ok {
		return nil
	}
	b, ok := val.(bool)
	if !ok {
		return nil
	}
	return &b
}
