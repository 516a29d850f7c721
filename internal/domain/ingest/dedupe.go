package ingest

import (
	"github.com/honeycarbs/skillviz/internal/domain"
)

// Dedupe returns the subset of candidates whose identity key is not
// already present in existing, preserving candidate order. It is a pure
// set difference: candidates are only checked against existing, never
// against each other.
func Dedupe(candidates, existing []domain.JobRecord) []domain.JobRecord {
	if len(existing) == 0 {
		return candidates
	}

	seen := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		seen[rec.IdentityKey()] = struct{}{}
	}

	unique := make([]domain.JobRecord, 0, len(candidates))
	for _, rec := range candidates {
		if _, dup := seen[rec.IdentityKey()]; dup {
			continue
		}
		unique = append(unique, rec)
	}

	return unique
}
