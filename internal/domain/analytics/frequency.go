// Package analytics provides the pure aggregation functions of the
// engine. Every function takes a record slice, never mutates it, and
// returns an empty result for empty or degenerate input.
package analytics

import (
	"fmt"
	"sort"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// SkillFrequency counts how many records require each skill, sorted by
// count descending with an alphabetical tiebreak.
func SkillFrequency(records []domain.JobRecord) []SkillCount {
	counts := make(map[string]int)
	for _, rec := range records {
		for skill := range rec.Skills {
			counts[skill]++
		}
	}

	return sortedCounts(counts)
}

// SkillCombinations counts unordered skill pairs across records with at
// least two skills. Pairs below minFrequency are dropped.
func SkillCombinations(records []domain.JobRecord, minFrequency int) []SkillCombination {
	counts := make(map[string]int)
	for _, rec := range records {
		if len(rec.Skills) < 2 {
			continue
		}
		names := rec.SkillNames()
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				counts[fmt.Sprintf("%s + %s", names[i], names[j])]++
			}
		}
	}

	out := make([]SkillCombination, 0, len(counts))
	for pair, count := range counts {
		if count < minFrequency {
			continue
		}
		out = append(out, SkillCombination{Pair: pair, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Pair < out[j].Pair
	})

	return out
}

func sortedCounts(counts map[string]int) []SkillCount {
	out := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		out = append(out, SkillCount{Skill: skill, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})

	return out
}
