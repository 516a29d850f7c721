package analytics

import (
	"sort"

	"github.com/honeycarbs/skillviz/internal/domain"
)

// Fixed proficiency weights. Language-certificate labels (B1..C2) appear
// in real uploads alongside seniority labels.
var levelWeights = map[string]int{
	"Beginner": 1,
	"Regular":  2,
	"Advanced": 3,
	"Senior":   4,
	"Expert":   5,
	"B1":       1,
	"B2":       2,
	"C1":       3,
	"C2":       4,
}

const defaultLevelWeight = 2

// LevelWeight maps a proficiency label to its fixed weight; unknown
// labels get the default.
func LevelWeight(level string) int {
	if w, ok := levelWeights[level]; ok {
		return w
	}
	return defaultLevelWeight
}

// SkillWeights scores each skill by frequency times required proficiency.
// The importance score equals the accumulated total weight; the result is
// sorted by it, descending.
func SkillWeights(records []domain.JobRecord) []SkillWeight {
	byName := make(map[string]*SkillWeight)
	for _, rec := range records {
		for skill, level := range rec.Skills {
			entry, ok := byName[skill]
			if !ok {
				entry = &SkillWeight{Skill: skill, Levels: make(map[string]int)}
				byName[skill] = entry
			}
			entry.Frequency++
			entry.TotalWeight += LevelWeight(level)
			entry.Levels[level]++
		}
	}

	out := make([]SkillWeight, 0, len(byName))
	for _, entry := range byName {
		entry.ImportanceScore = entry.TotalWeight
		entry.AvgWeight = float64(entry.TotalWeight) / float64(entry.Frequency)
		out = append(out, *entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalWeight != out[j].TotalWeight {
			return out[i].TotalWeight > out[j].TotalWeight
		}
		return out[i].Skill < out[j].Skill
	})

	return out
}
