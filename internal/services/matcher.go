package services

import (
	"sort"
	"strings"

	"alfredoptarigan/resume-ats/internal/models"
)

// ParseSkills splits a comma separated skill list. Entries are trimmed and keep
// their case; blank entries are dropped so a trailing comma cannot match every
// document.
func ParseSkills(input string) []string {
	skills := []string{}
	for _, part := range strings.Split(input, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// MatchScore is the percentage of skills found as case-insensitive substrings of
// text. An empty skill list scores 0.
func MatchScore(text string, skills []string) float64 {
	matched, _ := MatchedSkills(text, skills)
	return scorePercent(len(matched), len(skills))
}

func scorePercent(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * 100
}

// MatchedSkills partitions skills into those contained in text and those missing,
// preserving input order. Matching is plain substring containment: no stemming and
// no synonyms, so "Machine Learning" does not match "machine-learning".
func MatchedSkills(text string, skills []string) (matched, missing []string) {
	lowered := strings.ToLower(text)
	matched = []string{}
	missing = []string{}
	for _, skill := range skills {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// RankResults returns a copy of results ordered by score, highest first. Equal
// scores keep their upload order.
func RankResults(results []models.MatchResult) []models.MatchResult {
	ranked := make([]models.MatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
