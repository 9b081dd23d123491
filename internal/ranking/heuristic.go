package ranking

import (
	"strings"

	"github.com/jonathan/skill-advisor/internal/skills"
	"github.com/jonathan/skill-advisor/internal/types"
)

// Heuristic score contributions per (course skill, missing skill) pair.
// Contributions compound across pairs and are deliberately uncapped so a
// course covering several gaps outranks one covering a single gap.
const (
	exactMatchScore   = 100
	relatedMatchScore = 75
)

// heuristicScore computes a deterministic relevance score for a course against
// the user's missing skills. Every pair contributes independently: an exact
// case-insensitive match scores full, a merely related pair scores partial.
func heuristicScore(course types.Course, missingSkills []string) int {
	score := 0
	for _, taught := range course.Skills {
		for _, gap := range missingSkills {
			switch {
			case strings.EqualFold(strings.TrimSpace(taught), strings.TrimSpace(gap)):
				score += exactMatchScore
			case skills.Related(taught, gap):
				score += relatedMatchScore
			}
		}
	}
	return score
}
