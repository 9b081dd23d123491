package types

// GapAnalysis is the ordered result of a skill-gap derivation.
// Index 0 of MissingSkills is the highest-priority gap. Both lists may be
// empty; an empty analysis is a valid terminal state, not an error.
type GapAnalysis struct {
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// EmptyGapAnalysis returns the neutral analysis used when generation degrades.
func EmptyGapAnalysis() *GapAnalysis {
	return &GapAnalysis{
		MissingSkills:   []string{},
		Recommendations: []string{},
	}
}

// IsEmpty reports whether the analysis carries no skills and no recommendations.
func (g *GapAnalysis) IsEmpty() bool {
	return g == nil || (len(g.MissingSkills) == 0 && len(g.Recommendations) == 0)
}
