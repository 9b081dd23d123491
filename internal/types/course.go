package types

// Course difficulty levels accepted by the pipeline.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course represents a learning course candidate.
// AIMatchScore is populated by the ranker, never by a candidate source; a nil
// score sorts as zero.
type Course struct {
	ID           string   `json:"id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Platform     string   `json:"platform" validate:"required"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration     string   `json:"duration" validate:"required"`
	Skills       []string `json:"skills" validate:"required"`
	URL          string   `json:"url" validate:"required,url"`
	Price        string   `json:"price,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	AIMatchScore *int     `json:"aiMatchScore,omitempty"`
}

// MatchScore returns the attached match score, treating a missing score as 0.
func (c *Course) MatchScore() int {
	if c.AIMatchScore == nil {
		return 0
	}
	return *c.AIMatchScore
}
