// Package ranking orders course candidates by relevance to the user's gap.
// Scoring is one batched generative call; any deviation from the expected
// response shape falls back to a deterministic skill-overlap heuristic.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/prompts"
	"github.com/jonathan/skill-advisor/internal/types"
)

// Ranker scores and orders course candidates for a user context.
type Ranker struct {
	client  llm.Client
	verbose bool
}

// NewRanker creates a ranker. The client must not be nil.
func NewRanker(client llm.Client) (*Ranker, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	return &Ranker{client: client}, nil
}

// SetVerbose enables progress logging.
func (r *Ranker) SetVerbose(v bool) {
	r.verbose = v
}

// Rank attaches a match score to every course and returns them sorted
// descending by score with stable ties. The whole batch is scored in a single
// model call; if the response is not a well-formed integer array with exactly
// one entry per course, every course is rescored with the heuristic instead.
// Rank never fails: the fallback absorbs all generative errors.
func (r *Ranker) Rank(ctx context.Context, candidates []types.Course, user types.UserContext) []types.Course {
	if len(candidates) == 0 {
		return []types.Course{}
	}

	ranked := make([]types.Course, len(candidates))
	copy(ranked, candidates)

	scores, err := r.scoreBatch(ctx, ranked, user)
	if err != nil {
		if r.verbose {
			log.Printf("[RANKING] Batch scoring failed, using heuristic: %v", err)
		}
		scores = make([]int, len(ranked))
		for i, course := range ranked {
			scores[i] = heuristicScore(course, user.MissingSkills)
		}
	}

	for i := range ranked {
		score := scores[i]
		ranked[i].AIMatchScore = &score
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore() > ranked[j].MatchScore()
	})

	return ranked
}

// scoreBatch asks the model for one score per course, in candidate order.
func (r *Ranker) scoreBatch(ctx context.Context, candidates []types.Course, user types.UserContext) ([]int, error) {
	template := prompts.MustGet("ranking.json", "score-courses")
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":     user.TargetRole,
		"CurrentSkills":  strings.Join(user.Skills, ", "),
		"MissingSkills":  strings.Join(user.MissingSkills, ", "),
		"LearningStyles": strings.Join(user.Preferences.LearningStyles, ", "),
		"TimeCommitment": user.Preferences.TimeCommitment,
		"Courses":        describeCourses(candidates),
	})

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var scores []int
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &scores); err != nil {
		return nil, fmt.Errorf("score response is not an integer array: %w", err)
	}
	if len(scores) != len(candidates) {
		return nil, fmt.Errorf("expected %d scores, got %d", len(candidates), len(scores))
	}

	for i, score := range scores {
		if score < 0 {
			scores[i] = 0
		} else if score > 100 {
			scores[i] = 100
		}
	}

	return scores, nil
}

// describeCourses renders the candidate list as a numbered block for the
// scoring prompt. Positions in the response array map back to these numbers.
func describeCourses(candidates []types.Course) string {
	var sb strings.Builder
	for i, course := range candidates {
		fmt.Fprintf(&sb, "%d. %s (%s, %s, %s) - skills: %s\n   %s\n",
			i+1, course.Title, course.Platform, course.Difficulty, course.Duration,
			strings.Join(course.Skills, ", "), course.Description)
	}
	return sb.String()
}
