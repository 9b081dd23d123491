package courses

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/parsing"
	"github.com/jonathan/skill-advisor/internal/prompts"
	"github.com/jonathan/skill-advisor/internal/schemas"
	"github.com/jonathan/skill-advisor/internal/types"
)

//go:embed course_schema.json
var courseSchema string

// GenerativeSource invents course candidates for the user's gap through a
// single generative call. Malformed or failed generations degrade to an empty
// candidate list; only a missing target role is a hard error.
type GenerativeSource struct {
	client  llm.Client
	verbose bool
}

// NewGenerativeSource creates a generative candidate source. The client must
// not be nil.
func NewGenerativeSource(client llm.Client) (*GenerativeSource, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	return &GenerativeSource{client: client}, nil
}

// SetVerbose enables progress logging.
func (s *GenerativeSource) SetVerbose(v bool) {
	s.verbose = v
}

// courseResponse is the model's expected JSON shape.
type courseResponse struct {
	Courses []types.Course `json:"courses"`
}

// Candidates generates course candidates covering the missing skills.
// The target role is validated before anything else; with no missing skills
// there is nothing to cover and no generative call is made.
func (s *GenerativeSource) Candidates(ctx context.Context, req CandidateRequest) ([]types.Course, error) {
	if strings.TrimSpace(req.TargetRole) == "" {
		return nil, parsing.ErrMissingTargetRole
	}
	if len(req.MissingSkills) == 0 {
		return []types.Course{}, nil
	}

	template := prompts.MustGet("courses.json", "generate-courses")
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":          req.TargetRole,
		"CurrentSkills":       strings.Join(req.CurrentSkills, ", "),
		"MissingSkills":       strings.Join(req.MissingSkills, ", "),
		"PreferredIndustries": strings.Join(req.Preferences.PreferredIndustries, ", "),
		"LearningStyles":      strings.Join(req.Preferences.LearningStyles, ", "),
		"TimeCommitment":      req.Preferences.TimeCommitment,
	})

	if s.verbose {
		log.Printf("[COURSES] Generating candidates for %d missing skills", len(req.MissingSkills))
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[COURSES] Generation failed, returning no candidates: %v", err)
		return []types.Course{}, nil
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.ValidateJSONString(courseSchema, cleaned); err != nil {
		log.Printf("[COURSES] Generated candidates failed validation, returning none: %v", err)
		return []types.Course{}, nil
	}

	var resp courseResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		log.Printf("[COURSES] Malformed candidate response, returning none: %v", err)
		return []types.Course{}, nil
	}

	for i := range resp.Courses {
		if resp.Courses[i].ID == "" {
			resp.Courses[i].ID = uuid.NewString()
		}
	}

	if resp.Courses == nil {
		return []types.Course{}, nil
	}
	return resp.Courses, nil
}
